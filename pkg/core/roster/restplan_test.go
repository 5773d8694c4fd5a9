package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/grafikbg/grafik/pkg/core/model"
)

var allWeek = map[time.Weekday]bool{
	time.Sunday: true, time.Monday: true, time.Tuesday: true, time.Wednesday: true,
	time.Thursday: true, time.Friday: true, time.Saturday: true,
}

var mondayToFriday = map[time.Weekday]bool{
	time.Monday: true, time.Tuesday: true, time.Wednesday: true,
	time.Thursday: true, time.Friday: true,
}

// dayShift is a plain 8-hour shift, nowhere near the extended threshold
var dayShift = model.Shift{
	ID: "shift-day", Name: "Day", Abbreviation: "D",
	StartTime: "09:00", EndTime: "17:00", BreakMinutes: 0,
}

// longShift spans 12 hours gross and therefore counts as extended
var longShift = model.Shift{
	ID: "shift-long", Name: "Long", Abbreviation: "L",
	StartTime: "08:00", EndTime: "20:00", BreakMinutes: 60,
}

func restDayList(rest map[int]bool) []int {
	days := make([]int, 0, len(rest))
	for day := 1; day <= 31; day++ {
		if rest[day] {
			days = append(days, day)
		}
	}
	return days
}

func TestPlanRestDays_SingleEmployee_EvenSpacing(t *testing.T) {
	// June 2026 with the last 8 days declared holidays and a closed firm
	// leaves exactly 22 workable days (1..22).
	holidays := map[int]bool{23: true, 24: true, 25: true, 26: true, 27: true, 28: true, 29: true, 30: true}

	plan := PlanRestDays(PlanInput{
		Position:        model.Position{ID: "pos-1", Name: "Cashier", MinPerDay: 1},
		Employees:       []model.Employee{{ID: "emp-1", PositionID: "pos-1", ContractHours: model.Contract8}},
		DaysInMonth:     30,
		Month:           time.June,
		Year:            2026,
		TargetWorkDays:  15,
		Holidays:        holidays,
		WorksOnHolidays: false,
		OperatingDays:   allWeek,
		Shifts:          []model.Shift{dayShift},
	})

	rest := plan["emp-1"]
	assert.Len(t, rest, 7, "22 workable days at target 15 need 7 rest days")

	days := restDayList(rest)
	for _, day := range days {
		assert.LessOrEqual(t, day, 22, "rest days must fall on workable days")
	}

	// No two rest days on adjacent calendar days
	for i := 1; i < len(days); i++ {
		assert.Greater(t, days[i]-days[i-1], 1,
			"rest days %d and %d are adjacent", days[i-1], days[i])
	}
}

func TestPlanRestDays_NoRestWhenTargetCoversAllWorkableDays(t *testing.T) {
	employees := []model.Employee{
		{ID: "emp-1", PositionID: "pos-1", ContractHours: model.Contract8},
		{ID: "emp-2", PositionID: "pos-1", ContractHours: model.Contract8},
		{ID: "emp-3", PositionID: "pos-1", ContractHours: model.Contract8},
	}

	plan := PlanRestDays(PlanInput{
		Position:       model.Position{ID: "pos-1", Name: "Guard", MinPerDay: 3},
		Employees:      employees,
		DaysInMonth:    31,
		Month:          time.July,
		Year:           2025,
		TargetWorkDays: 23, // July 2025 has exactly 23 weekdays
		Holidays:       map[int]bool{},
		OperatingDays:  mondayToFriday,
		Shifts:         []model.Shift{dayShift},
	})

	for _, emp := range employees {
		assert.Empty(t, plan[emp.ID], "employee %s should have no planned rest", emp.ID)
	}
}

func TestPlanRestDays_Staggering_SpreadsEmployeesApart(t *testing.T) {
	employees := []model.Employee{
		{ID: "emp-1", PositionID: "pos-1", ContractHours: model.Contract8},
		{ID: "emp-2", PositionID: "pos-1", ContractHours: model.Contract8},
		{ID: "emp-3", PositionID: "pos-1", ContractHours: model.Contract8},
	}

	// 30 workable days at target 25: five rest days each
	plan := PlanRestDays(PlanInput{
		Position:       model.Position{ID: "pos-1", Name: "Operator", MinPerDay: 2},
		Employees:      employees,
		DaysInMonth:    30,
		Month:          time.June,
		Year:           2026,
		TargetWorkDays: 25,
		Holidays:       map[int]bool{},
		OperatingDays:  allWeek,
		Shifts:         []model.Shift{dayShift},
	})

	assert.Equal(t, []int{5, 10, 15, 20, 25}, restDayList(plan["emp-1"]))
	assert.Equal(t, []int{7, 12, 17, 22, 27}, restDayList(plan["emp-2"]))
	assert.Equal(t, []int{9, 14, 19, 24, 29}, restDayList(plan["emp-3"]))

	// No day carries rest for all three at once
	for day := 1; day <= 30; day++ {
		restingCount := 0
		for _, emp := range employees {
			if plan[emp.ID][day] {
				restingCount++
			}
		}
		assert.Less(t, restingCount, 3, "day %d has every employee resting", day)
	}
}

func TestPlanRestDays_Handoff_AlternatesSingleDays(t *testing.T) {
	employees := []model.Employee{
		{ID: "emp-a", PositionID: "pos-1", ContractHours: model.Contract8},
		{ID: "emp-b", PositionID: "pos-1", ContractHours: model.Contract8},
	}

	plan := PlanRestDays(PlanInput{
		Position:       model.Position{ID: "pos-1", Name: "Receptionist", MinPerDay: 1},
		Employees:      employees,
		DaysInMonth:    30,
		Month:          time.June,
		Year:           2026,
		TargetWorkDays: 15,
		Holidays:       map[int]bool{},
		OperatingDays:  allWeek,
		Shifts:         []model.Shift{dayShift},
	})

	restA := plan["emp-a"]
	restB := plan["emp-b"]
	assert.Len(t, restA, 15)
	assert.Len(t, restB, 15)

	// Complementary: never both resting, and alternation means every day
	// exactly one of them rests.
	for day := 1; day <= 30; day++ {
		assert.False(t, restA[day] && restB[day], "both rest on day %d", day)
		assert.True(t, restA[day] || restB[day], "nobody rests on day %d", day)
	}

	// Second employee covers the first workable day
	assert.True(t, restB[1])
	assert.False(t, restA[1])
}

func TestPlanRestDays_Handoff_ExtendedShiftUsesTwoDayBlocks(t *testing.T) {
	employees := []model.Employee{
		{ID: "emp-a", PositionID: "pos-1", ContractHours: model.Contract12},
		{ID: "emp-b", PositionID: "pos-1", ContractHours: model.Contract12},
	}

	plan := PlanRestDays(PlanInput{
		Position:       model.Position{ID: "pos-1", Name: "Porter", MinPerDay: 1},
		Employees:      employees,
		DaysInMonth:    30,
		Month:          time.June,
		Year:           2026,
		TargetWorkDays: 15,
		Holidays:       map[int]bool{},
		OperatingDays:  allWeek,
		Shifts:         []model.Shift{longShift},
	})

	restA := plan["emp-a"]
	restB := plan["emp-b"]

	// 2-on/2-off: the second employee rests the first two-day block. The
	// odd block count gives the two employees a 14/16 split the greedy
	// correction cannot repair without breaking complementarity.
	assert.Equal(t, []int{1, 2, 5, 6, 9, 10, 13, 14, 17, 18, 21, 22, 25, 26, 29, 30}, restDayList(restB))
	assert.Equal(t, []int{3, 4, 7, 8, 11, 12, 15, 16, 19, 20, 23, 24, 27, 28}, restDayList(restA))

	for day := 1; day <= 30; day++ {
		assert.False(t, restA[day] && restB[day], "both rest on day %d", day)
	}
}

func TestPlanRestDays_RestFallsOnOperatingDaysOnly(t *testing.T) {
	plan := PlanRestDays(PlanInput{
		Position:       model.Position{ID: "pos-1", Name: "Clerk", MinPerDay: 1},
		Employees:      []model.Employee{{ID: "emp-1", PositionID: "pos-1", ContractHours: model.Contract8}},
		DaysInMonth:    31,
		Month:          time.July,
		Year:           2025,
		TargetWorkDays: 20, // 23 weekdays, so 3 rest days
		Holidays:       map[int]bool{},
		OperatingDays:  mondayToFriday,
		Shifts:         []model.Shift{dayShift},
	})

	rest := plan["emp-1"]
	assert.Len(t, rest, 3)

	for _, day := range restDayList(rest) {
		weekday := time.Date(2025, time.July, day, 0, 0, 0, 0, time.UTC).Weekday()
		assert.True(t, mondayToFriday[weekday], "rest day %d falls on a weekend", day)
	}
}
