package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafikbg/grafik/pkg/core/model"
)

func makeEmployees(ids ...string) []model.Employee {
	employees := make([]model.Employee, len(ids))
	for i, id := range ids {
		employees[i] = model.Employee{ID: id, PositionID: "pos-1", ContractHours: model.Contract8}
	}
	return employees
}

func shiftCounts(assignments map[string]*model.Shift) map[string]int {
	counts := make(map[string]int)
	for _, shift := range assignments {
		counts[shift.ID]++
	}
	return counts
}

func TestAssignShifts_EvenSplit(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
	}

	assignments := balancer.AssignShifts("pos-1", 1, makeEmployees("e1", "e2", "e3", "e4"), shifts)

	assert.Len(t, assignments, 4)
	counts := shiftCounts(assignments)
	assert.Equal(t, 2, counts["s1"])
	assert.Equal(t, 2, counts["s2"])
}

func TestAssignShifts_RemainderRotatesAcrossDays(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
	}
	employees := makeEmployees("e1", "e2", "e3", "e4", "e5")

	// Day 1: the extra slot lands on the first shift
	day1 := balancer.AssignShifts("pos-1", 1, employees, shifts)
	balancer.AdvanceDay("pos-1")
	counts := shiftCounts(day1)
	assert.Equal(t, 3, counts["s1"])
	assert.Equal(t, 2, counts["s2"])

	// Day 2: the rotation moves the extra slot to the second shift
	day2 := balancer.AssignShifts("pos-1", 2, employees, shifts)
	balancer.AdvanceDay("pos-1")
	counts = shiftCounts(day2)
	assert.Equal(t, 2, counts["s1"])
	assert.Equal(t, 3, counts["s2"])
}

func TestAssignShifts_EmployeeRotationVariesByDay(t *testing.T) {
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
	}
	employees := makeEmployees("e1", "e2")

	balancer := NewBalancerState()
	day1 := balancer.AssignShifts("pos-1", 1, employees, shifts)

	// Same offset state, next day number: the pairing flips
	day2 := balancer.AssignShifts("pos-1", 2, employees, shifts)

	assert.Equal(t, "s1", day1["e1"].ID)
	assert.Equal(t, "s2", day1["e2"].ID)
	assert.Equal(t, "s1", day2["e2"].ID)
	assert.Equal(t, "s2", day2["e1"].ID)
}

func TestAssignShifts_MoreShiftsThanEmployees(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
		{ID: "s3", StartTime: "22:00", EndTime: "06:00"},
	}

	assignments := balancer.AssignShifts("pos-1", 1, makeEmployees("e1"), shifts)

	// One employee, one slot
	assert.Len(t, assignments, 1)
	assert.Equal(t, "s1", assignments["e1"].ID)
}

func TestAssignShifts_EveryWorkerGetsExactlyOneSlot(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
		{ID: "s3", StartTime: "22:00", EndTime: "06:00"},
	}
	employees := makeEmployees("e1", "e2", "e3", "e4", "e5", "e6", "e7")

	// Awkward remainder (7 across 3) on a day that rotates the ordering:
	// the slot list still pairs one to one with the roster.
	assignments := balancer.AssignShifts("pos-1", 5, employees, shifts)

	assert.Len(t, assignments, len(employees))
	for _, emp := range employees {
		assert.NotNil(t, assignments[emp.ID])
	}

	total := 0
	for _, n := range shiftCounts(assignments) {
		total += n
	}
	assert.Equal(t, len(employees), total)
}

func TestAssignShifts_EmptyInputs(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{{ID: "s1", StartTime: "06:00", EndTime: "14:00"}}

	assert.Empty(t, balancer.AssignShifts("pos-1", 1, nil, shifts))
	assert.Empty(t, balancer.AssignShifts("pos-1", 1, makeEmployees("e1"), nil))
}

func TestAssignShifts_OffsetsAreIndependentPerPosition(t *testing.T) {
	balancer := NewBalancerState()
	shifts := []model.Shift{
		{ID: "s1", StartTime: "06:00", EndTime: "14:00"},
		{ID: "s2", StartTime: "14:00", EndTime: "22:00"},
	}
	employees := makeEmployees("e1", "e2", "e3")

	balancer.AdvanceDay("pos-1")

	// pos-1 advanced once, so its extra slot moved to the second shift;
	// pos-2 still starts at the first shift.
	countsPos1 := shiftCounts(balancer.AssignShifts("pos-1", 1, employees, shifts))
	countsPos2 := shiftCounts(balancer.AssignShifts("pos-2", 1, employees, shifts))

	assert.Equal(t, 2, countsPos1["s2"])
	assert.Equal(t, 2, countsPos2["s1"])
}
