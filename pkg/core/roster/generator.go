package roster

import (
	"fmt"
	"time"

	"github.com/grafikbg/grafik/pkg/calendar"
	"github.com/grafikbg/grafik/pkg/core/model"
)

// overTargetToleranceHours is how far total hours may exceed the monthly
// contract target before the audit flags the schedule.
const overTargetToleranceHours = 8.0

// Generate runs one full-month roster generation.
//
// The run is a deterministic, synchronous simulation: rest days are planned
// per position up front, then days are processed in strict increasing order.
// Each open day filters the planned workers through the legal constraint
// tracker (the tracker's veto always wins), balances the survivors across
// the shift catalogue, and records one entry per employee. Understaffed
// days are reported as coverage gaps, never corrected by overriding rest.
//
// Returns an error only for structurally invalid input; once generation
// starts it always completes and returns a schedule covering every employee
// and every day of the month.
func Generate(settings model.FirmSettings, employees []model.Employee, month time.Month, year int, cal calendar.MonthInfo) (*MonthSchedule, error) {
	if err := ValidateInputs(settings, employees); err != nil {
		return nil, fmt.Errorf("invalid generation input: %w", err)
	}

	daysInMonth := calendar.DaysInMonth(month, year)
	holidays := holidaySet(cal.Holidays)
	operating := operatingDaySet(settings)

	// One schedule per employee, in input order
	schedules := make([]*EmployeeSchedule, len(employees))
	scheduleByID := make(map[string]*EmployeeSchedule, len(employees))
	for i, emp := range employees {
		schedules[i] = &EmployeeSchedule{
			Employee: emp,
			Entries:  make(map[int]ScheduleEntry, daysInMonth),
		}
		scheduleByID[emp.ID] = schedules[i]
	}

	tracker := NewTracker(employees)
	balancer := NewBalancerState()

	// Plan rest days once per position before the day loop
	plans := make(map[string]RestPlan, len(settings.Positions))
	for _, pos := range settings.Positions {
		plans[pos.ID] = PlanRestDays(PlanInput{
			Position:        pos,
			Employees:       employeesForPosition(employees, pos.ID),
			DaysInMonth:     daysInMonth,
			Month:           month,
			Year:            year,
			TargetWorkDays:  cal.WorkingDays,
			Holidays:        holidays,
			WorksOnHolidays: settings.WorksOnHolidays,
			OperatingDays:   operating,
			Shifts:          settings.Shifts,
		})
	}

	var gaps []CoverageGap

	for day := 1; day <= daysInMonth; day++ {
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		isHoliday := holidays[day]
		closedHoliday := isHoliday && !settings.WorksOnHolidays
		closedWeekday := !operating[weekday]

		for _, pos := range settings.Positions {
			posEmployees := employeesForPosition(employees, pos.ID)

			switch {
			case closedHoliday:
				for _, emp := range posEmployees {
					scheduleByID[emp.ID].Entries[day] = ScheduleEntry{Kind: EntryHoliday}
					tracker.RecordRest(emp)
				}

			case closedWeekday:
				for _, emp := range posEmployees {
					sched := scheduleByID[emp.ID]
					sched.Entries[day] = ScheduleEntry{Kind: EntryRest}
					sched.TotalRestDays++
					tracker.RecordRest(emp)
				}

			default:
				gaps = processOpenDay(openDayInput{
					day:          day,
					isHoliday:    isHoliday,
					position:     pos,
					employees:    posEmployees,
					shifts:       settings.Shifts,
					plan:         plans[pos.ID],
					tracker:      tracker,
					balancer:     balancer,
					scheduleByID: scheduleByID,
				}, gaps)
			}
		}

		// Unassigned employees belong to no position; they simply follow
		// the firm calendar.
		for _, emp := range employees {
			if emp.PositionID != "" {
				continue
			}
			sched := scheduleByID[emp.ID]
			if closedHoliday {
				sched.Entries[day] = ScheduleEntry{Kind: EntryHoliday}
			} else {
				sched.Entries[day] = ScheduleEntry{Kind: EntryRest}
				sched.TotalRestDays++
			}
			tracker.RecordRest(emp)
		}
	}

	auditCompliance(schedules, tracker, cal)

	return &MonthSchedule{
		Month:        month,
		Year:         year,
		Employees:    schedules,
		CoverageGaps: gaps,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

// openDayInput bundles everything needed to process one (position, day) pair
// on a day the firm is open.
type openDayInput struct {
	day       int
	isHoliday bool
	position  model.Position
	employees []model.Employee
	shifts    []model.Shift

	plan         RestPlan
	tracker      *Tracker
	balancer     *BalancerState
	scheduleByID map[string]*EmployeeSchedule
}

// processOpenDay applies the planner's designations, the tracker's vetoes,
// and the shift balancer for one position on one open day, recording one
// entry per employee. Appends a coverage gap when the surviving headcount
// falls below the position minimum.
func processOpenDay(in openDayInput, gaps []CoverageGap) []CoverageGap {
	resting := make(map[string]bool, len(in.employees))
	workers := make([]model.Employee, 0, len(in.employees))

	for _, emp := range in.employees {
		// The planner's rest designation stands; the tracker can only add
		// rest, never force a planned rest day back to work.
		if in.plan[emp.ID][in.day] || in.tracker.MustRest(emp, in.day, in.isHoliday) {
			resting[emp.ID] = true
			continue
		}
		workers = append(workers, emp)
	}

	if len(workers) < in.position.MinPerDay {
		gaps = append(gaps, CoverageGap{
			Day:          in.day,
			PositionID:   in.position.ID,
			PositionName: in.position.Name,
			Required:     in.position.MinPerDay,
			Actual:       len(workers),
		})
	}

	assignments := in.balancer.AssignShifts(in.position.ID, in.day, workers, in.shifts)
	in.balancer.AdvanceDay(in.position.ID)

	for _, emp := range in.employees {
		sched := in.scheduleByID[emp.ID]

		if resting[emp.ID] {
			sched.Entries[in.day] = ScheduleEntry{Kind: EntryRest}
			sched.TotalRestDays++
			in.tracker.RecordRest(emp)
			continue
		}

		shift := assignments[emp.ID]
		var hours float64
		extended := false

		if shift != nil {
			start, _ := ParseClock(shift.StartTime)
			end, _ := ParseClock(shift.EndTime)
			hours = NetShiftHours(start, end, shift.BreakMinutes)
			extended = IsExtendedShift(start, end)
		} else {
			// No shift assigned; account the contract day instead
			hours = float64(emp.ContractHours)
		}

		sched.Entries[in.day] = ScheduleEntry{
			Kind:          EntryWork,
			Shift:         shift,
			Hours:         hours,
			ContractHours: emp.ContractHours,
			Overtime:      Overtime(hours, float64(emp.ContractHours)),
		}
		sched.TotalHours += hours
		sched.TotalWorkDays++
		in.tracker.RecordWork(emp, in.day, hours, extended)
	}

	return gaps
}

// auditCompliance finalizes every employee's compliance verdict: total hours
// against the calendar-derived contract target, and each week bucket against
// the employee's weekly ceiling.
func auditCompliance(schedules []*EmployeeSchedule, tracker *Tracker, cal calendar.MonthInfo) {
	for _, sched := range schedules {
		emp := sched.Employee

		targetHours := float64(cal.WorkingDays) * float64(emp.ContractHours)
		if sched.TotalHours > targetHours+overTargetToleranceHours {
			sched.ComplianceIssues = append(sched.ComplianceIssues, fmt.Sprintf(
				"total worked hours %.1f exceed the monthly target of %.1f by more than %.0f",
				sched.TotalHours, targetHours, overTargetToleranceHours))
		}

		ceiling := WeeklyCeiling(emp.IsMinor)
		for week, hours := range tracker.WeeklyHours(emp) {
			if hours > ceiling {
				sched.ComplianceIssues = append(sched.ComplianceIssues, fmt.Sprintf(
					"week %d worked hours %.1f exceed the weekly ceiling of %.0f",
					week+1, hours, ceiling))
			}
		}

		sched.IsCompliant = len(sched.ComplianceIssues) == 0
	}
}
