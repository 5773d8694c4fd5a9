package roster

import (
	"github.com/grafikbg/grafik/pkg/core/model"
)

// Weekly worked-hour ceilings in hours
const (
	weeklyCeilingAdult = 56.0
	weeklyCeilingMinor = 35.0
)

// maxConsecutiveWorkDays is the run of work days after which rest is forced
const maxConsecutiveWorkDays = 6

// maxConsecutiveExtendedDays is the run of extended-shift days after which
// two full rest days become mandatory.
const maxConsecutiveExtendedDays = 2

// weekIndex buckets a 1-based day-number into 7-day weeks counted from the
// 1st of the month. This is deliberately not ISO-week aligned.
func weekIndex(day int) int {
	return (day - 1) / 7
}

// WeeklyCeiling returns the worked-hour ceiling for one week bucket
func WeeklyCeiling(isMinor bool) float64 {
	if isMinor {
		return weeklyCeilingMinor
	}
	return weeklyCeilingAdult
}

// employeeState is the per-employee running legal state, owned by the
// tracker's arena and mutated exactly once per processed day.
type employeeState struct {
	consecutiveWorkDays     int
	weeklyHours             [5]float64 // 31 days span at most 5 buckets
	consecutiveExtendedDays int
	pendingExtendedRest     int
}

// Tracker enforces the hour-based and consecutive-day labor limits during
// generation. It holds one state record per employee, indexed by a stable
// employee index computed once at run start.
type Tracker struct {
	states  []employeeState
	indexOf map[string]int
}

// NewTracker initializes legal state for all employees of a run
func NewTracker(employees []model.Employee) *Tracker {
	t := &Tracker{
		states:  make([]employeeState, len(employees)),
		indexOf: make(map[string]int, len(employees)),
	}
	for i, emp := range employees {
		t.indexOf[emp.ID] = i
	}
	return t
}

// MustRest reports whether the employee is legally barred from working the
// given day, regardless of what the rest-day planner intended. Any one of
// the limits suffices:
//   - Six or more consecutive work days
//   - The current week bucket has reached the employee's hour ceiling
//   - The day is a holiday and the employee is a minor
//   - Mandatory rest after consecutive extended shifts is still pending
//   - Two or more consecutive extended-shift days
func (t *Tracker) MustRest(emp model.Employee, day int, isHoliday bool) bool {
	s := &t.states[t.indexOf[emp.ID]]

	if s.consecutiveWorkDays >= maxConsecutiveWorkDays {
		return true
	}
	if s.weeklyHours[weekIndex(day)] >= WeeklyCeiling(emp.IsMinor) {
		return true
	}
	if isHoliday && emp.IsMinor {
		return true
	}
	if s.pendingExtendedRest > 0 {
		return true
	}
	if s.consecutiveExtendedDays >= maxConsecutiveExtendedDays {
		return true
	}

	return false
}

// RecordRest registers a non-working day: the consecutive-work run ends, any
// pending mandatory rest is consumed by one day, and the extended-shift run
// resets.
func (t *Tracker) RecordRest(emp model.Employee) {
	s := &t.states[t.indexOf[emp.ID]]

	s.consecutiveWorkDays = 0
	if s.pendingExtendedRest > 0 {
		s.pendingExtendedRest--
	}
	s.consecutiveExtendedDays = 0
}

// RecordWork registers a worked day with the given net hours. A second
// consecutive extended-shift day arms the two-day mandatory rest countdown.
func (t *Tracker) RecordWork(emp model.Employee, day int, hours float64, extended bool) {
	s := &t.states[t.indexOf[emp.ID]]

	s.consecutiveWorkDays++
	s.weeklyHours[weekIndex(day)] += hours

	if extended {
		s.consecutiveExtendedDays++
		if s.consecutiveExtendedDays >= maxConsecutiveExtendedDays {
			s.pendingExtendedRest = 2
		}
	} else {
		s.consecutiveExtendedDays = 0
	}
}

// WeeklyHours returns the accumulated worked hours per week bucket for the
// employee, for the post-run compliance audit.
func (t *Tracker) WeeklyHours(emp model.Employee) [5]float64 {
	return t.states[t.indexOf[emp.ID]].weeklyHours
}
