package roster

import (
	"math"
	"sort"
	"time"

	"github.com/grafikbg/grafik/pkg/core/model"
)

// RestPlan maps employee ID to the set of calendar day-numbers the employee
// is intended to rest on. The plan is advisory: the legal constraint tracker
// can force additional rest days, but a planned rest day is never converted
// back to work.
type RestPlan map[string]map[int]bool

// PlanInput carries everything the rest-day planner needs for one position
type PlanInput struct {
	Position  model.Position
	Employees []model.Employee

	DaysInMonth    int
	Month          time.Month
	Year           int
	TargetWorkDays int

	Holidays        map[int]bool
	WorksOnHolidays bool
	OperatingDays   map[time.Weekday]bool

	Shifts []model.Shift
}

// PlanRestDays decides, before any day-by-day simulation, which workable days
// each of the position's employees rests so that attendance approximates the
// month's target work-day count.
//
// Two patterns exist:
//   - The handoff pattern, for exactly two employees at minPerDay 1: the two
//     rest sets are complementary, so the position is covered by construction.
//   - The standard pattern, for every other combination: per-employee evenly
//     spaced rest days, staggered between employees so they don't all rest on
//     the same days.
func PlanRestDays(input PlanInput) RestPlan {
	workable := workableDays(input.DaysInMonth, input.Month, input.Year,
		input.Holidays, input.WorksOnHolidays, input.OperatingDays)

	if len(input.Employees) == 2 && input.Position.MinPerDay == 1 {
		return planHandoff(input, workable)
	}

	return planStandard(input, workable)
}

// planHandoff builds complementary rest sets for a two-employee position
// with a minimum staffing of one. On any workable day at most one of the two
// rests, so coverage never drops below one by planning alone.
//
// With an extended-duration shift in the catalogue, rest comes in contiguous
// blocks of two workable days (a 2-on/2-off rotation); otherwise the two
// employees alternate one workable day at a time.
func planHandoff(input PlanInput, workable []int) RestPlan {
	first := input.Employees[0]
	second := input.Employees[1]

	restFirst := make(map[int]bool)
	restSecond := make(map[int]bool)

	blockSize := 1
	if anyExtendedShift(input.Shifts) {
		blockSize = 2
	}

	// Alternate which employee is on duty per block; the other rests. The
	// strict alternation is what makes the rest sets complementary and, with
	// extended shifts, keeps every two-day work block followed by two full
	// rest days.
	for i, day := range workable {
		block := (i / blockSize) % 2
		if block == 0 {
			restSecond[day] = true
		} else {
			restFirst[day] = true
		}
	}

	// Greedy repair: convert excess work days to rest, but only on days the
	// other employee is already working, so no day ever has both resting.
	// Best effort - very short months can leave the target unmet.
	trimExcessWorkDays(restFirst, restSecond, workable, input.TargetWorkDays)
	trimExcessWorkDays(restSecond, restFirst, workable, input.TargetWorkDays)

	return RestPlan{
		first.ID:  restFirst,
		second.ID: restSecond,
	}
}

// trimExcessWorkDays adds rest days for one handoff employee until their
// work-day count reaches the target or no coverage-preserving day remains.
func trimExcessWorkDays(rest, otherRest map[int]bool, workable []int, target int) {
	workDays := len(workable) - len(rest)

	for _, day := range workable {
		if workDays <= target {
			return
		}
		if rest[day] || otherRest[day] {
			continue
		}
		// The other employee works this day, so resting here keeps coverage
		rest[day] = true
		workDays--
	}
}

// planStandard places each employee's required rest days at roughly even
// spacing across the workable-day sequence, avoiding adjacent calendar days
// where possible, then staggers employees after the first so the position's
// rest days don't pile onto identical dates.
func planStandard(input PlanInput, workable []int) RestPlan {
	plan := make(RestPlan)

	workableCount := len(workable)
	restNeeded := workableCount - input.TargetWorkDays
	if restNeeded < 0 {
		restNeeded = 0
	}

	for i, emp := range input.Employees {
		rest := make(map[int]bool)

		if restNeeded > 0 {
			spacing := float64(workableCount) / float64(restNeeded+1)

			for j := 0; j < restNeeded; j++ {
				idx := int(math.Round(float64(j+1)*spacing)) - 1
				if idx < 0 {
					idx = 0
				}
				if idx > workableCount-1 {
					idx = workableCount - 1
				}

				idx = findRestSlot(workable, rest, idx)
				if idx >= 0 {
					rest[workable[idx]] = true
				}
			}

			if i > 0 {
				// Stagger this employee's rest days relative to the first.
				// The 30-day approximation matches the reference behavior
				// regardless of the actual month length.
				offset := i * (30 / len(input.Employees) / restNeeded)
				rest = staggerRestDays(rest, offset, input.DaysInMonth,
					input.Holidays, input.WorksOnHolidays)
			}
		}

		plan[emp.ID] = rest
	}

	return plan
}

// findRestSlot searches outward from the preferred index for a workable day
// that is not already a rest day and has no rest day on an adjacent calendar
// day. When no such slot exists it falls back to the nearest day that simply
// isn't already taken. Returns -1 when every workable day is taken.
func findRestSlot(workable []int, rest map[int]bool, preferred int) int {
	isFree := func(idx int) bool {
		day := workable[idx]
		return !rest[day] && !rest[day-1] && !rest[day+1]
	}

	for delta := 0; delta < len(workable); delta++ {
		if idx := preferred + delta; idx < len(workable) && isFree(idx) {
			return idx
		}
		if idx := preferred - delta; delta > 0 && idx >= 0 && isFree(idx) {
			return idx
		}
	}

	// No non-adjacent slot exists; take the nearest untaken day
	for delta := 0; delta < len(workable); delta++ {
		if idx := preferred + delta; idx < len(workable) && !rest[workable[idx]] {
			return idx
		}
		if idx := preferred - delta; delta > 0 && idx >= 0 && !rest[workable[idx]] {
			return idx
		}
	}

	return -1
}

// staggerRestDays shifts every rest day by the given offset, wrapping within
// the month and skipping holidays when the firm closes on them.
func staggerRestDays(rest map[int]bool, offset, daysInMonth int, holidays map[int]bool, worksOnHolidays bool) map[int]bool {
	if offset == 0 {
		return rest
	}

	days := make([]int, 0, len(rest))
	for day := range rest {
		days = append(days, day)
	}
	// Deterministic collision handling regardless of map iteration order
	sort.Ints(days)

	shifted := make(map[int]bool, len(rest))
	for _, day := range days {
		candidate := wrapDay(day+offset, daysInMonth)
		for i := 0; i < daysInMonth; i++ {
			if !shifted[candidate] && (worksOnHolidays || !holidays[candidate]) {
				break
			}
			candidate = wrapDay(candidate+1, daysInMonth)
		}
		shifted[candidate] = true
	}
	return shifted
}

// wrapDay wraps a 1-based day-number into the 1..daysInMonth range
func wrapDay(day, daysInMonth int) int {
	return (day-1)%daysInMonth + 1
}
