package roster

import (
	"fmt"
	"time"

	"github.com/grafikbg/grafik/pkg/core/model"
)

// ValidateInputs checks the structural preconditions of a generation run.
// Generation never starts on invalid input; once inputs pass here, a run
// always completes and returns a full MonthSchedule.
//
// An empty shift catalogue is allowed; the generator then accounts worked
// days at contract hours instead of shift-derived hours.
//
// Rejected configurations:
//   - A position with minPerDay < 1
//   - A position with no assigned employees
//   - A shift with unparsable start/end times or a break that is negative
//     or consumes the whole shift
//   - An employee referencing an unknown position
//   - An employee with contract hours outside the supported enumeration
func ValidateInputs(settings model.FirmSettings, employees []model.Employee) error {
	positionIDs := make(map[string]bool)
	for _, pos := range settings.Positions {
		if pos.MinPerDay < 1 {
			return fmt.Errorf("position %q: minPerDay must be at least 1, got %d", pos.Name, pos.MinPerDay)
		}
		positionIDs[pos.ID] = true
	}

	for _, shift := range settings.Shifts {
		start, err := ParseClock(shift.StartTime)
		if err != nil {
			return fmt.Errorf("shift %q: invalid start time: %w", shift.Name, err)
		}
		end, err := ParseClock(shift.EndTime)
		if err != nil {
			return fmt.Errorf("shift %q: invalid end time: %w", shift.Name, err)
		}
		if shift.BreakMinutes < 0 {
			return fmt.Errorf("shift %q: break minutes must not be negative", shift.Name)
		}
		if NetShiftHours(start, end, shift.BreakMinutes) <= 0 {
			return fmt.Errorf("shift %q: break consumes the entire shift", shift.Name)
		}
	}

	assignedCounts := make(map[string]int)
	for _, emp := range employees {
		if emp.PositionID != "" && !positionIDs[emp.PositionID] {
			return fmt.Errorf("employee %s references unknown position %q", emp.FullName(), emp.PositionID)
		}
		if !emp.ContractHours.IsValid() {
			return fmt.Errorf("employee %s: unsupported contract hours %d", emp.FullName(), emp.ContractHours)
		}
		assignedCounts[emp.PositionID]++
	}

	for _, pos := range settings.Positions {
		if assignedCounts[pos.ID] == 0 {
			return fmt.Errorf("position %q has no assigned employees", pos.Name)
		}
	}

	return nil
}

// workableDays returns the ordered calendar day-numbers the firm operates on:
// every day of the month except non-operating weekdays and, when the firm
// closes on holidays, holiday days.
func workableDays(daysInMonth int, month time.Month, year int, holidays map[int]bool, worksOnHolidays bool, operatingDays map[time.Weekday]bool) []int {
	days := make([]int, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		if holidays[day] && !worksOnHolidays {
			continue
		}
		weekday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
		if !operatingDays[weekday] {
			continue
		}
		days = append(days, day)
	}
	return days
}

// operatingDaySet converts the firm's operating weekday list to a lookup set
func operatingDaySet(settings model.FirmSettings) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool)
	for _, wd := range settings.EffectiveOperatingDays() {
		set[wd] = true
	}
	return set
}

// holidaySet converts calendar holiday day-numbers to a lookup set
func holidaySet(holidays []int) map[int]bool {
	set := make(map[int]bool)
	for _, day := range holidays {
		set[day] = true
	}
	return set
}

// employeesForPosition filters employees assigned to the given position,
// preserving input order.
func employeesForPosition(employees []model.Employee, positionID string) []model.Employee {
	assigned := make([]model.Employee, 0)
	for _, emp := range employees {
		if emp.PositionID == positionID {
			assigned = append(assigned, emp)
		}
	}
	return assigned
}

// anyExtendedShift reports whether any shift in the catalogue is
// extended-duration. Shift times are validated before generation starts,
// so parse errors cannot occur here.
func anyExtendedShift(shifts []model.Shift) bool {
	for _, shift := range shifts {
		start, err := ParseClock(shift.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseClock(shift.EndTime)
		if err != nil {
			continue
		}
		if IsExtendedShift(start, end) {
			return true
		}
	}
	return false
}
