package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/grafikbg/grafik/pkg/calendar"
)

// CalendarView represents the provider's answers for one month, for
// operator inspection.
type CalendarView struct {
	Month        time.Month
	Year         int
	DaysInMonth  int
	WorkingDays  int
	WorkingHours int
	Holidays     []int
}

// ViewCalendar resolves and reports the official calendar for a month, so
// holiday rules can be sanity-checked before generating schedules.
func ViewCalendar(cal calendar.Provider, logger *zap.Logger, month time.Month, year int) (*CalendarView, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	info, err := cal.MonthInfo(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve calendar for %d-%02d: %w", year, month, err)
	}

	logger.Debug("Calendar view resolved",
		zap.Int("month", int(month)),
		zap.Int("year", year),
		zap.Int("working_days", info.WorkingDays))

	return &CalendarView{
		Month:        month,
		Year:         year,
		DaysInMonth:  calendar.DaysInMonth(month, year),
		WorkingDays:  info.WorkingDays,
		WorkingHours: info.WorkingHours,
		Holidays:     info.Holidays,
	}, nil
}
