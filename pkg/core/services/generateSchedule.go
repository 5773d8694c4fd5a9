package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grafikbg/grafik/internal/config"
	"github.com/grafikbg/grafik/pkg/calendar"
	"github.com/grafikbg/grafik/pkg/core/roster"
)

// ScheduleResult represents the result of generating a month schedule
type ScheduleResult struct {
	Schedule *roster.MonthSchedule

	// NonCompliantCount is the number of employees with compliance issues
	NonCompliantCount int

	// WorkingDays is the calendar's official working-day count for the month
	WorkingDays int
}

// GenerateSchedule runs one full roster generation for the given month.
// It resolves the calendar, converts the firm configuration into core
// records, invokes the generator, and summarizes the outcome.
func GenerateSchedule(ctx context.Context, cfg *config.Config, cal calendar.Provider, logger *zap.Logger, month time.Month, year int) (*ScheduleResult, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	logger.Info("Generating month schedule",
		zap.String("firm", cfg.Firm.Name),
		zap.Int("month", int(month)),
		zap.Int("year", year))

	// Resolve the official calendar for the month
	info, err := cal.MonthInfo(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve calendar for %d-%02d: %w", year, month, err)
	}

	logger.Debug("Calendar resolved",
		zap.Int("working_days", info.WorkingDays),
		zap.Int("working_hours", info.WorkingHours),
		zap.Ints("holidays", info.Holidays))

	settings := cfg.FirmSettings()
	employees := cfg.EmployeeList()

	logger.Debug("Firm configuration loaded",
		zap.Int("positions", len(settings.Positions)),
		zap.Int("shifts", len(settings.Shifts)),
		zap.Int("employees", len(employees)))

	// Run the generator; a bounded synchronous computation, so the context
	// only gates whether we start at all.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generation cancelled: %w", err)
	}

	schedule, err := roster.Generate(settings, employees, month, year, info)
	if err != nil {
		return nil, fmt.Errorf("schedule generation failed: %w", err)
	}

	schedule.ID = uuid.New().String()

	nonCompliant := 0
	for _, es := range schedule.Employees {
		if !es.IsCompliant {
			nonCompliant++
			logger.Warn("Employee schedule is non-compliant",
				zap.String("employee", es.Employee.FullName()),
				zap.Strings("issues", es.ComplianceIssues))
		}
	}

	if len(schedule.CoverageGaps) > 0 {
		logger.Warn("Schedule has coverage gaps",
			zap.Int("count", len(schedule.CoverageGaps)))
		for _, gap := range schedule.CoverageGaps {
			logger.Debug("Coverage gap",
				zap.Int("day", gap.Day),
				zap.String("position", gap.PositionName),
				zap.Int("required", gap.Required),
				zap.Int("actual", gap.Actual))
		}
	}

	logger.Info("Schedule generated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("employees", len(schedule.Employees)),
		zap.Int("coverage_gaps", len(schedule.CoverageGaps)),
		zap.Int("non_compliant", nonCompliant))

	return &ScheduleResult{
		Schedule:          schedule,
		NonCompliantCount: nonCompliant,
		WorkingDays:       info.WorkingDays,
	}, nil
}
