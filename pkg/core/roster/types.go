package roster

import (
	"time"

	"github.com/grafikbg/grafik/pkg/core/model"
)

// EntryKind distinguishes the three per-day schedule entry types
type EntryKind string

const (
	EntryRest    EntryKind = "rest"
	EntryHoliday EntryKind = "holiday"
	EntryWork    EntryKind = "work"
)

// ScheduleEntry is one employee's record for one calendar day.
// Work entries carry the assigned shift and the derived hours; Rest and
// Holiday entries have no payload.
type ScheduleEntry struct {
	Kind EntryKind

	// Work payload; zero values for Rest and Holiday entries
	Shift         *model.Shift // nil when no shift could be assigned
	Hours         float64
	ContractHours model.ContractHours
	Overtime      float64
}

// EmployeeSchedule is one employee's full month: the day-to-entry mapping,
// running totals, and the post-run compliance verdict.
type EmployeeSchedule struct {
	Employee model.Employee

	// Entries maps calendar day-number (1-based) to that day's entry.
	// After a run, every day of the month has exactly one entry.
	Entries map[int]ScheduleEntry

	TotalHours    float64
	TotalRestDays int
	TotalWorkDays int

	IsCompliant      bool
	ComplianceIssues []string
}

// CoverageGap records a workable day on which a position's working headcount
// fell below its configured minimum. Gaps are observations, never corrected.
type CoverageGap struct {
	Day          int
	PositionID   string
	PositionName string
	Required     int
	Actual       int
}

// MonthSchedule is the complete result of one generation run
type MonthSchedule struct {
	ID    string // Assigned by the caller; empty inside the core
	Month time.Month
	Year  int

	Employees    []*EmployeeSchedule
	CoverageGaps []CoverageGap

	GeneratedAt time.Time
}

// ScheduleFor returns the schedule for the given employee ID, or nil
func (m *MonthSchedule) ScheduleFor(employeeID string) *EmployeeSchedule {
	for _, es := range m.Employees {
		if es.Employee.ID == employeeID {
			return es
		}
	}
	return nil
}
