package model

import "time"

// ContractHours is the set of weekly-contract day lengths a firm can hire on.
type ContractHours int

const (
	Contract2  ContractHours = 2
	Contract4  ContractHours = 4
	Contract6  ContractHours = 6
	Contract7  ContractHours = 7
	Contract8  ContractHours = 8
	Contract10 ContractHours = 10
	Contract12 ContractHours = 12
)

func (c ContractHours) IsValid() bool {
	switch c {
	case Contract2, Contract4, Contract6, Contract7, Contract8, Contract10, Contract12:
		return true
	}
	return false
}

// Position represents a staffed role within the firm
type Position struct {
	ID        string
	Name      string
	MinPerDay int // minimum employees required on any workable day
}

// Shift represents a firm-wide shift definition.
// StartTime and EndTime are clock times in "HH:MM" form; a shift whose end
// time is at or before its start time wraps past midnight.
type Shift struct {
	ID           string
	Name         string
	Abbreviation string
	StartTime    string
	EndTime      string
	BreakMinutes int
}

// Employee represents a member of the roster
type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	PositionID    string // Empty string if unassigned
	ContractHours ContractHours
	IsMinor       bool
	BirthDate     *time.Time // Display only, may be nil
}

// FullName returns the employee's display name
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// FirmSettings bundles the firm configuration a generation run consumes
type FirmSettings struct {
	Name            string
	Positions       []Position
	Shifts          []Shift
	WorksOnHolidays bool
	// OperatingDays holds the weekdays the firm opens on, as time.Weekday
	// values. Empty means the default Monday-Friday week.
	OperatingDays []time.Weekday
}

// DefaultOperatingDays is the Monday-Friday working week
var DefaultOperatingDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// EffectiveOperatingDays returns the configured operating weekdays,
// falling back to Monday-Friday when none are set.
func (f FirmSettings) EffectiveOperatingDays() []time.Weekday {
	if len(f.OperatingDays) == 0 {
		return DefaultOperatingDays
	}
	return f.OperatingDays
}
