package calendar

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// MonthInfo is the authoritative calendar view of one month: the official
// working-day and working-hour counts plus the holiday day-numbers.
type MonthInfo struct {
	WorkingDays  int
	WorkingHours int
	Holidays     []int
}

// Provider answers calendar questions for schedule generation.
// Implementations are read-only and safe for concurrent use.
type Provider interface {
	MonthInfo(month time.Month, year int) (MonthInfo, error)
	IsHoliday(date time.Time) bool
}

// DaysInMonth returns the number of calendar days in the given month
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RuleProvider expands holiday recurrence rules and fixed dates into
// per-month calendar info. Official working days are the operating weekdays
// of the month minus holidays; official working hours assume an 8-hour day.
type RuleProvider struct {
	rules         []*rrule.RRule
	fixedDates    map[string]bool // "2006-01-02" keys
	operatingDays map[time.Weekday]bool
}

// NewRuleProvider builds a provider from RFC-5545 RRULE strings and fixed
// "YYYY-MM-DD" dates. Operating days default to Monday-Friday when empty.
func NewRuleProvider(ruleStrs []string, fixedDates []string, operatingDays []time.Weekday) (*RuleProvider, error) {
	p := &RuleProvider{
		fixedDates:    make(map[string]bool),
		operatingDays: make(map[time.Weekday]bool),
	}

	for i, s := range ruleStrs {
		rule, err := rrule.StrToRRule(s)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday rule [%d] %q: %w", i, s, err)
		}
		p.rules = append(p.rules, rule)
	}

	for i, d := range fixedDates {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date [%d] %q: %w", i, d, err)
		}
		p.fixedDates[parsed.Format("2006-01-02")] = true
	}

	if len(operatingDays) == 0 {
		operatingDays = []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}
	}
	for _, wd := range operatingDays {
		p.operatingDays[wd] = true
	}

	return p, nil
}

// IsHoliday reports whether the given date matches a fixed holiday date or
// any holiday recurrence rule.
func (p *RuleProvider) IsHoliday(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if p.fixedDates[day.Format("2006-01-02")] {
		return true
	}

	// A rule matches if it produces an occurrence inside the day
	for _, rule := range p.rules {
		occurrences := rule.Between(day.Add(-time.Second), day.Add(24*time.Hour), false)
		for _, occ := range occurrences {
			if occ.Year() == day.Year() && occ.Month() == day.Month() && occ.Day() == day.Day() {
				return true
			}
		}
	}

	return false
}

// MonthInfo computes the official calendar for one month
func (p *RuleProvider) MonthInfo(month time.Month, year int) (MonthInfo, error) {
	days := DaysInMonth(month, year)

	info := MonthInfo{}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		holiday := p.IsHoliday(date)

		if holiday {
			info.Holidays = append(info.Holidays, day)
		}

		if p.operatingDays[date.Weekday()] && !holiday {
			info.WorkingDays++
		}
	}

	info.WorkingHours = info.WorkingDays * 8

	return info, nil
}

// StaticProvider serves fixed holiday day-numbers keyed by month, for tests
// and fixture-driven runs.
type StaticProvider struct {
	// Holidays maps "year-month" to holiday day-numbers
	holidays      map[string][]int
	operatingDays map[time.Weekday]bool
}

// NewStaticProvider builds a provider with a fixed holiday set for one or
// more months. Operating days default to Monday-Friday when empty.
func NewStaticProvider(operatingDays []time.Weekday) *StaticProvider {
	p := &StaticProvider{
		holidays:      make(map[string][]int),
		operatingDays: make(map[time.Weekday]bool),
	}

	if len(operatingDays) == 0 {
		operatingDays = []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		}
	}
	for _, wd := range operatingDays {
		p.operatingDays[wd] = true
	}

	return p
}

// SetHolidays registers holiday day-numbers for a month
func (p *StaticProvider) SetHolidays(month time.Month, year int, days []int) {
	p.holidays[monthKey(month, year)] = days
}

func (p *StaticProvider) IsHoliday(date time.Time) bool {
	for _, d := range p.holidays[monthKey(date.Month(), date.Year())] {
		if d == date.Day() {
			return true
		}
	}
	return false
}

func (p *StaticProvider) MonthInfo(month time.Month, year int) (MonthInfo, error) {
	days := DaysInMonth(month, year)

	info := MonthInfo{Holidays: append([]int{}, p.holidays[monthKey(month, year)]...)}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if p.operatingDays[date.Weekday()] && !p.IsHoliday(date) {
			info.WorkingDays++
		}
	}

	info.WorkingHours = info.WorkingDays * 8

	return info, nil
}

func monthKey(month time.Month, year int) string {
	return fmt.Sprintf("%d-%d", year, month)
}
