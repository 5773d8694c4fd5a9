package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/grafikbg/grafik/pkg/calendar"
	"github.com/grafikbg/grafik/pkg/core/model"
	"github.com/grafikbg/grafik/pkg/core/roster"
)

// Firm holds the firm-level scheduling settings
type Firm struct {
	Name            string `yaml:"name" validate:"required"`
	WorksOnHolidays bool   `yaml:"worksOnHolidays"`
	// OperatingDays are time.Weekday values (Sunday = 0). Empty means the
	// default Monday-Friday week.
	OperatingDays []int `yaml:"operatingDays,omitempty" validate:"dive,min=0,max=6"`
}

// Position configures one staffed role
type Position struct {
	ID        string `yaml:"id" validate:"required"`
	Name      string `yaml:"name" validate:"required"`
	MinPerDay int    `yaml:"minPerDay" validate:"required,min=1"`
}

// Shift configures one shift definition with "HH:MM" clock times
type Shift struct {
	ID           string `yaml:"id" validate:"required"`
	Name         string `yaml:"name" validate:"required"`
	Abbreviation string `yaml:"abbreviation,omitempty"`
	Start        string `yaml:"start" validate:"required"`
	End          string `yaml:"end" validate:"required"`
	BreakMinutes int    `yaml:"breakMinutes,omitempty" validate:"min=0"`
}

// Employee configures one roster member
type Employee struct {
	ID            string `yaml:"id" validate:"required"`
	FirstName     string `yaml:"firstName" validate:"required"`
	LastName      string `yaml:"lastName" validate:"required"`
	Position      string `yaml:"position,omitempty"`
	ContractHours int    `yaml:"contractHours" validate:"required,oneof=2 4 6 7 8 10 12"`
	IsMinor       bool   `yaml:"isMinor"`
	BirthDate     string `yaml:"birthDate,omitempty"`
}

// Calendar configures the holiday calendar: RFC-5545 recurrence rules for
// recurring holidays plus fixed "YYYY-MM-DD" dates.
type Calendar struct {
	HolidayRules []string `yaml:"holidayRules,omitempty"`
	Holidays     []string `yaml:"holidays,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Firm      Firm       `yaml:"firm" validate:"required"`
	Positions []Position `yaml:"positions" validate:"required,min=1,dive"`
	Shifts    []Shift    `yaml:"shifts,omitempty" validate:"dive"`
	Employees []Employee `yaml:"employees" validate:"required,min=1,dive"`
	Calendar  Calendar   `yaml:"calendar,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from grafik_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct plus the parts struct tags
// cannot express: clock formats, holiday rule syntax, date formats, and
// referential integrity between employees and positions.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, shift := range cfg.Shifts {
		if _, err := roster.ParseClock(shift.Start); err != nil {
			return fmt.Errorf("invalid start time in shifts[%d]: %w", i, err)
		}
		if _, err := roster.ParseClock(shift.End); err != nil {
			return fmt.Errorf("invalid end time in shifts[%d]: %w", i, err)
		}
	}

	positionIDs := make(map[string]bool)
	for _, pos := range cfg.Positions {
		positionIDs[pos.ID] = true
	}
	for i, emp := range cfg.Employees {
		if emp.Position != "" && !positionIDs[emp.Position] {
			return fmt.Errorf("employees[%d] references unknown position %q", i, emp.Position)
		}
		if emp.BirthDate != "" {
			if _, err := time.Parse("2006-01-02", emp.BirthDate); err != nil {
				return fmt.Errorf("invalid birth date in employees[%d]: %w", i, err)
			}
		}
	}

	for i, rule := range cfg.Calendar.HolidayRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in calendar.holidayRules[%d]: %w", i, err)
		}
	}
	for i, date := range cfg.Calendar.Holidays {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date in calendar.holidays[%d]: %w", i, err)
		}
	}

	return nil
}

// FirmSettings converts the configuration into the core's firm settings
func (c *Config) FirmSettings() model.FirmSettings {
	settings := model.FirmSettings{
		Name:            c.Firm.Name,
		WorksOnHolidays: c.Firm.WorksOnHolidays,
	}

	for _, day := range c.Firm.OperatingDays {
		settings.OperatingDays = append(settings.OperatingDays, time.Weekday(day))
	}

	for _, pos := range c.Positions {
		settings.Positions = append(settings.Positions, model.Position{
			ID:        pos.ID,
			Name:      pos.Name,
			MinPerDay: pos.MinPerDay,
		})
	}

	for _, shift := range c.Shifts {
		settings.Shifts = append(settings.Shifts, model.Shift{
			ID:           shift.ID,
			Name:         shift.Name,
			Abbreviation: shift.Abbreviation,
			StartTime:    shift.Start,
			EndTime:      shift.End,
			BreakMinutes: shift.BreakMinutes,
		})
	}

	return settings
}

// EmployeeList converts the configured employees into core employee records
func (c *Config) EmployeeList() []model.Employee {
	employees := make([]model.Employee, 0, len(c.Employees))
	for _, emp := range c.Employees {
		record := model.Employee{
			ID:            emp.ID,
			FirstName:     emp.FirstName,
			LastName:      emp.LastName,
			PositionID:    emp.Position,
			ContractHours: model.ContractHours(emp.ContractHours),
			IsMinor:       emp.IsMinor,
		}
		if emp.BirthDate != "" {
			// Validated in Validate; a parse failure cannot happen here
			if parsed, err := time.Parse("2006-01-02", emp.BirthDate); err == nil {
				record.BirthDate = &parsed
			}
		}
		employees = append(employees, record)
	}
	return employees
}

// CalendarProvider builds the holiday calendar provider from the configured
// rules, dates, and operating days.
func (c *Config) CalendarProvider() (calendar.Provider, error) {
	return calendar.NewRuleProvider(
		c.Calendar.HolidayRules,
		c.Calendar.Holidays,
		c.FirmSettings().EffectiveOperatingDays(),
	)
}

// findConfigFile searches for grafik_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "grafik_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
