package commands

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/grafikbg/grafik/pkg/core/roster"
	"github.com/grafikbg/grafik/pkg/core/services"
)

// ANSI color codes used by the schedule table
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorBold   = "\033[1m"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the work roster for a month",
		Long:  "Run the roster generator for the given month and year, printing the per-employee schedule, coverage gaps, and compliance issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			outPath, _ := cmd.Flags().GetString("out")

			app.Logger.Debug("generate command",
				zap.Int("month", month),
				zap.Int("year", year),
				zap.String("out", outPath))

			result, err := services.GenerateSchedule(app.Ctx, app.Cfg, app.Calendar,
				app.Logger, time.Month(month), year)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			printSchedule(result)

			if outPath != "" {
				if err := writeScheduleFile(result.Schedule, outPath); err != nil {
					return fmt.Errorf("failed to write schedule file: %w", err)
				}
				fmt.Printf("Schedule written to %s\n", outPath)
			}

			return nil
		},
	}

	now := time.Now()
	cmd.Flags().Int("month", int(now.Month()), "Month to generate (1-12)")
	cmd.Flags().Int("year", now.Year(), "Year to generate")
	cmd.Flags().String("out", "", "Write the schedule as YAML to this file")

	return cmd
}

func printSchedule(result *services.ScheduleResult) {
	schedule := result.Schedule

	fmt.Printf("\n📅 %s%s %d%s — schedule %s\n\n",
		colorBold, schedule.Month, schedule.Year, colorReset, schedule.ID)
	fmt.Printf("Official working days: %d\n\n", result.WorkingDays)

	for _, es := range schedule.Employees {
		status := colorGreen + "OK" + colorReset
		if !es.IsCompliant {
			status = colorRed + "NON-COMPLIANT" + colorReset
		}

		fmt.Printf("%s%s%s — work %d, rest %d, %.1f h [%s]\n",
			colorBold, es.Employee.FullName(), colorReset,
			es.TotalWorkDays, es.TotalRestDays, es.TotalHours, status)

		fmt.Printf("  %s\n", renderEntryRow(es))

		for _, issue := range es.ComplianceIssues {
			fmt.Printf("  %s• %s%s\n", colorRed, issue, colorReset)
		}
	}

	if len(schedule.CoverageGaps) > 0 {
		fmt.Printf("\n%s⚠️  Coverage Gaps (%d):%s\n", colorYellow, len(schedule.CoverageGaps), colorReset)
		for _, gap := range schedule.CoverageGaps {
			fmt.Printf("  • Day %2d — %s: %d of %d required\n",
				gap.Day, gap.PositionName, gap.Actual, gap.Required)
		}
	}
	fmt.Println()
}

// renderEntryRow prints one compact glyph per day: the shift abbreviation
// for work days, "·" for rest, "H" for holidays.
func renderEntryRow(es *roster.EmployeeSchedule) string {
	days := make([]int, 0, len(es.Entries))
	for day := range es.Entries {
		days = append(days, day)
	}
	sort.Ints(days)

	row := ""
	for _, day := range days {
		entry := es.Entries[day]
		switch entry.Kind {
		case roster.EntryHoliday:
			row += "H "
		case roster.EntryRest:
			row += "· "
		default:
			glyph := "W"
			if entry.Shift != nil && entry.Shift.Abbreviation != "" {
				glyph = entry.Shift.Abbreviation
			}
			row += glyph + " "
		}
	}
	return row
}

// scheduleFile is the YAML shape written by --out
type scheduleFile struct {
	ID          string              `yaml:"id"`
	Month       int                 `yaml:"month"`
	Year        int                 `yaml:"year"`
	GeneratedAt string              `yaml:"generatedAt"`
	Employees   []scheduleFileEntry `yaml:"employees"`
	Gaps        []scheduleFileGap   `yaml:"coverageGaps,omitempty"`
}

type scheduleFileEntry struct {
	Employee      string            `yaml:"employee"`
	TotalHours    float64           `yaml:"totalHours"`
	TotalWorkDays int               `yaml:"totalWorkDays"`
	TotalRestDays int               `yaml:"totalRestDays"`
	Compliant     bool              `yaml:"compliant"`
	Issues        []string          `yaml:"issues,omitempty"`
	Days          map[int]string    `yaml:"days"`
}

type scheduleFileGap struct {
	Day      int    `yaml:"day"`
	Position string `yaml:"position"`
	Required int    `yaml:"required"`
	Actual   int    `yaml:"actual"`
}

func writeScheduleFile(schedule *roster.MonthSchedule, path string) error {
	out := scheduleFile{
		ID:          schedule.ID,
		Month:       int(schedule.Month),
		Year:        schedule.Year,
		GeneratedAt: schedule.GeneratedAt.Format(time.RFC3339),
	}

	for _, es := range schedule.Employees {
		entry := scheduleFileEntry{
			Employee:      es.Employee.FullName(),
			TotalHours:    es.TotalHours,
			TotalWorkDays: es.TotalWorkDays,
			TotalRestDays: es.TotalRestDays,
			Compliant:     es.IsCompliant,
			Issues:        es.ComplianceIssues,
			Days:          make(map[int]string, len(es.Entries)),
		}
		for day, dayEntry := range es.Entries {
			switch dayEntry.Kind {
			case roster.EntryHoliday:
				entry.Days[day] = "holiday"
			case roster.EntryRest:
				entry.Days[day] = "rest"
			default:
				label := fmt.Sprintf("work %.1fh", dayEntry.Hours)
				if dayEntry.Shift != nil {
					label = fmt.Sprintf("%s %.1fh", dayEntry.Shift.Name, dayEntry.Hours)
				}
				entry.Days[day] = label
			}
		}
		out.Employees = append(out.Employees, entry)
	}

	for _, gap := range schedule.CoverageGaps {
		out.Gaps = append(out.Gaps, scheduleFileGap{
			Day:      gap.Day,
			Position: gap.PositionName,
			Required: gap.Required,
			Actual:   gap.Actual,
		})
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
