package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grafikbg/grafik/pkg/core/services"
)

// ShowCalendarCmd creates the show-calendar command
func ShowCalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-calendar",
		Short: "Show the official work calendar for a month",
		Long:  "Resolve the holiday rules and operating days for a month and print the official working-day and working-hour counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")

			app.Logger.Debug("show-calendar command",
				zap.Int("month", month),
				zap.Int("year", year))

			view, err := services.ViewCalendar(app.Calendar, app.Logger, time.Month(month), year)
			if err != nil {
				return fmt.Errorf("failed to resolve calendar: %w", err)
			}

			fmt.Printf("\n📅 %s%s %d%s\n", colorBold, view.Month, view.Year, colorReset)
			fmt.Printf("  Days in month: %d\n", view.DaysInMonth)
			fmt.Printf("  Working days:  %d\n", view.WorkingDays)
			fmt.Printf("  Working hours: %d\n", view.WorkingHours)

			if len(view.Holidays) == 0 {
				fmt.Println("  Holidays:      none")
			} else {
				fmt.Printf("  Holidays:     ")
				for _, day := range view.Holidays {
					fmt.Printf(" %s%d %s%s", colorYellow, day, view.Month, colorReset)
				}
				fmt.Println()
			}
			fmt.Println()
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().Int("month", int(now.Month()), "Month to show (1-12)")
	cmd.Flags().Int("year", now.Year(), "Year to show")

	return cmd
}
