package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/grafikbg/grafik/pkg/core/model"
)

// ListEmployeesCmd creates the list-employees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-employees",
		Short: "List the configured employees",
		Long:  "Print every configured employee with their position, contract hours and minor status, grouped by position",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("list-employees command")

			settings := app.Cfg.FirmSettings()
			employees := app.Cfg.EmployeeList()

			positionName := make(map[string]string, len(settings.Positions))
			for _, pos := range settings.Positions {
				positionName[pos.ID] = pos.Name
			}

			byPosition := make(map[string][]model.Employee)
			for _, emp := range employees {
				byPosition[emp.PositionID] = append(byPosition[emp.PositionID], emp)
			}

			positionIDs := make([]string, 0, len(byPosition))
			for id := range byPosition {
				positionIDs = append(positionIDs, id)
			}
			sort.Strings(positionIDs)

			fmt.Printf("\n%s%s%s — %d employee(s)\n", colorBold, settings.Name, colorReset, len(employees))
			for _, id := range positionIDs {
				name := positionName[id]
				if name == "" {
					name = "unassigned"
				}
				fmt.Printf("\n%s%s%s\n", colorBold, name, colorReset)

				group := byPosition[id]
				sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
				for _, emp := range group {
					minor := ""
					if emp.IsMinor {
						minor = colorYellow + " (minor)" + colorReset
					}
					fmt.Printf("  • %s — %dh contract%s\n", emp.FullName(), emp.ContractHours, minor)
				}
			}
			fmt.Println()
			return nil
		},
	}
}
