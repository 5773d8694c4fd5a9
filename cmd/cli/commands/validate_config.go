package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grafikbg/grafik/internal/config"
)

// ValidateConfigCmd creates the validate-config command
func ValidateConfigCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config",
		Short: "Validate the loaded configuration",
		Long:  "Check the firm settings, shift catalogue, employees and calendar rules for problems without generating a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("validate-config command")

			// Loading already validated; re-run so the user gets every
			// problem reported even after editing the file in place.
			if err := config.Validate(app.Cfg); err != nil {
				return fmt.Errorf("configuration is invalid: %w", err)
			}

			app.Logger.Info("Configuration is valid",
				zap.String("firm", app.Cfg.Firm.Name),
				zap.Int("positions", len(app.Cfg.Positions)),
				zap.Int("shifts", len(app.Cfg.Shifts)),
				zap.Int("employees", len(app.Cfg.Employees)))

			fmt.Printf("%s✓ Configuration is valid%s — %d position(s), %d shift(s), %d employee(s)\n",
				colorGreen, colorReset,
				len(app.Cfg.Positions), len(app.Cfg.Shifts), len(app.Cfg.Employees))
			return nil
		},
	}
}
