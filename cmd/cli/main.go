package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grafikbg/grafik/cmd/cli/commands"
	"github.com/grafikbg/grafik/internal/config"
	"github.com/grafikbg/grafik/pkg/utils/logging"
)

var app *commands.AppContext

func main() {
	rootCmd := &cobra.Command{
		Use:   "grafik",
		Short: "Grafik - Generate monthly work rosters",
		Long:  `A CLI tool for generating legally compliant monthly work schedules: rest-day planning, shift balancing, and working-time compliance checks.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(commands.GenerateCmd(appRef()))
	rootCmd.AddCommand(commands.ValidateConfigCmd(appRef()))
	rootCmd.AddCommand(commands.ListEmployeesCmd(appRef()))
	rootCmd.AddCommand(commands.ShowCalendarCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef hands commands a stable pointer; initApp fills it in before
// any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up the logger, runtime environment, configuration, and calendar
func initApp() error {
	ref := appRef()
	ref.Ctx = context.Background()

	runtime, err := config.LoadRuntime()
	if err != nil {
		return fmt.Errorf("failed to load runtime settings: %w", err)
	}

	ref.Logger, err = logging.InitLogger(runtime.Env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ref.Logger.Info("Starting application", zap.String("environment", runtime.Env))

	ref.Logger.Info("Loading configuration")
	if runtime.ConfigPath != "" {
		ref.Cfg, err = config.LoadFromPath(runtime.ConfigPath)
	} else {
		ref.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ref.Logger.Debug("Configuration loaded successfully",
		zap.String("firm", ref.Cfg.Firm.Name),
		zap.Int("employees", len(ref.Cfg.Employees)))

	ref.Calendar, err = ref.Cfg.CalendarProvider()
	if err != nil {
		return fmt.Errorf("failed to build calendar provider: %w", err)
	}
	ref.Logger.Debug("Calendar provider initialized")

	return nil
}
