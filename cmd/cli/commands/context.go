package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/grafikbg/grafik/internal/config"
	"github.com/grafikbg/grafik/pkg/calendar"
)

// AppContext holds the dependencies shared by all commands
type AppContext struct {
	Ctx      context.Context
	Cfg      *config.Config
	Calendar calendar.Provider
	Logger   *zap.Logger
}
