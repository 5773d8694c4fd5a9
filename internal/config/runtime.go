package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds process-level settings read from the environment, as opposed
// to the firm configuration file.
type Runtime struct {
	// Env names the running environment and prefixes the log file
	Env string `env:"GRAFIK_ENV" envDefault:"dev"`

	// ConfigPath overrides the config file search when set
	ConfigPath string `env:"GRAFIK_CONFIG"`
}

// LoadRuntime reads runtime settings from the environment
func LoadRuntime() (*Runtime, error) {
	var rt Runtime
	if err := env.Parse(&rt); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &rt, nil
}
