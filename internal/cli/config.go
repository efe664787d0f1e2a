package cli

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the application configuration, loaded from the environment.
type Config struct {
	DBPath     string `envconfig:"MAINT_DB_PATH" default:"maintenance.db"`
	ReportsDir string `envconfig:"MAINT_REPORTS_DIR" default:"reports"`
	LogLevel   string `envconfig:"MAINT_LOG_LEVEL" default:"info"`
	LogPretty  bool   `envconfig:"MAINT_LOG_PRETTY" default:"false"`
	Port       int    `envconfig:"MAINT_PORT" default:"8080"`
}

// LoadConfig reads the configuration from MAINT_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}
