package config

import (
	"github.com/Brakebein/neo4j-request/graph"
)

// Config is the top-level CLI configuration.
type Config struct {
	// Connection holds the database connection settings.
	Connection graph.Config `mapstructure:"connection"`

	// LogLevel controls slog verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Connection: graph.DefaultConfig(),
		LogLevel:   "info",
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	return c.Connection.Validate()
}
