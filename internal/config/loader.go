package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles loading configuration from files and the environment.
type Loader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperLoader implements Loader using Viper.
type viperLoader struct{}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &viperLoader{}
}

// Load loads configuration from the specified file path, with environment
// variables (NEO4J_* prefix) overriding file values.
// Returns an error if the file doesn't exist or cannot be parsed.
func (l *viperLoader) Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshalAndValidate(v)
}

// LoadWithDefaults loads configuration from the specified file path.
// If the file doesn't exist, defaults plus environment overrides are used.
func (l *viperLoader) LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		return fromEnv()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fromEnv()
	}

	return l.Load(path)
}

func fromEnv() (*Config, error) {
	return unmarshalAndValidate(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("connection.uri", defaults.Connection.URI)
	v.SetDefault("connection.username", defaults.Connection.Username)
	v.SetDefault("connection.password", defaults.Connection.Password)
	v.SetDefault("connection.database", defaults.Connection.Database)
	v.SetDefault("connection.max_connection_pool_size", defaults.Connection.MaxConnectionPoolSize)
	v.SetDefault("connection.connection_timeout", defaults.Connection.ConnectionTimeout)
	v.SetDefault("connection.max_transaction_retry_time", defaults.Connection.MaxTransactionRetryTime)
	v.SetDefault("connection.connect_attempts", defaults.Connection.ConnectAttempts)
	v.SetDefault("connection.connect_retry_delay", defaults.Connection.ConnectRetryDelay)

	// NEO4J_CONNECTION_URI, NEO4J_CONNECTION_PASSWORD, ...
	v.SetEnvPrefix("NEO4J")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
