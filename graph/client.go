package graph

import (
	"context"
	"time"

	"github.com/Brakebein/neo4j-request/types"
)

// Client provides an interface for convenience access to a Neo4j database.
// Implementations must be thread-safe for concurrent access.
type Client interface {
	// Connect establishes a connection to the database and verifies
	// connectivity with a bounded number of retries. On success it returns
	// information about the server, including the detected version.
	Connect(ctx context.Context) (ServerInfo, error)

	// Close releases all resources and closes the database connection.
	// Should be called when the client is no longer needed.
	Close(ctx context.Context) error

	// Health returns the current health status of the database connection.
	Health(ctx context.Context) types.HealthStatus

	// ExecuteRead runs a single Cypher statement in a managed read
	// transaction and returns the normalized records.
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error)

	// ExecuteWrite runs a single Cypher statement in a managed write
	// transaction and returns the normalized records.
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error)

	// ExecuteBatch runs multiple statements sequentially inside one explicit
	// transaction. The transaction is committed only if every statement
	// succeeds and rolled back on the first failure, in which case no
	// results are returned.
	ExecuteBatch(ctx context.Context, statements []Statement) ([][]Record, error)
}

// Record is a normalized query result row, mapping column names to plain
// values (scalars, strings, nested maps, or slices thereof).
type Record map[string]any

// Statement is a single Cypher statement with its parameters, used as the
// unit of work in ExecuteBatch.
type Statement struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// ServerInfo describes the server a client connected to.
type ServerInfo struct {
	// Address is the host:port the driver connected to.
	Address string

	// Agent is the raw server agent string, e.g. "Neo4j/5.23.0".
	Agent string

	// Version is the parsed "<major>.<minor>.<patch>" part of the agent
	// string, or empty if the agent did not match the expected pattern.
	Version string

	Major int
	Minor int
	Patch int

	// MultiDatabase reports whether the server supports multiple databases.
	// Detected from the major version (4+); sessions omit the database name
	// for older servers.
	MultiDatabase bool
}

// Config contains configuration options for the Neo4j client.
type Config struct {
	// URI is the connection URI for the database.
	// Use:
	//   - "bolt://host:port" for unencrypted connections
	//   - "bolt+s://host:port" for TLS encrypted connections
	//   - "neo4j://" or "neo4j+s://" for routing
	URI string `mapstructure:"uri"`

	// Username for authentication.
	Username string `mapstructure:"username"`

	// Password for authentication.
	Password string `mapstructure:"password"`

	// Database name to use for sessions. Only applied when the server
	// supports multiple databases (Neo4j 4+).
	Database string `mapstructure:"database"`

	// MaxConnectionPoolSize limits the number of connections in the pool.
	// Zero or negative values use the driver default.
	MaxConnectionPoolSize int `mapstructure:"max_connection_pool_size"`

	// ConnectionTimeout is the maximum time to wait for a connection.
	ConnectionTimeout time.Duration `mapstructure:"connection_timeout"`

	// MaxTransactionRetryTime is the maximum time the driver retries failed
	// managed transactions.
	MaxTransactionRetryTime time.Duration `mapstructure:"max_transaction_retry_time"`

	// ConnectAttempts is the number of connectivity probes made by Connect
	// before giving up.
	ConnectAttempts int `mapstructure:"connect_attempts"`

	// ConnectRetryDelay is the fixed delay between connectivity probes.
	ConnectRetryDelay time.Duration `mapstructure:"connect_retry_delay"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		URI:                     "bolt://localhost:7687",
		Username:                "neo4j",
		Password:                "password",
		Database:                "neo4j",
		MaxConnectionPoolSize:   50,
		ConnectionTimeout:       30 * time.Second,
		MaxTransactionRetryTime: 30 * time.Second,
		ConnectAttempts:         5,
		ConnectRetryDelay:       5 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.URI == "" {
		return types.NewError(ErrCodeInvalidConfig, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(ErrCodeInvalidConfig, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(ErrCodeInvalidConfig, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(ErrCodeInvalidConfig, "ConnectionTimeout must be positive")
	}
	if c.MaxTransactionRetryTime <= 0 {
		return types.NewError(ErrCodeInvalidConfig, "MaxTransactionRetryTime must be positive")
	}
	if c.ConnectAttempts <= 0 {
		return types.NewError(ErrCodeInvalidConfig, "ConnectAttempts must be positive")
	}
	if c.ConnectRetryDelay < 0 {
		return types.NewError(ErrCodeInvalidConfig, "ConnectRetryDelay cannot be negative")
	}
	return nil
}
