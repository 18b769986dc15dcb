package graph

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/Brakebein/neo4j-request/types"
)

// serverAgentPattern matches agent strings like "Neo4j/4.4.12".
var serverAgentPattern = regexp.MustCompile(`^Neo4j/(\d+)\.(\d+)\.(\d+)`)

// Neo4jClient implements Client for Neo4j graph databases.
// It wraps the official driver with connection bootstrap, transaction
// helpers, and result normalization.
type Neo4jClient struct {
	config Config
	driver neo4j.DriverWithContext
	server ServerInfo

	// newDriver constructs the underlying driver. Replaced in tests.
	newDriver func(target string, auth neo4j.AuthToken, configurers ...func(*neo4j.Config)) (neo4j.DriverWithContext, error)
}

// NewNeo4jClient creates a new Neo4j client with the given configuration.
// The client must be connected via Connect() before use.
func NewNeo4jClient(config Config) (*Neo4jClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Neo4jClient{
		config: config,
		newDriver: func(target string, auth neo4j.AuthToken, configurers ...func(*neo4j.Config)) (neo4j.DriverWithContext, error) {
			return neo4j.NewDriverWithContext(target, auth, configurers...)
		},
	}, nil
}

// Connect establishes a connection to the Neo4j database.
// Connectivity is probed up to Config.ConnectAttempts times with a fixed
// Config.ConnectRetryDelay between attempts. On success the server version
// is detected from its agent string to decide whether sessions may carry a
// database name (multi-database support, Neo4j 4+).
func (c *Neo4jClient) Connect(ctx context.Context) (ServerInfo, error) {
	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")

	driverConfig := func(config *neo4j.Config) {
		config.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		config.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
		config.MaxTransactionRetryTime = c.config.MaxTransactionRetryTime
		// Encryption is controlled by the URI scheme (bolt:// vs bolt+s://).
	}

	var lastErr error

	for attempt := 1; attempt <= c.config.ConnectAttempts; attempt++ {
		driver, err := c.newDriver(c.config.URI, auth, driverConfig)
		if err == nil {
			err = driver.VerifyConnectivity(ctx)
			if err == nil {
				c.driver = driver
				return c.detectServer(ctx)
			}
			// The driver owns a connection pool even when unverified.
			if closeErr := driver.Close(ctx); closeErr != nil {
				slog.Warn("failed to close driver after connectivity failure",
					"error", closeErr)
			}
		}

		lastErr = err

		if ctx.Err() != nil {
			return ServerInfo{}, types.WrapError(ErrCodeConnectionFailed,
				"connection attempt cancelled", ctx.Err())
		}

		if attempt == c.config.ConnectAttempts {
			break
		}

		slog.Warn("could not connect to Neo4j, retrying",
			"attempt", attempt,
			"max_attempts", c.config.ConnectAttempts,
			"retry_delay", c.config.ConnectRetryDelay,
			"error", err)

		select {
		case <-time.After(c.config.ConnectRetryDelay):
		case <-ctx.Done():
			return ServerInfo{}, types.WrapError(ErrCodeConnectionFailed,
				"connection attempt cancelled", ctx.Err())
		}
	}

	return ServerInfo{}, types.WrapError(ErrCodeConnectionFailed,
		fmt.Sprintf("failed to connect after %d attempts", c.config.ConnectAttempts), lastErr)
}

// detectServer queries the connected server for its agent string and parses
// the version out of it.
func (c *Neo4jClient) detectServer(ctx context.Context) (ServerInfo, error) {
	info, err := c.driver.GetServerInfo(ctx)
	if err != nil {
		// Connect has failed at this point, so the client must not be left
		// half-connected with a live connection pool.
		if closeErr := c.driver.Close(ctx); closeErr != nil {
			slog.Warn("failed to close driver after server info failure",
				"error", closeErr)
		}
		c.driver = nil
		return ServerInfo{}, types.WrapError(ErrCodeServerInfo,
			"failed to retrieve server info", err)
	}

	server := ServerInfo{
		Address: info.Address(),
		Agent:   info.Agent(),
	}

	if m := serverAgentPattern.FindStringSubmatch(server.Agent); m != nil {
		server.Major, _ = strconv.Atoi(m[1])
		server.Minor, _ = strconv.Atoi(m[2])
		server.Patch, _ = strconv.Atoi(m[3])
		server.Version = fmt.Sprintf("%d.%d.%d", server.Major, server.Minor, server.Patch)
		server.MultiDatabase = server.Major > 3
	} else {
		// Unknown agent string. Sessions fall back to the default database,
		// which works on every server version.
		slog.Warn("could not parse server agent string, multi-database support disabled",
			"agent", server.Agent)
	}

	c.server = server
	return server, nil
}

// ServerInfo returns the server information detected by Connect.
// The zero value is returned before a successful Connect.
func (c *Neo4jClient) ServerInfo() ServerInfo {
	return c.server
}

// Close releases all resources and closes the database connection.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}

	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(ErrCodeCloseFailed,
			"failed to close driver", err)
	}

	c.driver = nil
	c.server = ServerInfo{}
	return nil
}

// Health returns the current health status of the Neo4j connection.
func (c *Neo4jClient) Health(ctx context.Context) types.HealthStatus {
	if c.driver == nil {
		return types.Unhealthy("driver not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.driver.VerifyConnectivity(healthCtx); err != nil {
		return types.Unhealthy(fmt.Sprintf("connectivity check failed: %v", err))
	}

	return types.Healthy("connected to Neo4j")
}

// ExecuteRead runs a single Cypher statement in a managed read transaction.
func (c *Neo4jClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	if c.driver == nil {
		return nil, types.NewError(ErrCodeNotConnected, "driver not connected")
	}

	session := c.driver.NewSession(ctx, c.sessionConfig())
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return runAndNormalize(ctx, tx, cypher, params)
	})
	if err != nil {
		return nil, types.WrapError(ErrCodeQueryFailed, "read transaction failed", err)
	}

	return result.([]Record), nil
}

// ExecuteWrite runs a single Cypher statement in a managed write transaction.
func (c *Neo4jClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	if c.driver == nil {
		return nil, types.NewError(ErrCodeNotConnected, "driver not connected")
	}

	session := c.driver.NewSession(ctx, c.sessionConfig())
	defer session.Close(ctx)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return runAndNormalize(ctx, tx, cypher, params)
	})
	if err != nil {
		return nil, types.WrapError(ErrCodeQueryFailed, "write transaction failed", err)
	}

	return result.([]Record), nil
}

// ExecuteBatch runs multiple statements sequentially inside one explicit
// transaction. The transaction is committed only if every statement
// succeeds; on the first failure it is rolled back and no results are
// returned.
func (c *Neo4jClient) ExecuteBatch(ctx context.Context, statements []Statement) ([][]Record, error) {
	if c.driver == nil {
		return nil, types.NewError(ErrCodeNotConnected, "driver not connected")
	}

	session := c.driver.NewSession(ctx, c.sessionConfig())
	defer session.Close(ctx)

	tx, err := session.BeginTransaction(ctx)
	if err != nil {
		return nil, types.WrapError(ErrCodeBatchFailed, "failed to begin transaction", err)
	}

	results := make([][]Record, 0, len(statements))

	for i, stmt := range statements {
		records, err := runStatement(ctx, tx, stmt)
		if err != nil {
			rollback(ctx, tx)
			return nil, types.WrapError(ErrCodeBatchFailed,
				fmt.Sprintf("statement %d failed, transaction rolled back", i), err)
		}
		results = append(results, records)
	}

	if err := tx.Commit(ctx); err != nil {
		rollback(ctx, tx)
		return nil, types.WrapError(ErrCodeCommitFailed, "failed to commit transaction", err)
	}

	return results, nil
}

// sessionConfig builds the session configuration. The database name is only
// set when the connected server supports multiple databases; Neo4j 3.x
// rejects sessions that carry one.
func (c *Neo4jClient) sessionConfig() neo4j.SessionConfig {
	if c.server.MultiDatabase {
		return neo4j.SessionConfig{DatabaseName: c.config.Database}
	}
	return neo4j.SessionConfig{}
}

// transactionRunner is the subset of driver transaction types that can run
// a statement. Both neo4j.ManagedTransaction and neo4j.ExplicitTransaction
// satisfy it.
type transactionRunner interface {
	Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultWithContext, error)
}

func runAndNormalize(ctx context.Context, tx transactionRunner, cypher string, params map[string]any) ([]Record, error) {
	result, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, types.WrapError(ErrCodeResultParsing,
			"failed to collect result records", err)
	}

	return NormalizeRecords(records), nil
}

func runStatement(ctx context.Context, tx transactionRunner, stmt Statement) ([]Record, error) {
	return runAndNormalize(ctx, tx, stmt.Query, stmt.Params)
}

// rollback rolls back an explicit transaction, logging instead of failing
// when the rollback itself errors. The original statement error is the one
// callers need to see.
func rollback(ctx context.Context, tx neo4j.ExplicitTransaction) {
	if err := tx.Rollback(ctx); err != nil {
		slog.Warn("failed to roll back transaction",
			"error", types.WrapError(ErrCodeRollbackFailed, "rollback failed", err))
	}
}
