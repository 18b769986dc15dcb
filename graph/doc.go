// Package graph provides a convenience layer over the official Neo4j Go
// driver: connection bootstrap with bounded retry, transaction helpers, and
// normalization of driver records into plain data structures.
//
// # Architecture
//
// The package follows a clean interface-based design:
//
//   - Client: Core interface defining the convenience operations
//   - Neo4jClient: Production implementation wrapping neo4j-go-driver/v5
//   - MockClient: Test implementation with call recording
//
// # Usage
//
// Basic usage:
//
//	config := graph.DefaultConfig()
//	config.URI = "bolt://localhost:7687"
//	config.Username = "neo4j"
//	config.Password = "password"
//
//	client, err := graph.NewNeo4jClient(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	server, err := client.Connect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close(ctx)
//
//	records, err := client.ExecuteRead(ctx,
//	    "MATCH (n:Person {name: $name}) RETURN n",
//	    map[string]any{"name": "Alice"},
//	)
//
// # Connection Bootstrap
//
// Connect probes connectivity up to Config.ConnectAttempts times with a
// fixed Config.ConnectRetryDelay between attempts (5 attempts, 5 seconds by
// default). On success the server's agent string is parsed to detect the
// version; servers newer than 3.x support multiple databases, and only then
// do sessions carry the configured database name. Neo4j 3.x rejects
// sessions that name a database, so the parameter is omitted there.
//
// # Transaction Helpers
//
// ExecuteRead and ExecuteWrite run a single statement in a managed
// transaction. ExecuteBatch opens an explicit transaction, runs its
// statements sequentially, commits only if all of them succeed, and rolls
// back on the first failure. Sessions are opened per call and closed on
// every exit path. No partial results are returned on failure.
//
// # Result Normalization
//
// Query results are returned as []Record, where each Record maps column
// names to plain values. NormalizeValue converts driver types recursively:
//
//   - integers beyond ±(2^53-1) become decimal strings (JSON safety)
//   - temporal and spatial values become their string representations
//   - nodes and relationships unwrap to their property maps
//   - lists and maps normalize element-wise and key-wise
//
// PruneNullCollections additionally collapses the singleton all-null lists
// produced by the OPTIONAL MATCH + collect() idiom into empty lists.
//
// # Error Handling
//
// All errors are wrapped in types.Error with specific error codes:
//
//   - ErrCodeConnectionFailed: connectivity not established within budget
//   - ErrCodeNotConnected: operation on a client that never connected
//   - ErrCodeQueryFailed: statement execution failed
//   - ErrCodeBatchFailed: a batch statement failed, transaction rolled back
//
// # Testing
//
// Use MockClient for unit testing:
//
//	mock := graph.NewMockClient()
//	mock.Connect(ctx)
//
//	// Configure responses
//	mock.AddReadResult([]graph.Record{{"name": "Alice"}})
//
//	// Verify calls
//	calls := mock.GetCallsByMethod("ExecuteRead")
//	assert.Len(t, calls, 1)
//
// # Thread Safety
//
// All implementations are safe for concurrent use. Each helper acquires its
// own session; the driver handles pooling internally.
package graph
