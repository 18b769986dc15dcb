package graph

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Brakebein/neo4j-request/types"
)

// MockCall represents a recorded method call on the mock client.
type MockCall struct {
	Method    string
	Args      []interface{}
	Timestamp time.Time
}

// MockClient is a mock implementation of Client for testing.
// It provides configurable responses and tracks all method calls for
// verification.
type MockClient struct {
	mu sync.RWMutex

	// State
	connected     bool
	serverInfo    ServerInfo
	healthStatus  types.HealthStatus
	statements    []Statement
	calls         []MockCall
	databaseID    string
	nextElementID int64

	// Configurable responses
	readResults  [][]Record
	writeResults [][]Record
	batchResults [][][]Record
	readError    error
	writeError   error
	batchError   error
	connectError error
	closeError   error
}

// NewMockClient creates a new mock client for testing.
func NewMockClient() *MockClient {
	return &MockClient{
		connected:    false,
		serverInfo:   defaultMockServerInfo(),
		healthStatus: types.NewHealthStatus(types.HealthStateHealthy, "mock client"),
		statements:   make([]Statement, 0),
		calls:        make([]MockCall, 0),
		databaseID:   uuid.NewString(),
		readResults:  make([][]Record, 0),
		writeResults: make([][]Record, 0),
		batchResults: make([][][]Record, 0),
	}
}

func defaultMockServerInfo() ServerInfo {
	return ServerInfo{
		Address:       "localhost:7687",
		Agent:         "Neo4j/5.0.0",
		Version:       "5.0.0",
		Major:         5,
		MultiDatabase: true,
	}
}

// NextElementID returns a fresh element ID in the shape the server hands
// out, "4:<database uuid>:<n>". The database part is fixed per mock
// instance and the counter is monotonic, so fabricated nodes stay
// distinguishable within a test.
func (m *MockClient) NextElementID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := fmt.Sprintf("4:%s:%d", m.databaseID, m.nextElementID)
	m.nextElementID++
	return id
}

// MockNode builds a node-shaped record from the given properties, stamped
// with a generated element ID. Useful for seeding result queues with
// realistic node fixtures.
func (m *MockClient) MockNode(props Record) Record {
	node := make(Record, len(props)+1)
	for k, v := range props {
		node[k] = v
	}
	node["elementId"] = m.NextElementID()
	return node
}

// Connect records the call and simulates connection.
func (m *MockClient) Connect(ctx context.Context) (ServerInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "Connect",
		Args:      []interface{}{},
		Timestamp: time.Now(),
	})

	if m.connectError != nil {
		return ServerInfo{}, m.connectError
	}

	m.connected = true
	return m.serverInfo, nil
}

// Close records the call and simulates disconnection.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "Close",
		Args:      []interface{}{},
		Timestamp: time.Now(),
	})

	if m.closeError != nil {
		return m.closeError
	}

	m.connected = false
	return nil
}

// Health records the call and returns the configured health status.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "Health",
		Args:      []interface{}{},
		Timestamp: time.Now(),
	})

	if !m.connected {
		return types.Unhealthy("not connected")
	}

	return m.healthStatus
}

// ExecuteRead records the call and returns the next configured read result.
func (m *MockClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "ExecuteRead",
		Args:      []interface{}{cypher, params},
		Timestamp: time.Now(),
	})

	if !m.connected {
		return nil, types.NewError(ErrCodeNotConnected, "not connected")
	}

	if m.readError != nil {
		return nil, m.readError
	}

	m.statements = append(m.statements, Statement{Query: cypher, Params: params})

	// Return the first configured result (FIFO)
	if len(m.readResults) > 0 {
		result := m.readResults[0]
		m.readResults = m.readResults[1:]
		return result, nil
	}

	return []Record{}, nil
}

// ExecuteWrite records the call and returns the next configured write result.
func (m *MockClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "ExecuteWrite",
		Args:      []interface{}{cypher, params},
		Timestamp: time.Now(),
	})

	if !m.connected {
		return nil, types.NewError(ErrCodeNotConnected, "not connected")
	}

	if m.writeError != nil {
		return nil, m.writeError
	}

	m.statements = append(m.statements, Statement{Query: cypher, Params: params})

	if len(m.writeResults) > 0 {
		result := m.writeResults[0]
		m.writeResults = m.writeResults[1:]
		return result, nil
	}

	return []Record{}, nil
}

// ExecuteBatch records the call and returns the next configured batch
// result. On a configured batch error no statements are recorded, matching
// the rollback semantics of the real client.
func (m *MockClient) ExecuteBatch(ctx context.Context, statements []Statement) ([][]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Method:    "ExecuteBatch",
		Args:      []interface{}{statements},
		Timestamp: time.Now(),
	})

	if !m.connected {
		return nil, types.NewError(ErrCodeNotConnected, "not connected")
	}

	if m.batchError != nil {
		return nil, m.batchError
	}

	m.statements = append(m.statements, statements...)

	if len(m.batchResults) > 0 {
		result := m.batchResults[0]
		m.batchResults = m.batchResults[1:]
		return result, nil
	}

	results := make([][]Record, len(statements))
	for i := range results {
		results[i] = []Record{}
	}
	return results, nil
}

// SetServerInfo configures what Connect() should return.
func (m *MockClient) SetServerInfo(info ServerInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serverInfo = info
}

// SetHealthStatus configures what Health() should return.
func (m *MockClient) SetHealthStatus(status types.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.healthStatus = status
}

// AddReadResult adds a read result to the FIFO queue.
func (m *MockClient) AddReadResult(records []Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readResults = append(m.readResults, records)
}

// AddWriteResult adds a write result to the FIFO queue.
func (m *MockClient) AddWriteResult(records []Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeResults = append(m.writeResults, records)
}

// AddBatchResult adds a batch result to the FIFO queue.
func (m *MockClient) AddBatchResult(results [][]Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchResults = append(m.batchResults, results)
}

// SetConnectError configures Connect() to return an error.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetCloseError configures Close() to return an error.
func (m *MockClient) SetCloseError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeError = err
}

// SetReadError configures ExecuteRead() to return an error.
func (m *MockClient) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readError = err
}

// SetWriteError configures ExecuteWrite() to return an error.
func (m *MockClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// SetBatchError configures ExecuteBatch() to return an error.
func (m *MockClient) SetBatchError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batchError = err
}

// GetCalls returns all recorded method calls.
func (m *MockClient) GetCalls() []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// GetCallsByMethod returns all calls to a specific method.
func (m *MockClient) GetCallsByMethod(method string) []MockCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]MockCall, 0)
	for _, call := range m.calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// CallCount returns the total number of method calls.
func (m *MockClient) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.calls)
}

// GetStatements returns every statement executed through the mock, in order.
func (m *MockClient) GetStatements() []Statement {
	m.mu.RLock()
	defer m.mu.RUnlock()

	statements := make([]Statement, len(m.statements))
	copy(statements, m.statements)
	return statements
}

// IsConnected returns whether the mock is in connected state.
func (m *MockClient) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// Reset clears all recorded calls and resets the mock to its initial state.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	m.serverInfo = defaultMockServerInfo()
	m.healthStatus = types.NewHealthStatus(types.HealthStateHealthy, "mock client")
	m.statements = make([]Statement, 0)
	m.calls = make([]MockCall, 0)
	m.nextElementID = 0
	m.readResults = make([][]Record, 0)
	m.writeResults = make([][]Record, 0)
	m.batchResults = make([][][]Record, 0)
	m.readError = nil
	m.writeError = nil
	m.batchError = nil
	m.connectError = nil
	m.closeError = nil
}
