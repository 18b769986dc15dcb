package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// Hand-rolled fakes for the driver interfaces. Only the methods the client
// actually calls are implemented; everything else panics via the embedded
// nil interface, which would surface immediately in a test.

type fakeServerInfo struct {
	address string
	agent   string
}

func (s fakeServerInfo) Address() string { return s.address }
func (s fakeServerInfo) Agent() string   { return s.agent }

func (s fakeServerInfo) ProtocolVersion() db.ProtocolVersion {
	return db.ProtocolVersion{Major: 5}
}

type fakeDriver struct {
	neo4j.DriverWithContext

	agent         string
	verifyErrs    []error
	verifyCalls   int
	serverInfoErr error
	session       neo4j.SessionWithContext
	sessionConfig neo4j.SessionConfig
	closed        bool
}

func (d *fakeDriver) VerifyConnectivity(ctx context.Context) error {
	d.verifyCalls++
	if len(d.verifyErrs) > 0 {
		err := d.verifyErrs[0]
		d.verifyErrs = d.verifyErrs[1:]
		return err
	}
	return nil
}

func (d *fakeDriver) GetServerInfo(ctx context.Context) (neo4j.ServerInfo, error) {
	if d.serverInfoErr != nil {
		return nil, d.serverInfoErr
	}
	return fakeServerInfo{address: "localhost:7687", agent: d.agent}, nil
}

func (d *fakeDriver) NewSession(ctx context.Context, config neo4j.SessionConfig) neo4j.SessionWithContext {
	d.sessionConfig = config
	return d.session
}

func (d *fakeDriver) Close(ctx context.Context) error {
	d.closed = true
	return nil
}

type fakeSession struct {
	neo4j.SessionWithContext

	tx       *fakeManagedTx
	explicit *fakeExplicitTx
	beginErr error
	closed   bool
}

func (s *fakeSession) ExecuteRead(ctx context.Context, work neo4j.ManagedTransactionWork, configurers ...func(*neo4j.TransactionConfig)) (any, error) {
	return work(s.tx)
}

func (s *fakeSession) ExecuteWrite(ctx context.Context, work neo4j.ManagedTransactionWork, configurers ...func(*neo4j.TransactionConfig)) (any, error) {
	return work(s.tx)
}

func (s *fakeSession) BeginTransaction(ctx context.Context, configurers ...func(*neo4j.TransactionConfig)) (neo4j.ExplicitTransaction, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.explicit, nil
}

func (s *fakeSession) Close(ctx context.Context) error {
	s.closed = true
	return nil
}

type fakeManagedTx struct {
	neo4j.ManagedTransaction

	records    []*neo4j.Record
	runErr     error
	collectErr error
	queries    []string
}

func (t *fakeManagedTx) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultWithContext, error) {
	t.queries = append(t.queries, cypher)
	if t.runErr != nil {
		return nil, t.runErr
	}
	return &fakeResult{records: t.records, collectErr: t.collectErr}, nil
}

type fakeExplicitTx struct {
	neo4j.ExplicitTransaction

	records     []*neo4j.Record
	failOn      string
	commitErr   error
	rollbackErr error
	queries     []string
	committed   bool
	rolledBack  bool
}

func (t *fakeExplicitTx) Run(ctx context.Context, cypher string, params map[string]any) (neo4j.ResultWithContext, error) {
	t.queries = append(t.queries, cypher)
	if t.failOn != "" && cypher == t.failOn {
		return nil, errSyntax
	}
	return &fakeResult{records: t.records}, nil
}

func (t *fakeExplicitTx) Commit(ctx context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeExplicitTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return t.rollbackErr
}

type fakeResult struct {
	neo4j.ResultWithContext

	records    []*neo4j.Record
	collectErr error
}

func (r *fakeResult) Collect(ctx context.Context) ([]*neo4j.Record, error) {
	if r.collectErr != nil {
		return nil, r.collectErr
	}
	return r.records, nil
}

// useFakeDriver rewires a client to hand out the given fake driver instead
// of dialing a real server.
func useFakeDriver(c *Neo4jClient, d *fakeDriver) {
	c.newDriver = func(target string, auth neo4j.AuthToken, configurers ...func(*neo4j.Config)) (neo4j.DriverWithContext, error) {
		return d, nil
	}
}
