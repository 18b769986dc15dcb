package graph

import "github.com/Brakebein/neo4j-request/types"

// Graph database error codes
const (
	// Connection errors
	ErrCodeConnectionFailed types.ErrorCode = "GRAPH_CONNECTION_FAILED"
	ErrCodeNotConnected     types.ErrorCode = "GRAPH_NOT_CONNECTED"
	ErrCodeCloseFailed      types.ErrorCode = "GRAPH_CLOSE_FAILED"

	// Configuration errors
	ErrCodeInvalidConfig types.ErrorCode = "GRAPH_INVALID_CONFIG"

	// Query errors
	ErrCodeQueryFailed   types.ErrorCode = "GRAPH_QUERY_FAILED"
	ErrCodeResultParsing types.ErrorCode = "GRAPH_RESULT_PARSING"
	ErrCodeServerInfo    types.ErrorCode = "GRAPH_SERVER_INFO_FAILED"

	// Batch transaction errors
	ErrCodeBatchFailed    types.ErrorCode = "GRAPH_BATCH_FAILED"
	ErrCodeCommitFailed   types.ErrorCode = "GRAPH_COMMIT_FAILED"
	ErrCodeRollbackFailed types.ErrorCode = "GRAPH_ROLLBACK_FAILED"
)
