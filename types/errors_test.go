package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "error without cause",
			err:  NewError("GRAPH_QUERY_FAILED", "query execution failed"),
			want: "[GRAPH_QUERY_FAILED] query execution failed",
		},
		{
			name: "error with cause",
			err:  WrapError("GRAPH_CONNECTION_FAILED", "could not connect", fmt.Errorf("dial tcp: refused")),
			want: "[GRAPH_CONNECTION_FAILED] could not connect: dial tcp: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := WrapError("GRAPH_QUERY_FAILED", "wrapped", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() should find the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	plain := NewError("GRAPH_QUERY_FAILED", "no cause")
	if errors.Unwrap(plain) != nil {
		t.Errorf("Unwrap() on error without cause should be nil")
	}
}

func TestError_Is(t *testing.T) {
	err := NewError("GRAPH_QUERY_FAILED", "first")
	same := NewError("GRAPH_QUERY_FAILED", "second")
	other := NewError("GRAPH_CONNECTION_FAILED", "third")

	if !errors.Is(err, same) {
		t.Errorf("errors with the same code should match")
	}
	if errors.Is(err, other) {
		t.Errorf("errors with different codes should not match")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Errorf("plain errors should not match")
	}
}

func TestError_As(t *testing.T) {
	cause := errors.New("root")
	wrapped := fmt.Errorf("outer: %w", WrapError("GRAPH_BATCH_FAILED", "batch", cause))

	var reqErr *Error
	if !errors.As(wrapped, &reqErr) {
		t.Fatalf("errors.As() should find *Error in the chain")
	}
	if reqErr.Code != "GRAPH_BATCH_FAILED" {
		t.Errorf("Code = %v, want GRAPH_BATCH_FAILED", reqErr.Code)
	}
}

func TestNewRetryableError(t *testing.T) {
	err := NewRetryableError("GRAPH_CONNECTION_FAILED", "transient")

	if !err.Retryable {
		t.Errorf("NewRetryableError() should mark the error retryable")
	}

	if NewError("GRAPH_CONNECTION_FAILED", "permanent").Retryable {
		t.Errorf("NewError() should not mark the error retryable")
	}
}

func TestError_MessageFormatting(t *testing.T) {
	err := WrapError("GRAPH_BATCH_FAILED", "statement 2 failed, transaction rolled back",
		errors.New("syntax error"))

	msg := err.Error()
	if !strings.HasPrefix(msg, "[GRAPH_BATCH_FAILED]") {
		t.Errorf("message should be prefixed with the code, got %v", msg)
	}
	if !strings.Contains(msg, "syntax error") {
		t.Errorf("message should contain the cause, got %v", msg)
	}
}
