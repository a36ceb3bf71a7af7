package mock

import (
	"context"
	"fmt"
)

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, uses default deterministic behavior.
	CompleteFunc func(ctx context.Context, systemPrompt, userQuery string) (string, error)

	callCount int
}

// NewMockCompleter creates a mock completer with default deterministic behavior.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete returns a deterministic reply that echoes the query.
func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userQuery string) (string, error) {
	m.callCount++

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userQuery)
	}

	return fmt.Sprintf("mock reply to %q", userQuery), nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockCompleter) Reset() {
	m.callCount = 0
	m.CompleteFunc = nil
}
