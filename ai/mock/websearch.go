package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/civicmind/core"
)

// MockWebSearcher is a test double for ai.WebSearcher.
// It allows custom behavior injection via function fields.
type MockWebSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, uses default deterministic behavior.
	SearchFunc func(ctx context.Context, query string, limit int) ([]core.WebResult, error)

	callCount int
}

// NewMockWebSearcher creates a mock web searcher with default deterministic behavior.
func NewMockWebSearcher() *MockWebSearcher {
	return &MockWebSearcher{}
}

// Search returns deterministic placeholder results up to limit.
func (m *MockWebSearcher) Search(ctx context.Context, query string, limit int) ([]core.WebResult, error) {
	m.callCount++

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}

	if limit < 1 {
		return nil, nil
	}
	results := make([]core.WebResult, 0, limit)
	for i := 0; i < limit; i++ {
		results = append(results, core.WebResult{
			Title:   fmt.Sprintf("Result %d for %s", i+1, query),
			URL:     fmt.Sprintf("https://example.org/%d", i+1),
			Snippet: fmt.Sprintf("Snippet %d about %s.", i+1, query),
			Source:  "Mock Source",
			Date:    "2025-10-04",
		})
	}
	return results, nil
}

// CallCount returns the number of times Search was called.
func (m *MockWebSearcher) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockWebSearcher) Reset() {
	m.callCount = 0
	m.SearchFunc = nil
}
