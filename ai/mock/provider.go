// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/poiesic/civicmind/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock embedder, completer and web searcher instances.
type MockProvider struct {
	embedder  *MockEmbedder
	completer *MockCompleter
	searcher  *MockWebSearcher
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockCompleter()/GetMockWebSearcher() to access
// concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		completer: NewMockCompleter(),
		searcher:  NewMockWebSearcher(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// A nil completer or searcher models an absent collaborator.
func NewMockProviderWithServices(embedder *MockEmbedder, completer *MockCompleter, searcher *MockWebSearcher) ai.Provider {
	return &MockProvider{
		embedder:  embedder,
		completer: completer,
		searcher:  searcher,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Completer returns the mock completer, or nil when absent.
func (p *MockProvider) Completer() ai.Completer {
	if p.completer == nil {
		return nil
	}
	return p.completer
}

// WebSearcher returns the mock web searcher, or nil when absent.
func (p *MockProvider) WebSearcher() ai.WebSearcher {
	if p.searcher == nil {
		return nil
	}
	return p.searcher
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockCompleter returns the underlying mock completer for test assertions.
func (p *MockProvider) GetMockCompleter() *MockCompleter {
	return p.completer
}

// GetMockWebSearcher returns the underlying mock web searcher for test assertions.
func (p *MockProvider) GetMockWebSearcher() *MockWebSearcher {
	return p.searcher
}
