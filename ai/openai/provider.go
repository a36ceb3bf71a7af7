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


package openai

import (
	"log/slog"

	"github.com/poiesic/civicmind/ai"
)

// Provider implements ai.Provider using OpenAI-compatible services.
// It manages embedder and completer instances; web search is not an
// OpenAI concern, so WebSearcher always reports absent here. Compose
// with ai/offline or a network-backed searcher at engine construction.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	completer *Completer
	logger    *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use. The completer is
// only created when config.EnableCompletion is set; otherwise the
// conversational strategy runs fully offline.
//
// Returns ai.Provider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	var completer *Completer
	if config.EnableCompletion {
		completer, err = newCompleter(config)
		if err != nil {
			return nil, err
		}
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		completer: completer,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Completer returns the completion service, or nil when completion is disabled.
func (p *Provider) Completer() ai.Completer {
	if p.completer == nil {
		return nil
	}
	return p.completer
}

// WebSearcher always returns nil; OpenAI-compatible hosts do not serve
// external-source search.
func (p *Provider) WebSearcher() ai.WebSearcher {
	return nil
}

// Close releases resources held by the provider.
func (p *Provider) Close() error {
	return nil
}
