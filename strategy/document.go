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


package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/knowledge"
)

const (
	// DefaultLocalHits is how many local chunks a document lookup returns.
	DefaultLocalHits = 3
	// DefaultWebHits is how many external results a document lookup returns.
	DefaultWebHits = 2

	defaultEmbedTimeout = 10 * time.Second
	defaultWebTimeout   = 5 * time.Second
)

// DocumentStrategy answers freshness and document questions: it embeds
// the query, ranks local chunks by similarity, and independently asks
// the external searcher. The two result lists stay separate. Web
// failures are tolerated; only a local failure fails the lookup.
type DocumentStrategy struct {
	store        *knowledge.Store
	embedder     ai.Embedder
	searcher     ai.WebSearcher
	localHits    int
	webHits      int
	embedTimeout time.Duration
	webTimeout   time.Duration
	logger       *slog.Logger
}

// DocumentOption configures a DocumentStrategy.
type DocumentOption func(*DocumentStrategy) error

// WithWebSearcher sets the external searcher. Without one, lookups
// return local results only.
func WithWebSearcher(searcher ai.WebSearcher) DocumentOption {
	return func(s *DocumentStrategy) error {
		s.searcher = searcher
		return nil
	}
}

// WithDocumentTimeouts overrides the embedding and web search timeouts.
// Non-positive values keep the defaults.
func WithDocumentTimeouts(embed, web time.Duration) DocumentOption {
	return func(s *DocumentStrategy) error {
		if embed > 0 {
			s.embedTimeout = embed
		}
		if web > 0 {
			s.webTimeout = web
		}
		return nil
	}
}

// WithDocumentLogger sets a custom logger.
func WithDocumentLogger(logger *slog.Logger) DocumentOption {
	return func(s *DocumentStrategy) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "document-strategy")
		return nil
	}
}

// NewDocumentStrategy creates the document strategy.
func NewDocumentStrategy(store *knowledge.Store, embedder ai.Embedder, opts ...DocumentOption) (*DocumentStrategy, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	s := &DocumentStrategy{
		store:        store,
		embedder:     embedder,
		localHits:    DefaultLocalHits,
		webHits:      DefaultWebHits,
		embedTimeout: defaultEmbedTimeout,
		webTimeout:   defaultWebTimeout,
		logger:       slog.Default().With("component", "document-strategy"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *DocumentStrategy) Kind() core.StrategyKind { return core.StrategyDocument }

func (s *DocumentStrategy) Available() bool {
	_, err := s.store.Documents()
	return err == nil
}

func (s *DocumentStrategy) Lookup(ctx context.Context, query string) core.StrategyResult {
	documents, err := s.store.Documents()
	if err != nil {
		return core.EmptyResult()
	}

	var (
		wg         sync.WaitGroup
		localHits  []core.ScoredChunk
		localErr   error
		webResults []core.WebResult
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		localHits, localErr = s.searchLocal(ctx, documents, query)
	}()

	if s.searcher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			webCtx, cancel := context.WithTimeout(ctx, s.webTimeout)
			defer cancel()
			results, err := s.searcher.Search(webCtx, query, s.webHits)
			if err != nil {
				// Web sources are best-effort; local results still count
				s.logger.Warn("web search failed", "err", err)
				return
			}
			webResults = results
		}()
	}
	wg.Wait()

	if localErr != nil {
		return core.FailedResult(fmt.Sprintf("local search: %v", localErr))
	}
	if len(localHits) == 0 && len(webResults) == 0 {
		return core.EmptyResult()
	}

	return core.FoundResult(core.DocumentHits{
		Documents:  localHits,
		WebSources: webResults,
	})
}

func (s *DocumentStrategy) searchLocal(ctx context.Context, documents *knowledge.DocumentPartition, query string) ([]core.ScoredChunk, error) {
	embedCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	vector, err := s.embedder.EmbedText(embedCtx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	return documents.Search(ctx, vector, 0, s.localHits)
}
