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


// Package civicmind answers natural-language civic-service questions.
// The Engine routes each query to one of four answering strategies
// over a read-only knowledge store and assembles an attributed answer
// with a fallback chain that keeps Answer total.
package civicmind

import (
	"context"
	"log/slog"

	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/ai/offline"
	"github.com/poiesic/civicmind/ai/openai"
	"github.com/poiesic/civicmind/answer"
	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/knowledge"
	"github.com/poiesic/civicmind/router"
	"github.com/poiesic/civicmind/storage"
	"github.com/poiesic/civicmind/storage/badger"
	"github.com/poiesic/civicmind/strategy"
)

// Engine is the caller-facing facade. It is immutable after
// construction and safe for concurrent Answer calls. Close must be
// called to release the provider and any persistent chunk index.
type Engine struct {
	provider  ai.Provider
	backend   *badger.Backend
	chunkRepo storage.ChunkRepository
	store     *knowledge.Store
	assembler *answer.Assembler
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	aiConfig  *ai.Config
	provider  ai.Provider
	dataDir   string
	indexPath string
	priority  []core.StrategyKind
	shapes    []strategy.ReasoningShape
	logger    *slog.Logger
}

// WithAIConfig sets the configuration used to build the default
// OpenAI-compatible provider. Ignored when WithProvider is given.
func WithAIConfig(config *ai.Config) EngineOption {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithProvider sets the collaborator provider directly, bypassing the
// default OpenAI-compatible one. The engine takes ownership and closes
// it with Close.
func WithProvider(provider ai.Provider) EngineOption {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithDataDir sets the directory holding the knowledge snapshots
// (civic_cache.json, civic_knowledge.json, civic_docs/). Default "data".
func WithDataDir(dir string) EngineOption {
	return func(o *engineOptions) {
		o.dataDir = dir
	}
}

// WithIndexPath enables the persistent chunk index at the given path.
// With an index, document embeddings survive restarts and unchanged
// chunks are not re-embedded. Without one the document index lives in
// memory and is rebuilt on every start.
func WithIndexPath(path string) EngineOption {
	return func(o *engineOptions) {
		o.indexPath = path
	}
}

// WithPriority sets the router's tie-break priority order.
func WithPriority(order ...core.StrategyKind) EngineOption {
	return func(o *engineOptions) {
		o.priority = order
	}
}

// WithReasoningShape registers an additional multi-hop reasoning shape
// with the graph strategy.
func WithReasoningShape(shape strategy.ReasoningShape) EngineOption {
	return func(o *engineOptions) {
		o.shapes = append(o.shapes, shape)
	}
}

// WithLogger sets the logger shared by the engine's components.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine builds a fully wired engine: provider, knowledge store,
// router, the four strategies, and the assembler. Knowledge partitions
// that fail to load leave their strategy unavailable without failing
// construction; inspect LoadErrors for details.
func NewEngine(ctx context.Context, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		dataDir:  "data",
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		if err := options.aiConfig.Validate(); err != nil {
			return nil, err
		}
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	engine := &Engine{
		provider: provider,
		logger:   options.logger.With("component", "engine"),
	}

	storeOpts := []knowledge.StoreOption{
		knowledge.WithDataDir(options.dataDir),
		knowledge.WithLogger(options.logger),
	}
	if options.indexPath != "" {
		backend, err := badger.OpenBackend(options.indexPath, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		chunkRepo, err := badger.NewChunkRepository(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}
		engine.backend = backend
		engine.chunkRepo = chunkRepo
		storeOpts = append(storeOpts, knowledge.WithChunkRepository(chunkRepo))
	}

	store, err := knowledge.NewStore(ctx, provider.Embedder(), storeOpts...)
	if err != nil {
		engine.closeStorage()
		provider.Close()
		return nil, err
	}
	engine.store = store

	assembler, err := engine.buildAssembler(options)
	if err != nil {
		engine.closeStorage()
		provider.Close()
		return nil, err
	}
	engine.assembler = assembler

	return engine, nil
}

func (e *Engine) buildAssembler(options *engineOptions) (*answer.Assembler, error) {
	config := options.aiConfig

	cache, err := strategy.NewCacheStrategy(e.store)
	if err != nil {
		return nil, err
	}

	graphOpts := make([]strategy.GraphOption, 0, len(options.shapes))
	for _, shape := range options.shapes {
		graphOpts = append(graphOpts, strategy.WithReasoningShape(shape))
	}
	graph, err := strategy.NewGraphStrategy(e.store, graphOpts...)
	if err != nil {
		return nil, err
	}

	searcher := e.provider.WebSearcher()
	if searcher == nil {
		searcher = offline.NewWebSearcher()
	}
	document, err := strategy.NewDocumentStrategy(e.store, e.provider.Embedder(),
		strategy.WithWebSearcher(searcher),
		strategy.WithDocumentTimeouts(config.EmbedTimeout, config.WebSearchTimeout),
		strategy.WithDocumentLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	conversationalOpts := []strategy.ConversationalOption{
		strategy.WithCompleteTimeout(config.CompleteTimeout),
		strategy.WithConversationalLogger(options.logger),
	}
	if completer := e.provider.Completer(); completer != nil {
		conversationalOpts = append(conversationalOpts, strategy.WithCompleter(completer))
	}
	conversational, err := strategy.NewConversationalStrategy(conversationalOpts...)
	if err != nil {
		return nil, err
	}

	routerOpts := []router.Option{}
	if len(options.priority) > 0 {
		routerOpts = append(routerOpts, router.WithPriority(options.priority...))
	}
	r, err := router.New(routerOpts...)
	if err != nil {
		return nil, err
	}

	return answer.New(r,
		[]strategy.Strategy{cache, graph, document, conversational},
		answer.WithLogger(options.logger),
	)
}

// Answer resolves a query into an attributed answer. It never returns
// an error; failures degrade through the fallback chain.
func (e *Engine) Answer(ctx context.Context, query string) core.Answer {
	return e.assembler.Answer(ctx, query)
}

// ExplainRouting reports the router's scores, matched signatures and
// winner for a query without dispatching it.
func (e *Engine) ExplainRouting(query string) string {
	return e.assembler.ExplainRouting(query)
}

// Availability reports per-strategy serving status.
func (e *Engine) Availability() map[core.StrategyKind]bool {
	return e.assembler.Availability()
}

// LoadErrors returns the partition load failures recorded at startup.
func (e *Engine) LoadErrors() []*knowledge.LoadError {
	return e.store.LoadErrors()
}

// Close releases the provider and the persistent chunk index.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	return e.closeStorage()
}

func (e *Engine) closeStorage() error {
	if e.chunkRepo != nil {
		if err := e.chunkRepo.Close(); err != nil {
			e.logger.Error("error closing chunk repository", "err", err)
			return err
		}
	}
	if e.backend != nil {
		if err := e.backend.Close(); err != nil {
			e.logger.Error("error closing index backend", "err", err)
			return err
		}
	}
	return nil
}
