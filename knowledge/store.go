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


package knowledge

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/storage"
)

// Partition names used in load error reporting.
const (
	PartitionCache     = "cache"
	PartitionGraph     = "graph"
	PartitionDocuments = "documents"
)

// Store is the read-only knowledge store: three partitions loaded once
// at construction. Partitions load independently; a partition that
// fails to load is reported via LoadErrors and its accessor returns
// ErrPartitionUnavailable, while the remaining partitions still serve.
type Store struct {
	cache      *CachePartition
	graph      *GraphPartition
	documents  *DocumentPartition
	loadErrors []*LoadError
	logger     *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig) error

type storeConfig struct {
	cachePath    string
	graphPath    string
	documentsDir string
	repository   storage.ChunkRepository
	chunkTarget  int
	poolSize     int
	logger       *slog.Logger
}

// WithDataDir points all three snapshots at the conventional layout
// under dir: civic_cache.json, civic_knowledge.json, civic_docs/.
func WithDataDir(dir string) StoreOption {
	return func(c *storeConfig) error {
		c.cachePath = filepath.Join(dir, "civic_cache.json")
		c.graphPath = filepath.Join(dir, "civic_knowledge.json")
		c.documentsDir = filepath.Join(dir, "civic_docs")
		return nil
	}
}

// WithCachePath overrides the cache snapshot path.
func WithCachePath(path string) StoreOption {
	return func(c *storeConfig) error {
		c.cachePath = path
		return nil
	}
}

// WithGraphPath overrides the graph snapshot path.
func WithGraphPath(path string) StoreOption {
	return func(c *storeConfig) error {
		c.graphPath = path
		return nil
	}
}

// WithDocumentsDir overrides the documents directory.
func WithDocumentsDir(dir string) StoreOption {
	return func(c *storeConfig) error {
		c.documentsDir = dir
		return nil
	}
}

// WithChunkRepository sets a persistent chunk index so document loads
// reuse stored embeddings.
func WithChunkRepository(repo storage.ChunkRepository) StoreOption {
	return func(c *storeConfig) error {
		c.repository = repo
		return nil
	}
}

// WithChunkTarget sets the soft chunk size ceiling in characters.
// Default is DefaultChunkTarget.
func WithChunkTarget(target int) StoreOption {
	return func(c *storeConfig) error {
		c.chunkTarget = target
		return nil
	}
}

// WithPoolSize sets the embedding worker pool size.
func WithPoolSize(size int) StoreOption {
	return func(c *storeConfig) error {
		c.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(c *storeConfig) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewStore loads all three partitions from their snapshots.
//
// Construction only fails on option errors; snapshot problems degrade
// the affected partition and are reported via LoadErrors. A store with
// every partition failed is still valid; the conversational strategy
// needs no partition at all.
func NewStore(ctx context.Context, embedder ai.Embedder, opts ...StoreOption) (*Store, error) {
	cfg := &storeConfig{logger: slog.Default()}
	if err := WithDataDir("data")(cfg); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := &Store{logger: cfg.logger.With("component", "knowledge")}

	if data, err := readCacheSnapshot(cfg.cachePath); err != nil {
		store.recordLoadError(PartitionCache, err)
	} else {
		store.cache = NewCachePartition(data)
		store.logger.Info("cache partition loaded",
			"path", cfg.cachePath, "entries", store.cache.Size())
	}

	if snap, err := readGraphSnapshot(cfg.graphPath); err != nil {
		store.recordLoadError(PartitionGraph, err)
	} else if graph, err := NewGraphPartition(snap); err != nil {
		store.recordLoadError(PartitionGraph, err)
	} else {
		store.graph = graph
		store.logger.Info("graph partition loaded",
			"path", cfg.graphPath, "nodes", graph.NodeCount(), "edges", graph.EdgeCount())
	}

	if docs, err := readDocuments(cfg.documentsDir); err != nil {
		store.recordLoadError(PartitionDocuments, err)
	} else if documents, err := NewDocumentPartition(ctx, docs, embedder, DocumentIndexConfig{
		Repository:  cfg.repository,
		ChunkTarget: cfg.chunkTarget,
		PoolSize:    cfg.poolSize,
		Logger:      cfg.logger,
	}); err != nil {
		store.recordLoadError(PartitionDocuments, err)
	} else {
		store.documents = documents
	}

	return store, nil
}

// NewStoreFromPartitions assembles a store from prebuilt partitions.
// Nil partitions are reported unavailable. Used by tests and callers
// that construct partitions from in-memory data.
func NewStoreFromPartitions(cache *CachePartition, graph *GraphPartition, documents *DocumentPartition) *Store {
	return &Store{
		cache:     cache,
		graph:     graph,
		documents: documents,
		logger:    slog.Default().With("component", "knowledge"),
	}
}

func (s *Store) recordLoadError(partition string, err error) {
	loadErr := &LoadError{Partition: partition, Err: err}
	s.loadErrors = append(s.loadErrors, loadErr)
	s.logger.Warn("partition failed to load", "partition", partition, "err", err)
}

// Cache returns the cache partition or ErrPartitionUnavailable.
func (s *Store) Cache() (*CachePartition, error) {
	if s.cache == nil {
		return nil, ErrPartitionUnavailable
	}
	return s.cache, nil
}

// Graph returns the graph partition or ErrPartitionUnavailable.
func (s *Store) Graph() (*GraphPartition, error) {
	if s.graph == nil {
		return nil, ErrPartitionUnavailable
	}
	return s.graph, nil
}

// Documents returns the document partition or ErrPartitionUnavailable.
func (s *Store) Documents() (*DocumentPartition, error) {
	if s.documents == nil {
		return nil, ErrPartitionUnavailable
	}
	return s.documents, nil
}

// LoadErrors reports which partitions failed to load and why.
func (s *Store) LoadErrors() []*LoadError {
	return s.loadErrors
}
