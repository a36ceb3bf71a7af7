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
	"errors"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/storage"
)

// DocumentIndexConfig configures document partition construction.
// The zero value is usable: default chunk target, pool sized to CPUs,
// no persistence, default logger.
type DocumentIndexConfig struct {
	// Repository, when set, persists chunks with their embeddings and
	// lets subsequent loads reuse embeddings for unchanged content.
	Repository storage.ChunkRepository
	// ChunkTarget is the soft chunk size ceiling in characters.
	ChunkTarget int
	// PoolSize is the number of concurrent embedding workers.
	PoolSize int
	Logger   *slog.Logger
}

// DocumentPartition is the embedded document index. Chunks are kept in
// load order (sources sorted by name, then ordinal); the partition is
// immutable after construction and safe for concurrent reads.
type DocumentPartition struct {
	chunks []*core.Chunk
	repo   storage.ChunkRepository
	logger *slog.Logger
}

// NewDocumentPartition chunks and embeds the given documents.
//
// Every chunk gets a content-derived ID. If a repository is configured,
// chunks already stored with an embedding are not re-embedded; missing
// embeddings are computed concurrently and the full index is written
// back. Any embedding failure fails the whole partition, since an index
// with partial embeddings would rank unfairly.
func NewDocumentPartition(ctx context.Context, docs []DocumentInput, embedder ai.Embedder, cfg DocumentIndexConfig) (*DocumentPartition, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "documents")

	target := cfg.ChunkTarget
	if target <= 0 {
		target = DefaultChunkTarget
	}

	var chunks []*core.Chunk
	for _, doc := range docs {
		chunks = append(chunks, SplitDocument(doc.Name, doc.Text, target)...)
	}
	for _, chunk := range chunks {
		chunk.ID = core.IDFromContent(chunk.ContentKey())
	}

	// Reuse stored embeddings for unchanged content
	var pending []*core.Chunk
	reused := 0
	for _, chunk := range chunks {
		if cfg.Repository != nil {
			stored, err := cfg.Repository.GetChunk(ctx, chunk.ID)
			if err == nil && len(stored.Vector) > 0 {
				chunk.Vector = stored.Vector
				reused++
				continue
			}
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
		}
		pending = append(pending, chunk)
	}

	if len(pending) > 0 {
		if err := embedChunks(ctx, pending, embedder, cfg.PoolSize); err != nil {
			return nil, err
		}
	}

	if cfg.Repository != nil && len(pending) > 0 {
		if _, err := cfg.Repository.PutChunks(ctx, pending...); err != nil {
			return nil, err
		}
	}

	logger.Info("document index built",
		"documents", len(docs), "chunks", len(chunks),
		"embedded", len(pending), "reused", reused)

	return &DocumentPartition{
		chunks: chunks,
		repo:   cfg.Repository,
		logger: logger,
	}, nil
}

// embedChunks embeds chunks concurrently on an ants worker pool.
func embedChunks(ctx context.Context, chunks []*core.Chunk, embedder ai.Embedder, poolSize int) error {
	if poolSize < 1 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make([]error, len(chunks))

	for i, chunk := range chunks {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			vector, err := embedder.EmbedText(ctx, chunk.Text)
			if err != nil {
				errs[i] = err
				return
			}
			chunk.Vector = vector
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Search returns up to limit chunks ranked by similarity against the
// query vector, score descending. A positive minSimilarity filters out
// weaker matches; zero or negative keeps every chunk ranked, including
// those with negative similarity. Equal scores keep load order, so
// rankings are stable across identical runs.
func (p *DocumentPartition) Search(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.ScoredChunk, error) {
	if p.repo != nil {
		return p.repo.FindSimilar(ctx, vector, minSimilarity, limit)
	}

	var results []core.ScoredChunk
	for _, chunk := range p.chunks {
		if len(chunk.Vector) == 0 {
			continue
		}
		// Cosine similarity (dot product for normalized vectors)
		score := dotProduct(vector, chunk.Vector)
		if minSimilarity > 0 && score < minSimilarity {
			continue
		}
		results = append(results, core.ScoredChunk{Chunk: chunk, Score: score})
	}

	slices.SortStableFunc(results, func(a, b core.ScoredChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// ChunkCount returns the number of indexed chunks.
func (p *DocumentPartition) ChunkCount() int { return len(p.chunks) }

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
