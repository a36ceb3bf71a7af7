package storage

import (
	"context"

	"github.com/poiesic/civicmind/core"
)

// ChunkRepository persists document chunks with their embeddings.
// It serves as the durable index behind the document strategy: chunks
// are written once during indexing and only read while serving, so
// implementations must be thread-safe for concurrent reads.
type ChunkRepository interface {
	// PutChunks stores one or more chunks. Chunks with ID=0 get a
	// content-derived ID assigned. Existing chunks with the same ID are
	// overwritten.
	PutChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error)

	// GetChunksBySource retrieves all chunks of a source document,
	// ordered by ordinal.
	GetChunksBySource(ctx context.Context, source string) ([]*core.Chunk, error)

	// AllChunks retrieves every stored chunk, ordered by source then ordinal.
	AllChunks(ctx context.Context) ([]*core.Chunk, error)

	// FindSimilar finds chunks similar to the given vector.
	// Returns up to limit results ordered by similarity score (highest
	// first) with ties broken by source then ordinal. A positive
	// minSimilarity drops weaker matches; zero or negative ranks every
	// chunk.
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.ScoredChunk, error)

	// DeleteSource removes all chunks of a source document.
	DeleteSource(ctx context.Context, source string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
