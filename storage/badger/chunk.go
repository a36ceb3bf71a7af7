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


package badger

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a ChunkRepository on an open backend.
// The caller retains ownership of the backend and must close it separately.
func NewChunkRepository(backend *Backend) (storage.ChunkRepository, error) {
	return &ChunkRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ChunkRepository has no resources of its own;
// the backend is closed by its owner.
func (r *ChunkRepository) Close() error {
	return nil
}

// PutChunks stores one or more chunks.
func (r *ChunkRepository) PutChunks(ctx context.Context, chunks ...*core.Chunk) ([]*core.Chunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateChunk(chunk); err != nil {
				return err
			}

			// Use content-based ID if not set
			if chunk.ID == 0 {
				chunk.ID = core.IDFromContent(chunk.ContentKey())
			}

			// Store primary record
			key := makeChunkKey(chunk.ID)
			value := storage.MarshalChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store source index
			sourceKey := makeChunkSourceKey(chunk.Source, chunk.Ordinal)
			if err := tx.Set(sourceKey, storage.MarshalID(chunk.ID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.Chunk, error) {
	var chunk *core.Chunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		chunk, err = readChunk(tx, makeChunkKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if chunk == nil {
		return nil, storage.ErrNotFound
	}

	return chunk, nil
}

// GetChunksBySource retrieves all chunks of a source document, ordered
// by ordinal.
func (r *ChunkRepository) GetChunksBySource(ctx context.Context, source string) ([]*core.Chunk, error) {
	var chunks []*core.Chunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialChunkSourceKey(source)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			id, err := readIndexedID(iter.Item())
			if err != nil {
				return err
			}
			chunk, err := readChunk(tx, makeChunkKey(id))
			if err != nil {
				return err
			}
			if chunk == nil {
				// Stale index entry, skip
				continue
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

// AllChunks retrieves every stored chunk, ordered by source then ordinal.
func (r *ChunkRepository) AllChunks(ctx context.Context) ([]*core.Chunk, error) {
	var chunks []*core.Chunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkSourcePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			id, err := readIndexedID(iter.Item())
			if err != nil {
				return err
			}
			chunk, err := readChunk(tx, makeChunkKey(id))
			if err != nil {
				return err
			}
			if chunk == nil {
				continue
			}
			chunks = append(chunks, chunk)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

// FindSimilar returns up to limit chunks ranked by similarity against
// the given vector, score descending. A positive minSimilarity filters
// out weaker matches; zero or negative keeps every chunk ranked.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]core.ScoredChunk, error) {
	var results []core.ScoredChunk

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(chunkPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var chunk *core.Chunk
			err := item.Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalChunk(val)
				return err
			})
			if err != nil {
				return err
			}

			// Skip chunks without embeddings
			if len(chunk.Vector) == 0 {
				continue
			}

			// Cosine similarity (dot product for normalized vectors)
			similarity := dotProduct(vector, chunk.Vector)

			if minSimilarity > 0 && similarity < minSimilarity {
				continue
			}
			results = append(results, core.ScoredChunk{
				Chunk: chunk,
				Score: similarity,
			})
		}

		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Sort by similarity descending, ties by source then ordinal so
	// results are deterministic across runs.
	slices.SortFunc(results, func(a, b core.ScoredChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if cmp := strings.Compare(a.Chunk.Source, b.Chunk.Source); cmp != 0 {
			return cmp
		}
		return a.Chunk.Ordinal - b.Chunk.Ordinal
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// DeleteSource removes all chunks of a source document.
func (r *ChunkRepository) DeleteSource(ctx context.Context, source string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialChunkSourceKey(source)
		iter := tx.NewIterator(opts)

		var indexKeys [][]byte
		var ids []core.ID
		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			id, err := readIndexedID(item)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			indexKeys = append(indexKeys, item.KeyCopy(nil))
		}
		iter.Close()

		for _, id := range ids {
			if err := tx.Delete(makeChunkKey(id)); err != nil {
				return err
			}
		}
		for _, key := range indexKeys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readChunk reads and unmarshals a chunk at the given key.
// Returns nil (no error) if the key doesn't exist.
func readChunk(tx *badger.Txn, key []byte) (*core.Chunk, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var chunk *core.Chunk
	err = item.Value(func(val []byte) error {
		var err error
		chunk, err = storage.UnmarshalChunk(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	return chunk, nil
}

// readIndexedID reads a chunk ID stored as an index value.
func readIndexedID(item *badger.Item) (core.ID, error) {
	var id core.ID
	err := item.Value(func(val []byte) error {
		var err error
		id, err = storage.UnmarshalID(val)
		return err
	})
	return id, err
}

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
