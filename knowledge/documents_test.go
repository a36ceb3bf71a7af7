package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/ai/mock"
	badgerstore "github.com/poiesic/civicmind/storage/badger"
)

func sampleDocs() []DocumentInput {
	return []DocumentInput{
		{Name: "property_tax.txt", Text: "PROPERTY TAX RATES:\nResidential ₹3 per sq ft.\n\nDUE DATES:\nAnnual due date 31st March."},
		{Name: "water_supply.txt", Text: "WATER SUPPLY TIMINGS:\nMorning 6 AM to 8 AM.\n\nCONTACT:\n24x7 cell 044-45674567."},
	}
}

func TestNewDocumentPartition(t *testing.T) {
	embedder := mock.NewMockEmbedder()

	part, err := NewDocumentPartition(context.Background(), sampleDocs(), embedder, DocumentIndexConfig{ChunkTarget: 60})
	require.NoError(t, err)

	assert.Equal(t, 4, part.ChunkCount())
	for _, chunk := range part.chunks {
		assert.NotZero(t, chunk.ID)
		assert.NotEmpty(t, chunk.Vector)
	}
}

func TestNewDocumentPartitionRequiresEmbedder(t *testing.T) {
	_, err := NewDocumentPartition(context.Background(), sampleDocs(), nil, DocumentIndexConfig{})
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func TestNewDocumentPartitionEmbedFailureFailsLoad(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding host down")
	}

	_, err := NewDocumentPartition(context.Background(), sampleDocs(), embedder, DocumentIndexConfig{})
	assert.Error(t, err)
}

func TestDocumentPartitionSearch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	part, err := NewDocumentPartition(ctx, sampleDocs(), embedder, DocumentIndexConfig{ChunkTarget: 60})
	require.NoError(t, err)

	// Mock embeddings are deterministic per text, so a chunk's own text
	// is its best match.
	target := part.chunks[2]
	vector, err := embedder.EmbedText(ctx, target.Text)
	require.NoError(t, err)

	results, err := part.Search(ctx, vector, -1, 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, target.ID, results[0].Chunk.ID)
	assert.InDelta(t, 1.0, float64(results[0].Score), 0.001)
	assert.LessOrEqual(t, len(results), 3)
}

func TestDocumentPartitionSearchKeepsNegativeScores(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return []float32{1, 0}, nil
	}
	ctx := context.Background()

	part, err := NewDocumentPartition(ctx, sampleDocs(), embedder, DocumentIndexConfig{ChunkTarget: 60})
	require.NoError(t, err)

	// Every chunk points the other way from the query. A zero threshold
	// still ranks all of them instead of returning nothing.
	results, err := part.Search(ctx, []float32{-1, 0}, 0, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, hit := range results {
		assert.InDelta(t, -1.0, float64(hit.Score), 0.0001)
	}

	// A positive threshold still filters.
	results, err = part.Search(ctx, []float32{-1, 0}, 0.5, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDocumentPartitionSearchStable(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	ctx := context.Background()

	part, err := NewDocumentPartition(ctx, sampleDocs(), embedder, DocumentIndexConfig{ChunkTarget: 60})
	require.NoError(t, err)

	vector, err := embedder.EmbedText(ctx, "tax due date")
	require.NoError(t, err)

	first, err := part.Search(ctx, vector, -1, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := part.Search(ctx, vector, -1, 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDocumentPartitionReusesStoredEmbeddings(t *testing.T) {
	repo, backend, err := badgerstore.NewMemoryChunkRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	docs := sampleDocs()

	embedder := mock.NewMockEmbedder()
	_, err = NewDocumentPartition(ctx, docs, embedder, DocumentIndexConfig{
		ChunkTarget: 60, Repository: repo,
	})
	require.NoError(t, err)
	firstCalls := embedder.CallCount()
	assert.Positive(t, firstCalls)

	// Second load over the same content: everything comes from the index.
	embedder.Reset()
	part, err := NewDocumentPartition(ctx, docs, embedder, DocumentIndexConfig{
		ChunkTarget: 60, Repository: repo,
	})
	require.NoError(t, err)
	assert.Zero(t, embedder.CallCount())
	assert.Equal(t, 4, part.ChunkCount())

	// Changed content is re-embedded.
	docs[0].Text = strings.Replace(docs[0].Text, "₹3", "₹4", 1)
	embedder.Reset()
	_, err = NewDocumentPartition(ctx, docs, embedder, DocumentIndexConfig{
		ChunkTarget: 60, Repository: repo,
	})
	require.NoError(t, err)
	assert.Positive(t, embedder.CallCount())
}
