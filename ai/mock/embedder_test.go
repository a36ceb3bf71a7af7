package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedTextIsDeterministic(t *testing.T) {
	m := NewMockEmbedder()

	a, err := m.EmbedText(context.Background(), "water supply timings")
	require.NoError(t, err)
	b, err := m.EmbedText(context.Background(), "water supply timings")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 2, m.CallCount())
}

// Vectors must be unit length so dot product equals cosine similarity.
func TestEmbedTextReturnsUnitVector(t *testing.T) {
	m := NewMockEmbedder()

	for _, text := range []string{"fire emergency", "property tax", "x"} {
		vector, err := m.EmbedText(context.Background(), text)
		require.NoError(t, err)

		var sumSquares float64
		for _, v := range vector {
			sumSquares += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 0.001, "text %q", text)
	}
}
