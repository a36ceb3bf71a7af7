package offline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	searcher := NewWebSearcher()
	ctx := context.Background()

	t.Run("respects limit", func(t *testing.T) {
		results, err := searcher.Search(ctx, "water supply", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("interpolates query into snippets", func(t *testing.T) {
		results, err := searcher.Search(ctx, "garbage collection", 3)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Contains(t, results[0].Snippet, "garbage collection")
		assert.NotEmpty(t, results[0].URL)
		assert.NotEmpty(t, results[0].Source)
	})

	t.Run("limit larger than table is capped", func(t *testing.T) {
		results, err := searcher.Search(ctx, "tax", 10)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("zero limit yields nothing", func(t *testing.T) {
		results, err := searcher.Search(ctx, "tax", 0)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := searcher.Search(ctx, "water", 3)
		require.NoError(t, err)
		b, err := searcher.Search(ctx, "water", 3)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
