package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDocumentPacksParagraphs(t *testing.T) {
	text := "first paragraph here.\n\nsecond paragraph here.\n\nthird paragraph here."

	chunks := SplitDocument("doc.txt", text, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0].Text)
	assert.Equal(t, 0, chunks[0].Ordinal)
	assert.Equal(t, "doc.txt", chunks[0].Source)
}

func TestSplitDocumentNeverSplitsParagraph(t *testing.T) {
	para1 := strings.Repeat("a", 60)
	para2 := strings.Repeat("b", 60)
	text := para1 + "\n\n" + para2

	chunks := SplitDocument("doc.txt", text, 100)
	require.Len(t, chunks, 2)
	assert.Equal(t, para1, chunks[0].Text)
	assert.Equal(t, para2, chunks[1].Text)
}

func TestSplitDocumentOversizedParagraphOwnChunk(t *testing.T) {
	big := strings.Repeat("x", 900)
	text := "small intro.\n\n" + big + "\n\nsmall outro."

	chunks := SplitDocument("doc.txt", text, 500)
	require.Len(t, chunks, 3)
	assert.Equal(t, "small intro.", chunks[0].Text)
	assert.Equal(t, big, chunks[1].Text)
	assert.Equal(t, "small outro.", chunks[2].Text)
}

func TestSplitDocumentLossless(t *testing.T) {
	text := "WATER SUPPLY TIMINGS:\nMorning 6 to 8.\n\nZONE CONTACTS:\nZone 1: 044-28451300.\n\nWEBSITE:\nhttps://cmwssb.tn.gov.in"

	chunks := SplitDocument("water.txt", text, 40)

	var parts []string
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Ordinal)
		parts = append(parts, chunk.Text)
	}
	assert.Equal(t, text, strings.Join(parts, "\n\n"))
}

func TestSplitDocumentSizeBound(t *testing.T) {
	// Every chunk is either within target or a single paragraph.
	text := strings.Repeat("para with some words.\n\n", 40) + strings.Repeat("z", 700)
	target := 200

	for _, chunk := range SplitDocument("doc.txt", text, target) {
		if len(chunk.Text) > target {
			assert.NotContains(t, chunk.Text, "\n\n",
				"oversized chunk must be a single paragraph")
		}
	}
}

func TestSplitDocumentSkipsBlankParagraphs(t *testing.T) {
	chunks := SplitDocument("doc.txt", "\n\n   \n\nreal content\n\n\n\n", 500)
	require.Len(t, chunks, 1)
	assert.Equal(t, "real content", chunks[0].Text)
}

func TestSplitDocumentEmpty(t *testing.T) {
	assert.Empty(t, SplitDocument("doc.txt", "", 500))
	assert.Empty(t, SplitDocument("doc.txt", "   \n\n  ", 500))
}
