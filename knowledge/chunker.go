package knowledge

import (
	"strings"

	"github.com/poiesic/civicmind/core"
)

// DefaultChunkTarget is the soft chunk size ceiling in characters.
const DefaultChunkTarget = 500

// SplitDocument splits document text into paragraph-aligned chunks.
//
// Paragraphs (blank-line separated) are packed into chunks of at most
// target characters. A paragraph is never split: if appending it would
// exceed the target, the current chunk is sealed and the paragraph
// starts a new one. A single paragraph larger than the target becomes
// its own chunk, so the only chunks above target are single oversized
// paragraphs. Ordinals count from 0 in document order. Whitespace-only
// paragraphs are dropped; concatenating the chunk texts with a blank
// line restores the document's paragraph sequence.
func SplitDocument(source, text string, target int) []*core.Chunk {
	if target <= 0 {
		target = DefaultChunkTarget
	}

	paragraphs := strings.Split(text, "\n\n")
	var chunks []*core.Chunk
	var current []string
	currentLen := 0
	ordinal := 0

	seal := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, &core.Chunk{
			Source:  source,
			Ordinal: ordinal,
			Text:    strings.Join(current, "\n\n"),
		})
		ordinal++
		current = nil
		currentLen = 0
	}

	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		// +2 for the paragraph separator when the chunk is non-empty
		addedLen := len(paragraph)
		if currentLen > 0 {
			addedLen += 2
		}

		if currentLen > 0 && currentLen+addedLen > target {
			seal()
		}
		current = append(current, paragraph)
		if currentLen > 0 {
			currentLen += 2
		}
		currentLen += len(paragraph)
	}
	seal()

	return chunks
}
