package ai

import (
	"context"

	"github.com/poiesic/civicmind/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and deterministic
// for the same model version: the engine treats embedding as a pure function.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer generates free-text replies for conversational queries.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends the query with the given system framing and returns
	// the generated reply. An error means the caller should use its
	// offline answer path; it is never surfaced to the end user.
	Complete(ctx context.Context, systemPrompt, userQuery string) (string, error)
}

// WebSearcher retrieves up to limit ranked items from an external source.
// The engine consumes results as an opaque ranked list and tolerates
// empty or failed results.
type WebSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]core.WebResult, error)
}

// Provider aggregates the external collaborators for convenient
// initialization and lifecycle management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Completer returns the text completion service, or nil when no
	// completion collaborator is configured.
	Completer() Completer

	// WebSearcher returns the external source search service, or nil
	// when none is configured.
	WebSearcher() WebSearcher

	// Close releases resources held by the provider and its services.
	Close() error
}
