package strategy

import "errors"

var (
	// ErrStoreRequired indicates a strategy was constructed without the
	// knowledge store.
	ErrStoreRequired = errors.New("knowledge store required")

	// ErrEmbedderRequired indicates the document strategy was
	// constructed without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")
)
