package router

import "errors"

var (
	// ErrInvalidPriority indicates the priority order is not a
	// permutation of all strategy kinds.
	ErrInvalidPriority = errors.New("invalid priority order")

	// ErrNoSignatures indicates an empty signature set list.
	ErrNoSignatures = errors.New("no signature sets")
)
