package answer

import "errors"

var (
	// ErrRouterRequired is returned when no router is supplied.
	ErrRouterRequired = errors.New("router is required")

	// ErrConversationalRequired is returned when the strategy set lacks
	// the conversational strategy, which terminates the fallback chain.
	ErrConversationalRequired = errors.New("conversational strategy is required")

	// ErrUnformattableResult is returned for results no formatting rule covers.
	ErrUnformattableResult = errors.New("result cannot be formatted")
)
