package nav

import "errors"

// Errors returned by navigation.
var (
	// ErrInvalidPattern indicates a target or class expression failed to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidOccurrence indicates an occurrence number below 1.
	ErrInvalidOccurrence = errors.New("occurrence number must be at least 1")

	// ErrNilPattern indicates a request without a target pattern.
	ErrNilPattern = errors.New("target pattern is required")

	// ErrUnknownAction indicates an unrecognized action name.
	ErrUnknownAction = errors.New("unknown navigation action")

	// ErrUnknownDirection indicates an unrecognized direction name.
	ErrUnknownDirection = errors.New("unknown direction")

	// ErrUnknownAnchor indicates an unrecognized anchor mode.
	ErrUnknownAnchor = errors.New("unknown anchor mode")

	// ErrEditor wraps failures reported by the host editor.
	ErrEditor = errors.New("editor primitive failed")
)
