package pattern

import "errors"

// Errors returned by pattern compilation.
var (
	// ErrInvalidPattern indicates an expression that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownClass indicates a class name missing from the table.
	ErrUnknownClass = errors.New("unknown target class")

	// ErrDuplicateClass indicates a class name defined twice.
	ErrDuplicateClass = errors.New("duplicate target class")

	// ErrEmptyTarget indicates an empty literal, word, or text target.
	ErrEmptyTarget = errors.New("empty target")
)
