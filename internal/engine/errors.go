package engine

import "errors"

// Errors returned by editor operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrNotBoundary indicates an offset that splits a character.
	ErrNotBoundary = errors.New("offset is not on a character boundary")

	// ErrReadOnly indicates a mutation was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")

	// ErrNoClipboard indicates cut or copy without a clipboard.
	ErrNoClipboard = errors.New("no clipboard configured")
)
