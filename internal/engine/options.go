package engine

import "github.com/dshills/voicenav/internal/engine/cursor"

// Option configures an Editor during creation.
type Option func(*Editor)

// WithCursor places the cursor at offset. New clamps the offset to the
// buffer and moves it back to the start of the character it splits.
func WithCursor(offset int) Option {
	return func(e *Editor) {
		e.sel = cursor.NewCursorSelection(offset)
	}
}

// WithSelection sets the initial selection, adjusted like WithCursor.
func WithSelection(anchor, head int) Option {
	return func(e *Editor) {
		e.sel = cursor.NewSelection(anchor, head)
	}
}

// WithClipboard sets the clipboard used by Cut and Copy.
func WithClipboard(cb Clipboard) Option {
	return func(e *Editor) {
		e.clipboard = cb
	}
}

// WithReadOnly makes Delete and Cut fail with ErrReadOnly.
func WithReadOnly(readOnly bool) Option {
	return func(e *Editor) {
		e.readOnly = readOnly
	}
}
