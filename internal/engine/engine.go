package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/voicenav/internal/engine/cursor"
)

// Selection is re-exported for convenience.
type Selection = cursor.Selection

// Editor is an in-memory text buffer with a single selection.
type Editor struct {
	mu sync.Mutex

	text      string
	sel       cursor.Selection
	clipboard Clipboard
	readOnly  bool

	// goal is the grapheme column kept across consecutive vertical moves;
	// -1 when the last move was not vertical.
	goal int
}

// New creates an editor holding text with the cursor at offset 0.
func New(text string, opts ...Option) *Editor {
	e := &Editor{
		text:      text,
		clipboard: &MemoryClipboard{},
		goal:      -1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.sel = e.sel.Clamp(len(e.text))
	e.sel = cursor.NewSelection(runeStart(e.text, e.sel.Anchor), runeStart(e.text, e.sel.Head))
	return e
}

// Text returns the buffer content.
func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// Len returns the buffer length in bytes.
func (e *Editor) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.text)
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

// Cursor returns the selection head.
func (e *Editor) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel.Head
}

// SetSelection replaces the selection. Both offsets must lie on character
// boundaries within the buffer.
func (e *Editor) SetSelection(anchor, head int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, off := range []int{anchor, head} {
		if off < 0 || off > len(e.text) {
			return fmt.Errorf("%w: %d", ErrOffsetOutOfRange, off)
		}
		if off < len(e.text) && !utf8.RuneStart(e.text[off]) {
			return fmt.Errorf("%w: %d", ErrNotBoundary, off)
		}
	}
	e.sel = cursor.NewSelection(anchor, head)
	e.goal = -1
	return nil
}

// SetCursor collapses the selection at offset.
func (e *Editor) SetCursor(offset int) error {
	return e.SetSelection(offset, offset)
}

// Clipboard returns the editor's clipboard.
func (e *Editor) Clipboard() Clipboard {
	return e.clipboard
}

// WaitReady returns immediately; in-memory state is always settled.
func (e *Editor) WaitReady(ctx context.Context) error {
	return ctx.Err()
}

// Left collapses a selection to its start, or moves the cursor back one character.
func (e *Editor) Left() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.goal = -1
	if !e.sel.IsEmpty() {
		e.sel = e.sel.CollapseToStart()
		return nil
	}
	e.sel = e.sel.MoveTo(prevBoundary(e.text, e.sel.Head))
	return nil
}

// Right collapses a selection to its end, or moves the cursor forward one character.
func (e *Editor) Right() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.goal = -1
	if !e.sel.IsEmpty() {
		e.sel = e.sel.CollapseToEnd()
		return nil
	}
	e.sel = e.sel.MoveTo(nextBoundary(e.text, e.sel.Head))
	return nil
}

// ExtendLeft moves the head back one character.
func (e *Editor) ExtendLeft() error {
	return e.extend(func(head int) int { return prevBoundary(e.text, head) })
}

// ExtendRight moves the head forward one character.
func (e *Editor) ExtendRight() error {
	return e.extend(func(head int) int { return nextBoundary(e.text, head) })
}

// ExtendLineStart moves the head to the start of its line.
func (e *Editor) ExtendLineStart() error {
	return e.extend(func(head int) int { return lineStart(e.text, head) })
}

// ExtendLineEnd moves the head to the end of its line.
func (e *Editor) ExtendLineEnd() error {
	return e.extend(func(head int) int { return lineEnd(e.text, head) })
}

// ExtendUp moves the head to the same column on the previous line, or to
// the buffer start on the first line.
func (e *Editor) ExtendUp() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	col := e.column()
	start := lineStart(e.text, e.sel.Head)
	if start == 0 {
		e.sel = e.sel.Extend(0)
		return nil
	}
	prev := lineStart(e.text, start-1)
	e.sel = e.sel.Extend(advance(e.text, prev, lineEnd(e.text, prev), col))
	return nil
}

// ExtendDown moves the head to the same column on the next line, or to the
// buffer end on the last line.
func (e *Editor) ExtendDown() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	col := e.column()
	nl := strings.IndexByte(e.text[e.sel.Head:], '\n')
	if nl < 0 {
		e.sel = e.sel.Extend(len(e.text))
		return nil
	}
	next := e.sel.Head + nl + 1
	e.sel = e.sel.Extend(advance(e.text, next, lineEnd(e.text, next), col))
	return nil
}

// SelectedText returns the selected text.
func (e *Editor) SelectedText() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text[e.sel.Start():e.sel.End()], nil
}

// Delete removes the selected text. It does nothing without a selection.
func (e *Editor) Delete() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deleteSelection()
}

// Cut copies the selection to the clipboard and removes it.
func (e *Editor) Cut() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return ErrReadOnly
	}
	if err := e.copySelection(); err != nil {
		return err
	}
	return e.deleteSelection()
}

// Copy copies the selection to the clipboard.
func (e *Editor) Copy() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copySelection()
}

func (e *Editor) extend(to func(head int) int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.goal = -1
	e.sel = e.sel.Extend(to(e.sel.Head))
	return nil
}

// column returns the sticky grapheme column for a vertical move.
// Caller must hold e.mu.
func (e *Editor) column() int {
	if e.goal < 0 {
		start := lineStart(e.text, e.sel.Head)
		e.goal = uniseg.GraphemeClusterCount(e.text[start:e.sel.Head])
	}
	return e.goal
}

func (e *Editor) deleteSelection() error {
	if e.readOnly {
		return ErrReadOnly
	}
	if e.sel.IsEmpty() {
		return nil
	}
	start, end := e.sel.Start(), e.sel.End()
	e.text = e.text[:start] + e.text[end:]
	e.sel = cursor.NewCursorSelection(start)
	e.goal = -1
	return nil
}

func (e *Editor) copySelection() error {
	if e.clipboard == nil {
		return ErrNoClipboard
	}
	if err := e.clipboard.WriteAll(e.text[e.sel.Start():e.sel.End()]); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// runeStart moves off back to the start of the character it falls inside.
func runeStart(text string, off int) int {
	for off > 0 && off < len(text) && !utf8.RuneStart(text[off]) {
		off--
	}
	return off
}

// lineStart returns the offset of the first byte of the line holding off.
func lineStart(text string, off int) int {
	return strings.LastIndexByte(text[:off], '\n') + 1
}

// lineEnd returns the offset of the line terminator after off, or len(text).
// A CRLF terminator ends the line at the CR.
func lineEnd(text string, off int) int {
	nl := strings.IndexByte(text[off:], '\n')
	if nl < 0 {
		return len(text)
	}
	end := off + nl
	if end > off && text[end-1] == '\r' {
		end--
	}
	return end
}

// nextBoundary returns the offset after the character starting at off.
func nextBoundary(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[off:], -1)
	return off + len(cluster)
}

// prevBoundary returns the offset of the character ending at off.
func prevBoundary(text string, off int) int {
	if off <= 0 {
		return 0
	}
	pos := lineStart(text, off-1)
	state := -1
	rest := text[pos:off]
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if rest == "" {
			return pos
		}
		pos += len(cluster)
	}
	return pos
}

// advance moves n characters from off without passing limit.
func advance(text string, off, limit, n int) int {
	state := -1
	rest := text[off:limit]
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		off += len(cluster)
	}
	return off
}
