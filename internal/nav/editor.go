package nav

import (
	"context"
	"fmt"
	"time"
)

// Editor is the set of host editor primitives navigation drives.
//
// Left and Right collapse a non-empty selection to its left or right edge
// without moving further; with no selection they move the cursor by one
// character. The Extend methods move the selection head and keep the anchor.
type Editor interface {
	ExtendLineStart() error
	ExtendLineEnd() error
	ExtendLeft() error
	ExtendRight() error
	ExtendUp() error
	ExtendDown() error
	Left() error
	Right() error

	// SelectedText returns the selected text, or "" with no selection.
	SelectedText() (string, error)

	Delete() error
	Cut() error
	Copy() error
}

// ReadyWaiter is implemented by editors that can report when previously
// issued reads have settled and it is safe to mutate the buffer.
type ReadyWaiter interface {
	WaitReady(ctx context.Context) error
}

// Settings provides call-time configuration values.
type Settings interface {
	Int(path string) (int, bool)
	Duration(path string) (time.Duration, bool)
}

// Setting paths read by the navigator.
const (
	SettingMaxLineSearch = "text_navigation.max_line_search"
	SettingActionDelay   = "text_navigation.action_delay"
)

// Defaults used when Settings is nil or has no value.
const (
	DefaultMaxLineSearch = 2
	DefaultActionDelay   = 200 * time.Millisecond
)

// Pattern is a compiled matcher. It returns up to n non-overlapping match
// index pairs, left to right (n < 0 means all).
type Pattern interface {
	FindAllStringIndex(s string, n int) [][]int
}

// primitive names a single editor call for error reporting.
type primitive struct {
	name string
	fn   func() error
}

func (p primitive) call() error {
	if err := p.fn(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEditor, p.name, err)
	}
	return nil
}

// repeat issues p n times, stopping at the first failure.
func repeat(n int, p primitive) error {
	for i := 0; i < n; i++ {
		if err := p.call(); err != nil {
			return err
		}
	}
	return nil
}

func left(ed Editor) primitive         { return primitive{"left", ed.Left} }
func right(ed Editor) primitive        { return primitive{"right", ed.Right} }
func extendLeft(ed Editor) primitive   { return primitive{"extend_left", ed.ExtendLeft} }
func extendRight(ed Editor) primitive  { return primitive{"extend_right", ed.ExtendRight} }
func extendUp(ed Editor) primitive     { return primitive{"extend_up", ed.ExtendUp} }
func extendDown(ed Editor) primitive   { return primitive{"extend_down", ed.ExtendDown} }
func extendLStart(ed Editor) primitive { return primitive{"extend_line_start", ed.ExtendLineStart} }
func extendLEnd(ed Editor) primitive   { return primitive{"extend_line_end", ed.ExtendLineEnd} }

func selectedText(ed Editor) (string, error) {
	text, err := ed.SelectedText()
	if err != nil {
		return "", fmt.Errorf("%w: selected_text: %w", ErrEditor, err)
	}
	return text, nil
}

func settingInt(s Settings, path string, def int) int {
	if s == nil {
		return def
	}
	if v, ok := s.Int(path); ok {
		return v
	}
	return def
}

func settingDuration(s Settings, path string, def time.Duration) time.Duration {
	if s == nil {
		return def
	}
	if v, ok := s.Duration(path); ok {
		return v
	}
	return def
}
