package nav

import (
	"github.com/rivo/uniseg"
)

// WindowOrigin is the edge of a window the cursor sits on.
type WindowOrigin uint8

const (
	// OriginStart means the cursor is at the start of the window text.
	OriginStart WindowOrigin = iota
	// OriginEnd means the cursor is at the end of the window text.
	OriginEnd
)

// TextWindow is a snapshot of buffer text adjacent to the cursor.
// It is captured, matched against, and dropped within a single call.
type TextWindow struct {
	// Text is the window content.
	Text string

	// Axis is the side of the cursor the window was read from.
	Axis Axis

	// Origin is the window edge touching the cursor.
	Origin WindowOrigin

	// Excluded is the number of characters at the cursor edge that belong
	// to a selection that existed before the call.
	Excluded int

	excludedBytes int
}

// NewTextWindow creates a window for text read on the given axis.
func NewTextWindow(text string, axis Axis) TextWindow {
	origin := OriginStart
	if axis == AxisBackward {
		origin = OriginEnd
	}
	return TextWindow{Text: text, Axis: axis, Origin: origin}
}

// WithExcluded returns the window with n characters at its cursor edge
// excluded from matching. n is clamped to the window length.
func (w TextWindow) WithExcluded(n int) TextWindow {
	if n <= 0 {
		w.Excluded, w.excludedBytes = 0, 0
		return w
	}
	total := uniseg.GraphemeClusterCount(w.Text)
	if n > total {
		n = total
	}
	w.Excluded = n
	if w.Origin == OriginEnd {
		w.excludedBytes = len(w.Text) - charsToBytesFromEnd(w.Text, n)
	} else {
		w.excludedBytes = charsToBytes(w.Text, n)
	}
	return w
}

// Len returns the window length in bytes.
func (w TextWindow) Len() int {
	return len(w.Text)
}

// Searchable returns the part of the window that the primary search may match.
func (w TextWindow) Searchable() string {
	if w.Origin == OriginEnd {
		return w.Text[:len(w.Text)-w.excludedBytes]
	}
	return w.Text[w.excludedBytes:]
}

// SearchOffset is the byte offset of Searchable within Text.
func (w TextWindow) SearchOffset() int {
	if w.Origin == OriginEnd {
		return 0
	}
	return w.excludedBytes
}

// Chars returns the number of characters in Text[from:to].
func (w TextWindow) Chars(from, to int) int {
	if from >= to {
		return 0
	}
	return uniseg.GraphemeClusterCount(w.Text[from:to])
}

// StepsTo returns the number of character steps from the cursor to offset.
func (w TextWindow) StepsTo(offset int) int {
	if w.Origin == OriginEnd {
		return w.Chars(offset, len(w.Text))
	}
	return w.Chars(0, offset)
}

// charsToBytes returns the byte length of the first n characters of s.
func charsToBytes(s string, n int) int {
	offset := 0
	state := -1
	rest := s
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
	}
	return offset
}

// charsToBytesFromEnd returns the byte offset where the last n characters of s begin.
func charsToBytesFromEnd(s string, n int) int {
	total := uniseg.GraphemeClusterCount(s)
	if n >= total {
		return 0
	}
	return charsToBytes(s, total-n)
}

// WindowExtractor reads text windows through editor selection primitives.
type WindowExtractor struct {
	ed Editor
}

// NewWindowExtractor creates an extractor over ed.
func NewWindowExtractor(ed Editor) *WindowExtractor {
	return &WindowExtractor{ed: ed}
}

// Extract reads the window adjacent to the cursor in direction dir.
// Up and Down include maxLines additional lines. The editor selection is
// collapsed back to the cursor afterwards.
//
// Extract expects no active selection; SelectionGuard arranges that.
func (x *WindowExtractor) Extract(dir Direction, maxLines int) (TextWindow, error) {
	if maxLines < 0 {
		maxLines = 0
	}

	var steps []primitive
	var collapse primitive
	switch dir {
	case DirectionLeft:
		steps = []primitive{extendLStart(x.ed)}
		collapse = right(x.ed)
	case DirectionRight:
		steps = []primitive{extendLEnd(x.ed)}
		collapse = left(x.ed)
	case DirectionUp:
		steps = []primitive{extendLStart(x.ed), extendLeft(x.ed)}
		for i := 0; i < maxLines; i++ {
			steps = append(steps, extendUp(x.ed))
		}
		steps = append(steps, extendLStart(x.ed))
		collapse = right(x.ed)
	case DirectionDown:
		steps = []primitive{extendLEnd(x.ed), extendRight(x.ed)}
		for i := 0; i < maxLines; i++ {
			steps = append(steps, extendDown(x.ed))
		}
		steps = append(steps, extendLEnd(x.ed))
		collapse = left(x.ed)
	default:
		return TextWindow{}, ErrUnknownDirection
	}

	for _, step := range steps {
		if err := step.call(); err != nil {
			return TextWindow{}, err
		}
	}

	text, err := selectedText(x.ed)
	if err != nil {
		return TextWindow{}, err
	}

	// Nothing selected means the head never left the cursor.
	if text != "" {
		if err := collapse.call(); err != nil {
			return TextWindow{}, err
		}
	}

	return NewTextWindow(text, dir.Axis()), nil
}
