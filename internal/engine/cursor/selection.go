package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor int // Where selection started
	Head   int // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// IsBackward returns true if the head is before the anchor.
func (s Selection) IsBackward() bool {
	return s.Head < s.Anchor
}

// Extend returns a new selection with the head moved to offset.
// The anchor remains fixed.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Head: offset}
}

// MoveTo returns a new collapsed selection (cursor) at the given offset.
func (s Selection) MoveTo(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	return s.MoveTo(s.Start())
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	return s.MoveTo(s.End())
}

// Clamp returns a selection clamped to [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	return Selection{Anchor: clamp(s.Anchor, maxOffset), Head: clamp(s.Head, maxOffset)}
}

func clamp(v, maxOffset int) int {
	if v < 0 {
		return 0
	}
	if v > maxOffset {
		return maxOffset
	}
	return v
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.Anchor, dir, s.Head)
}
