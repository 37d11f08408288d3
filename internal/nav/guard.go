package nav

import (
	"github.com/rivo/uniseg"
)

// SelectionGuard keeps a selection that existed before a navigation call out
// of the search and puts it back when the search fails.
type SelectionGuard struct {
	ed     Editor
	axis   Axis
	length int
}

// AcquireSelectionGuard records the current selection length and, when there
// is a selection, collapses it to the edge facing away from the search so the
// window read next starts on the far side of it.
func AcquireSelectionGuard(ed Editor, axis Axis) (*SelectionGuard, error) {
	text, err := selectedText(ed)
	if err != nil {
		return nil, err
	}

	g := &SelectionGuard{
		ed:     ed,
		axis:   axis,
		length: uniseg.GraphemeClusterCount(text),
	}
	if g.length == 0 {
		return g, nil
	}

	collapse := left(ed)
	if axis == AxisBackward {
		collapse = right(ed)
	}
	if err := collapse.call(); err != nil {
		return nil, err
	}
	return g, nil
}

// Length returns the recorded selection length in characters.
func (g *SelectionGuard) Length() int {
	return g.length
}

// Exclude marks the recorded selection as excluded from w's search.
func (g *SelectionGuard) Exclude(w TextWindow) TextWindow {
	return w.WithExcluded(g.length)
}

// Restore re-extends the selection by the recorded length on the side it
// was collapsed from.
func (g *SelectionGuard) Restore() error {
	if g.axis == AxisBackward {
		return repeat(g.length, extendLeft(g.ed))
	}
	return repeat(g.length, extendRight(g.ed))
}
