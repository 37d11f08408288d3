package nav

import (
	"fmt"
	"strings"
)

// Direction is the spoken direction of a navigation.
type Direction uint8

const (
	// DirectionUp searches the current line left of the cursor and the lines above.
	DirectionUp Direction = iota
	// DirectionDown searches the current line right of the cursor and the lines below.
	DirectionDown
	// DirectionLeft searches the current line left of the cursor.
	DirectionLeft
	// DirectionRight searches the current line right of the cursor.
	DirectionRight
)

// String returns the canonical name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// Axis reduces the direction to the side of the cursor being scanned.
func (d Direction) Axis() Axis {
	if d == DirectionUp || d == DirectionLeft {
		return AxisBackward
	}
	return AxisForward
}

// Multiline reports whether the direction searches past the current line.
func (d Direction) Multiline() bool {
	return d == DirectionUp || d == DirectionDown
}

// ParseDirection parses a direction name, ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UP":
		return DirectionUp, nil
	case "DOWN":
		return DirectionDown, nil
	case "LEFT":
		return DirectionLeft, nil
	case "RIGHT":
		return DirectionRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Axis is the logical side of the cursor a window lies on.
type Axis uint8

const (
	// AxisForward windows start at the cursor and run toward the buffer end.
	AxisForward Axis = iota
	// AxisBackward windows end at the cursor.
	AxisBackward
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisBackward {
		return "BACKWARD"
	}
	return "FORWARD"
}

// Action is what to do once the target has been located.
type Action uint8

const (
	// ActionGo moves the cursor.
	ActionGo Action = iota
	// ActionExtend grows the current selection up to the target.
	ActionExtend
	// ActionSelect selects the target.
	ActionSelect
	// ActionDelete selects and deletes the target.
	ActionDelete
	// ActionCut selects and cuts the target.
	ActionCut
	// ActionCopy selects and copies the target.
	ActionCopy
)

// String returns the canonical action name.
func (a Action) String() string {
	switch a {
	case ActionGo:
		return "GO"
	case ActionExtend:
		return "EXTEND"
	case ActionSelect:
		return "SELECT"
	case ActionDelete:
		return "DELETE"
	case ActionCut:
		return "CUT"
	case ActionCopy:
		return "COPY"
	default:
		return "UNKNOWN"
	}
}

// Selects reports whether the action builds a selection over the target.
func (a Action) Selects() bool {
	switch a {
	case ActionSelect, ActionDelete, ActionCut, ActionCopy:
		return true
	}
	return false
}

// ParseAction parses an action name. Both canonical names (GO, EXTEND, ...)
// and the spoken forms (move, clear, ...) are accepted.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GO", "MOVE":
		return ActionGo, nil
	case "EXTEND":
		return ActionExtend, nil
	case "SELECT":
		return ActionSelect, nil
	case "DELETE", "CLEAR":
		return ActionDelete, nil
	case "CUT":
		return ActionCut, nil
	case "COPY":
		return ActionCopy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// AnchorMode selects whether the action targets the match itself or the
// nearest class token before or after it.
type AnchorMode uint8

const (
	// AnchorDefault targets the match.
	AnchorDefault AnchorMode = iota
	// AnchorBefore targets the token preceding the match.
	AnchorBefore
	// AnchorAfter targets the token following the match.
	AnchorAfter
)

// String returns the anchor mode name.
func (m AnchorMode) String() string {
	switch m {
	case AnchorBefore:
		return "BEFORE"
	case AnchorAfter:
		return "AFTER"
	default:
		return "DEFAULT"
	}
}

// ParseAnchorMode parses an anchor mode. The empty string means AnchorDefault.
func ParseAnchorMode(s string) (AnchorMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "DEFAULT":
		return AnchorDefault, nil
	case "BEFORE":
		return AnchorBefore, nil
	case "AFTER":
		return AnchorAfter, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

// MatchRange is a half-open byte range [Start, End) within a single TextWindow.
type MatchRange struct {
	Start int
	End   int
}

// Len returns the byte length of the range.
func (r MatchRange) Len() int {
	return r.End - r.Start
}

// Slice returns the text covered by the range.
func (r MatchRange) Slice(text string) string {
	return text[r.Start:r.End]
}

// Shift returns the range moved by delta bytes.
func (r MatchRange) Shift(delta int) MatchRange {
	return MatchRange{Start: r.Start + delta, End: r.End + delta}
}
