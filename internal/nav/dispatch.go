package nav

import (
	"context"
	"fmt"
	"time"
)

// DispatchRequest is a located target ready to be acted on.
type DispatchRequest struct {
	// Action to perform.
	Action Action

	// Anchor selects the match itself or its neighbouring class token.
	Anchor AnchorMode

	// Class is the token pattern used to resolve Before/After anchors.
	Class Pattern

	// Window is the window Match was found in.
	Window TextWindow

	// Match is the primary match, in Window coordinates.
	Match MatchRange
}

// ActionDispatcher turns a located range into cursor primitives.
type ActionDispatcher struct {
	ed    Editor
	delay time.Duration
}

// NewActionDispatcher creates a dispatcher. delay is the pause inserted
// before the first mutation when the editor is not a ReadyWaiter.
func NewActionDispatcher(ed Editor, delay time.Duration) *ActionDispatcher {
	return &ActionDispatcher{ed: ed, delay: delay}
}

// Settle blocks until the editor can accept mutations. Nothing has been
// changed when it returns an error.
func (d *ActionDispatcher) Settle(ctx context.Context) error {
	if w, ok := d.ed.(ReadyWaiter); ok {
		if err := w.WaitReady(ctx); err != nil {
			return fmt.Errorf("%w: wait_ready: %w", ErrEditor, err)
		}
		return nil
	}
	if d.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Apply issues the primitives for req. The cursor must sit at req.Window's
// origin with no selection.
func (d *ActionDispatcher) Apply(req DispatchRequest) error {
	w := req.Window

	switch req.Action {
	case ActionGo:
		return repeat(w.StepsTo(boundary(req)), d.move(w.Axis))
	case ActionExtend:
		return repeat(w.StepsTo(boundary(req)), d.extend(w.Axis))
	case ActionSelect:
		return d.selectRange(req)
	case ActionDelete:
		return d.selectThen(req, primitive{"delete", d.ed.Delete})
	case ActionCut:
		return d.selectThen(req, primitive{"cut", d.ed.Cut})
	case ActionCopy:
		return d.selectThen(req, primitive{"copy", d.ed.Copy})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAction, req.Action)
	}
}

// Dispatch settles and then applies req.
func (d *ActionDispatcher) Dispatch(ctx context.Context, req DispatchRequest) error {
	if err := d.Settle(ctx); err != nil {
		return err
	}
	return d.Apply(req)
}

// boundary picks the single offset Go and Extend travel to. Default lands
// on the far side of the match in the travel direction.
func boundary(req DispatchRequest) int {
	if req.Window.Axis == AxisForward {
		if req.Anchor == AnchorBefore {
			return req.Match.Start
		}
		return req.Match.End
	}
	if req.Anchor == AnchorAfter {
		return req.Match.End
	}
	return req.Match.Start
}

func (d *ActionDispatcher) selectThen(req DispatchRequest, p primitive) error {
	if err := d.selectRange(req); err != nil {
		return err
	}
	return p.call()
}

// selectRange moves to the near edge of the resolved range and extends over it.
func (d *ActionDispatcher) selectRange(req DispatchRequest) error {
	w := req.Window
	r := ResolveAnchor(req.Anchor, w.Text, req.Match, req.Class)

	near := r.Start
	if w.Axis == AxisBackward {
		near = r.End
	}
	if err := repeat(w.StepsTo(near), d.move(w.Axis)); err != nil {
		return err
	}
	return repeat(w.Chars(r.Start, r.End), d.extend(w.Axis))
}

func (d *ActionDispatcher) move(axis Axis) primitive {
	if axis == AxisBackward {
		return left(d.ed)
	}
	return right(d.ed)
}

func (d *ActionDispatcher) extend(axis Axis) primitive {
	if axis == AxisBackward {
		return extendLeft(d.ed)
	}
	return extendRight(d.ed)
}
