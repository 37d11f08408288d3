package nav

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/voicenav/internal/pattern"
)

// Request describes one navigation call.
type Request struct {
	// Action to perform at the target.
	Action Action

	// Direction to search in.
	Direction Direction

	// TargetClass names the class used for Before/After anchors.
	// "" and "DEFAULT" mean the word class. Unknown names are compiled
	// as expressions.
	TargetClass string

	// Anchor selects the match itself or its neighbouring class token.
	Anchor AnchorMode

	// Pattern is the compiled target.
	Pattern Pattern

	// Occurrence is the 1-based match count outward from the cursor.
	Occurrence int
}

// Validate checks the request fields that do not need the editor.
func (r Request) Validate() error {
	if r.Pattern == nil {
		return ErrNilPattern
	}
	if r.Occurrence < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOccurrence, r.Occurrence)
	}
	if r.Direction > DirectionRight {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, r.Direction)
	}
	if r.Action > ActionCopy {
		return fmt.Errorf("%w: %d", ErrUnknownAction, r.Action)
	}
	if r.Anchor > AnchorAfter {
		return fmt.Errorf("%w: %d", ErrUnknownAnchor, r.Anchor)
	}
	return nil
}

// Navigator runs navigation calls against one editor.
// Calls must not overlap; the editor selection is shared state.
type Navigator struct {
	ed       Editor
	settings Settings
	compiler *pattern.Compiler
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithCompiler sets the compiler used for class names and the NavigateBy helpers.
func WithCompiler(c *pattern.Compiler) Option {
	return func(n *Navigator) {
		if c != nil {
			n.compiler = c
		}
	}
}

// NewNavigator creates a navigator. settings may be nil to use defaults.
func NewNavigator(ed Editor, settings Settings, opts ...Option) *Navigator {
	n := &Navigator{
		ed:       ed,
		settings: settings,
		compiler: pattern.NewCompiler(nil, nil),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Compiler returns the navigator's pattern compiler.
func (n *Navigator) Compiler() *pattern.Compiler {
	return n.compiler
}

// Navigate finds req.Occurrence-th match of req.Pattern in req.Direction
// and performs req.Action there.
//
// A search that finds nothing restores the prior selection and returns nil.
// Errors from the editor are wrapped with ErrEditor; once a mutating
// primitive has been issued nothing is rolled back.
func (n *Navigator) Navigate(ctx context.Context, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	class, err := n.compiler.ClassOrExpression(req.TargetClass)
	if err != nil {
		return fmt.Errorf("%w: target class: %w", ErrInvalidPattern, err)
	}

	axis := req.Direction.Axis()
	l := logger.With(
		"call", uuid.NewString(),
		"action", req.Action,
		"direction", req.Direction,
		"anchor", req.Anchor,
		"occurrence", req.Occurrence,
	)

	guard, err := AcquireSelectionGuard(n.ed, axis)
	if err != nil {
		return err
	}

	maxLines := settingInt(n.settings, SettingMaxLineSearch, DefaultMaxLineSearch)
	window, err := NewWindowExtractor(n.ed).Extract(req.Direction, maxLines)
	if err != nil {
		return err
	}
	window = guard.Exclude(window)

	match, ok := FindOccurrence(req.Pattern, req.Occurrence, window.Searchable(), axis == AxisBackward)
	if !ok {
		l.Debug("no match", "window", len(window.Text), "excluded", window.Excluded)
		return guard.Restore()
	}
	match = match.Shift(window.SearchOffset())
	l.Debug("match", "start", match.Start, "end", match.End, "text", match.Slice(window.Text))

	delay := settingDuration(n.settings, SettingActionDelay, DefaultActionDelay)
	d := NewActionDispatcher(n.ed, delay)
	if err := d.Settle(ctx); err != nil {
		if rerr := guard.Restore(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}

	return d.Apply(DispatchRequest{
		Action: req.Action,
		Anchor: req.Anchor,
		Class:  class,
		Window: window,
		Match:  match,
	})
}

// NavigateByString navigates to a literal string, ignoring case.
func (n *Navigator) NavigateByString(ctx context.Context, req Request, s string) error {
	t, err := n.compiler.Literal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	req.Pattern = t
	return n.Navigate(ctx, req)
}

// NavigateByWord navigates to a word or any of its homophones.
func (n *Navigator) NavigateByWord(ctx context.Context, req Request, word string) error {
	t, err := n.compiler.Word(word)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	logger.Debug("compiled word target", "word", word, "expr", t.Expr())
	req.Pattern = t
	return n.Navigate(ctx, req)
}

// NavigateByText navigates to free text with homophone substitution.
func (n *Navigator) NavigateByText(ctx context.Context, req Request, text string) error {
	t, err := n.compiler.Text(text)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	req.Pattern = t
	return n.Navigate(ctx, req)
}

// NavigateByName navigates to the named class. Anchors resolve against the
// default class.
func (n *Navigator) NavigateByName(ctx context.Context, req Request, name string) error {
	t, err := n.compiler.Class(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	req.Pattern = t
	req.TargetClass = pattern.DefaultAlias
	return n.Navigate(ctx, req)
}
