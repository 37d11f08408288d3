package nav

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/voicenav/internal/engine"
	"github.com/dshills/voicenav/internal/pattern"
)

func selected(t *testing.T, ed *engine.Editor) string {
	t.Helper()
	s, err := ed.SelectedText()
	require.NoError(t, err)
	return s
}

func TestNavigateSelectSecondOccurrenceLeft(t *testing.T) {
	text := "cat sat on the cat"
	ed := engine.New(text, engine.WithCursor(len(text)))
	nv := NewNavigator(ed, nil)

	err := nv.Navigate(context.Background(), Request{
		Action:     ActionSelect,
		Direction:  DirectionLeft,
		Anchor:     AnchorDefault,
		Pattern:    mustLiteral("cat"),
		Occurrence: 2,
	})
	require.NoError(t, err)

	sel := ed.Selection()
	assert.Equal(t, 0, sel.Start())
	assert.Equal(t, 3, sel.End())
	assert.Equal(t, "cat", selected(t, ed))
}

func TestNavigateGoMovesByMatchEnd(t *testing.T) {
	ed := engine.New("foo bar ba")
	rec := &recorder{Editor: ed}
	nv := NewNavigator(rec, noDelay)

	err := nv.Navigate(context.Background(), Request{
		Action:     ActionGo,
		Direction:  DirectionRight,
		Pattern:    mustLiteral("bar"),
		Occurrence: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, ed.Cursor())
	assert.True(t, ed.Selection().IsEmpty())
	// One Left collapses the window read; the rest are the move.
	assert.Equal(t, 1, rec.count("left"))
	assert.Equal(t, 7, rec.count("right"))
}

func TestNavigateGoAnchors(t *testing.T) {
	text := "foo bar baz"

	tests := []struct {
		name   string
		dir    Direction
		cursor int
		target string
		anchor AnchorMode
		want   int
	}{
		{"right default", DirectionRight, 0, "bar", AnchorDefault, 7},
		{"right before", DirectionRight, 0, "bar", AnchorBefore, 4},
		{"right after", DirectionRight, 0, "bar", AnchorAfter, 7},
		{"left default", DirectionLeft, 11, "bar", AnchorDefault, 4},
		{"left before", DirectionLeft, 11, "bar", AnchorBefore, 4},
		{"left after", DirectionLeft, 11, "bar", AnchorAfter, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := engine.New(text, engine.WithCursor(tt.cursor))
			err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
				Action:     ActionGo,
				Direction:  tt.dir,
				Anchor:     tt.anchor,
				Pattern:    mustLiteral(tt.target),
				Occurrence: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ed.Cursor())
		})
	}
}

func TestNavigateSelectWithAnchors(t *testing.T) {
	text := "foo (bar) baz"

	tests := []struct {
		name   string
		dir    Direction
		cursor int
		anchor AnchorMode
		want   string
	}{
		{"right default", DirectionRight, 0, AnchorDefault, "(bar)"},
		{"right before", DirectionRight, 0, AnchorBefore, "foo"},
		{"right after", DirectionRight, 0, AnchorAfter, "baz"},
		{"left default", DirectionLeft, len(text), AnchorDefault, "(bar)"},
		{"left before", DirectionLeft, len(text), AnchorBefore, "foo"},
		{"left after", DirectionLeft, len(text), AnchorAfter, "baz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := engine.New(text, engine.WithCursor(tt.cursor))
			err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
				Action:      ActionSelect,
				Direction:   tt.dir,
				TargetClass: "DEFAULT",
				Anchor:      tt.anchor,
				Pattern:     mustClass("parens"),
				Occurrence:  1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, selected(t, ed))
		})
	}
}

func TestNavigateAnchorsKeepAccentedWordsWhole(t *testing.T) {
	text := "héllo (wörld) bàz"

	tests := []struct {
		name   string
		dir    Direction
		cursor int
		anchor AnchorMode
		want   string
	}{
		{"right before", DirectionRight, 0, AnchorBefore, "héllo"},
		{"right after", DirectionRight, 0, AnchorAfter, "bàz"},
		{"left before", DirectionLeft, len(text), AnchorBefore, "héllo"},
		{"left after", DirectionLeft, len(text), AnchorAfter, "bàz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := engine.New(text, engine.WithCursor(tt.cursor))
			err := NewNavigator(ed, nil).NavigateByName(context.Background(), Request{
				Action:     ActionSelect,
				Direction:  tt.dir,
				Anchor:     tt.anchor,
				Occurrence: 1,
			}, "parens")
			require.NoError(t, err)
			assert.Equal(t, tt.want, selected(t, ed))
		})
	}
}

func TestNavigateSelectBeforeFallsBackToWindowStart(t *testing.T) {
	text := "  (bar) baz"
	ed := engine.New(text)

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionSelect,
		Direction:  DirectionRight,
		Anchor:     AnchorBefore,
		Pattern:    mustClass("parens"),
		Occurrence: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "  ", selected(t, ed))
}

func TestNavigateExplicitTargetClass(t *testing.T) {
	text := "x.y (bar) a-b"
	ed := engine.New(text)

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:      ActionSelect,
		Direction:   DirectionRight,
		TargetClass: "big",
		Anchor:      AnchorAfter,
		Pattern:     mustClass("parens"),
		Occurrence:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "a-b", selected(t, ed))

	ed = engine.New(text)
	err = NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:      ActionSelect,
		Direction:   DirectionRight,
		TargetClass: `[a-z]\.[a-z]`,
		Anchor:      AnchorBefore,
		Pattern:     mustClass("parens"),
		Occurrence:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, "x.y", selected(t, ed))
}

func TestNavigateFailedSearchRestoresSelection(t *testing.T) {
	text := "hello world"

	tests := []struct {
		name   string
		dir    Direction
		anchor int
		head   int
	}{
		{"left", DirectionLeft, 6, 11},
		{"right", DirectionRight, 0, 5},
		{"up", DirectionUp, 6, 11},
		{"down", DirectionDown, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := engine.New(text, engine.WithSelection(tt.anchor, tt.head))
			before := ed.Selection()

			err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
				Action:     ActionSelect,
				Direction:  tt.dir,
				Pattern:    mustLiteral("zzz"),
				Occurrence: 1,
			})
			require.NoError(t, err)

			after := ed.Selection()
			assert.Equal(t, before.Len(), after.Len())
			assert.Equal(t, before.Start(), after.Start())
			assert.Equal(t, before.End(), after.End())
			assert.Equal(t, text, ed.Text())
		})
	}
}

func TestNavigateOccurrencePastLastIsNoOp(t *testing.T) {
	text := "cat cat"
	ed := engine.New(text, engine.WithCursor(0))

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionDelete,
		Direction:  DirectionRight,
		Pattern:    mustLiteral("cat"),
		Occurrence: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, text, ed.Text())
	assert.Equal(t, 0, ed.Cursor())
}

func TestNavigateSkipsExistingSelection(t *testing.T) {
	ed := engine.New("cat cat", engine.WithSelection(4, 7))

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionSelect,
		Direction:  DirectionLeft,
		Pattern:    mustLiteral("cat"),
		Occurrence: 1,
	})
	require.NoError(t, err)

	sel := ed.Selection()
	assert.Equal(t, 0, sel.Start())
	assert.Equal(t, 3, sel.End())
}

func TestNavigateExtendDownGrowsSelection(t *testing.T) {
	text := "say abc then foo\nnext line"
	ed := engine.New(text, engine.WithSelection(4, 7))

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionExtend,
		Direction:  DirectionDown,
		Pattern:    mustLiteral("foo"),
		Occurrence: 1,
	})
	require.NoError(t, err)

	// The match ends 9 characters past the excluded selection.
	sel := ed.Selection()
	assert.Equal(t, 3+9, sel.Len())
	assert.Equal(t, 4, sel.Start())
	assert.Equal(t, "abc then foo", selected(t, ed))
}

func TestNavigateExtendLeftGrowsSelection(t *testing.T) {
	text := "alpha beta gamma"
	ed := engine.New(text, engine.WithSelection(11, 16))

	err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionExtend,
		Direction:  DirectionLeft,
		Pattern:    mustLiteral("alpha"),
		Occurrence: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, text, selected(t, ed))
}

func TestNavigateUpUsesMaxLineSetting(t *testing.T) {
	text := "target\none\ntwo\nthree"
	settings := fakeSettings{ints: map[string]int{SettingMaxLineSearch: 1}}

	ed := engine.New(text, engine.WithCursor(len(text)))
	err := NewNavigator(ed, settings).Navigate(context.Background(), Request{
		Action:     ActionSelect,
		Direction:  DirectionUp,
		Pattern:    mustLiteral("target"),
		Occurrence: 1,
	})
	require.NoError(t, err)
	assert.True(t, ed.Selection().IsEmpty(), "target is out of range with one extra line")
	assert.Equal(t, len(text), ed.Cursor())

	ed = engine.New(text, engine.WithCursor(len(text)))
	err = NewNavigator(ed, nil).Navigate(context.Background(), Request{
		Action:     ActionSelect,
		Direction:  DirectionUp,
		Pattern:    mustLiteral("target"),
		Occurrence: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "target", selected(t, ed))
}

func TestNavigateCompoundActions(t *testing.T) {
	text := "alpha beta gamma"

	t.Run("delete", func(t *testing.T) {
		ed := engine.New(text)
		err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
			Action: ActionDelete, Direction: DirectionRight,
			Pattern: mustLiteral("beta"), Occurrence: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "alpha  gamma", ed.Text())
		assert.Equal(t, 6, ed.Cursor())
	})

	t.Run("cut", func(t *testing.T) {
		cb := &engine.MemoryClipboard{}
		ed := engine.New(text, engine.WithCursor(len(text)), engine.WithClipboard(cb))
		err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
			Action: ActionCut, Direction: DirectionLeft,
			Pattern: mustLiteral("beta"), Occurrence: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "alpha  gamma", ed.Text())
		got, _ := cb.ReadAll()
		assert.Equal(t, "beta", got)
	})

	t.Run("copy", func(t *testing.T) {
		cb := &engine.MemoryClipboard{}
		ed := engine.New(text, engine.WithClipboard(cb))
		err := NewNavigator(ed, nil).Navigate(context.Background(), Request{
			Action: ActionCopy, Direction: DirectionRight,
			Anchor: AnchorAfter, Pattern: mustLiteral("alpha"), Occurrence: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, text, ed.Text())
		got, _ := cb.ReadAll()
		assert.Equal(t, "beta", got)
		assert.Equal(t, "beta", selected(t, ed))
	})
}

func TestNavigateValidation(t *testing.T) {
	ed := engine.New("text")
	rec := &recorder{Editor: ed}
	nv := NewNavigator(rec, noDelay)
	ctx := context.Background()

	err := nv.Navigate(ctx, Request{Pattern: mustLiteral("t"), Occurrence: 0})
	assert.ErrorIs(t, err, ErrInvalidOccurrence)

	err = nv.Navigate(ctx, Request{Occurrence: 1})
	assert.ErrorIs(t, err, ErrNilPattern)

	err = nv.Navigate(ctx, Request{Pattern: mustLiteral("t"), Occurrence: 1, TargetClass: "("})
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.ErrorIs(t, err, pattern.ErrInvalidPattern)

	assert.Empty(t, rec.calls)
}

func TestNavigatePropagatesEditorErrors(t *testing.T) {
	ed := &failingEditor{Editor: engine.New("one two"), fail: "extend_line_end", err: errBoom}
	err := NewNavigator(ed, noDelay).Navigate(context.Background(), Request{
		Action: ActionGo, Direction: DirectionRight,
		Pattern: mustLiteral("two"), Occurrence: 1,
	})
	assert.ErrorIs(t, err, ErrEditor)
	assert.ErrorIs(t, err, errBoom)

	ed = &failingEditor{Editor: engine.New("one two"), fail: "delete", err: errBoom}
	err = NewNavigator(ed, noDelay).Navigate(context.Background(), Request{
		Action: ActionDelete, Direction: DirectionRight,
		Pattern: mustLiteral("two"), Occurrence: 1,
	})
	assert.ErrorIs(t, err, ErrEditor)
	assert.ErrorIs(t, err, errBoom)
}

func TestNavigateCancelledBeforeMutationRestores(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	t.Run("ready waiter", func(t *testing.T) {
		ed := engine.New("hello world", engine.WithSelection(0, 5))
		err := NewNavigator(ed, nil).Navigate(ctx, Request{
			Action: ActionSelect, Direction: DirectionRight,
			Pattern: mustLiteral("world"), Occurrence: 1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, ed.Selection().Start())
		assert.Equal(t, 5, ed.Selection().End())
	})

	t.Run("delay", func(t *testing.T) {
		ed := engine.New("hello world", engine.WithSelection(0, 5))
		settings := fakeSettings{durations: map[string]time.Duration{SettingActionDelay: time.Hour}}
		err := NewNavigator(&recorder{Editor: ed}, settings).Navigate(ctx, Request{
			Action: ActionSelect, Direction: DirectionRight,
			Pattern: mustLiteral("world"), Occurrence: 1,
		})
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 0, ed.Selection().Start())
		assert.Equal(t, 5, ed.Selection().End())
	})
}

func TestNavigateByHelpers(t *testing.T) {
	homophones := mapHomophones{
		"there": {"there", "their", "they're"},
		"their": {"there", "their", "they're"},
	}
	ctx := context.Background()
	req := Request{Action: ActionSelect, Direction: DirectionRight, Occurrence: 1}

	t.Run("string", func(t *testing.T) {
		ed := engine.New("a.b a+b")
		require.NoError(t, NewNavigator(ed, nil).NavigateByString(ctx, req, "a+b"))
		assert.Equal(t, "a+b", selected(t, ed))
	})

	t.Run("word", func(t *testing.T) {
		ed := engine.New("put it in their bag")
		nv := NewNavigator(ed, nil, WithCompiler(pattern.NewCompiler(nil, homophones)))
		require.NoError(t, nv.NavigateByWord(ctx, req, "there"))
		assert.Equal(t, "their", selected(t, ed))
	})

	t.Run("text", func(t *testing.T) {
		ed := engine.New("meet me over their now")
		nv := NewNavigator(ed, nil, WithCompiler(pattern.NewCompiler(nil, homophones)))
		require.NoError(t, nv.NavigateByText(ctx, req, "over there"))
		assert.Equal(t, "over their", selected(t, ed))
	})

	t.Run("name", func(t *testing.T) {
		ed := engine.New("x = FOO_BAR + 1")
		require.NoError(t, NewNavigator(ed, nil).NavigateByName(ctx, req, "constant"))
		assert.Equal(t, "FOO_BAR", selected(t, ed))
	})

	t.Run("unknown name", func(t *testing.T) {
		ed := engine.New("x")
		err := NewNavigator(ed, nil).NavigateByName(ctx, req, "nope")
		assert.ErrorIs(t, err, ErrInvalidPattern)
		assert.ErrorIs(t, err, pattern.ErrUnknownClass)
	})
}
