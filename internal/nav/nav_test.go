package nav

import (
	"errors"
	"time"

	"github.com/dshills/voicenav/internal/pattern"
)

// fakeSettings implements Settings from fixed maps.
type fakeSettings struct {
	ints      map[string]int
	durations map[string]time.Duration
}

func (s fakeSettings) Int(path string) (int, bool) {
	v, ok := s.ints[path]
	return v, ok
}

func (s fakeSettings) Duration(path string) (time.Duration, bool) {
	v, ok := s.durations[path]
	return v, ok
}

// noDelay disables the settle pause for editors that are not ReadyWaiters.
var noDelay = fakeSettings{durations: map[string]time.Duration{SettingActionDelay: 0}}

// recorder counts primitive calls and hides any ReadyWaiter implementation
// of the wrapped editor.
type recorder struct {
	Editor
	calls []string
}

func (r *recorder) record(name string, fn func() error) error {
	r.calls = append(r.calls, name)
	return fn()
}

func (r *recorder) Left() error        { return r.record("left", r.Editor.Left) }
func (r *recorder) Right() error       { return r.record("right", r.Editor.Right) }
func (r *recorder) ExtendLeft() error  { return r.record("extend_left", r.Editor.ExtendLeft) }
func (r *recorder) ExtendRight() error { return r.record("extend_right", r.Editor.ExtendRight) }
func (r *recorder) Delete() error      { return r.record("delete", r.Editor.Delete) }

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.calls = nil
}

// failingEditor fails the named primitive.
type failingEditor struct {
	Editor
	fail string
	err  error
}

func (f *failingEditor) ExtendLineEnd() error {
	if f.fail == "extend_line_end" {
		return f.err
	}
	return f.Editor.ExtendLineEnd()
}

func (f *failingEditor) Delete() error {
	if f.fail == "delete" {
		return f.err
	}
	return f.Editor.Delete()
}

var errBoom = errors.New("boom")

// mapHomophones implements pattern.Homophones.
type mapHomophones map[string][]string

func (m mapHomophones) Lookup(word string) []string {
	return m[word]
}

func mustLiteral(s string) *pattern.Target {
	t, err := pattern.NewCompiler(nil, nil).Literal(s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustClass(name string) *pattern.Target {
	t, err := pattern.NewCompiler(nil, nil).Class(name)
	if err != nil {
		panic(err)
	}
	return t
}
