package api

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/voicenav/internal/engine"
	"github.com/dshills/voicenav/internal/homophones"
	"github.com/dshills/voicenav/internal/nav"
	"github.com/dshills/voicenav/internal/pattern"
	plua "github.com/dshills/voicenav/internal/plugin/lua"
)

// setupNavTest returns a state with the nav module installed over an
// editor holding text with the cursor at cursorAt.
func setupNavTest(t *testing.T, text string, cursorAt int) (*plua.State, *engine.Editor) {
	t.Helper()

	ed := engine.New(text, engine.WithCursor(cursorAt))
	compiler := pattern.NewCompiler(nil, homophones.New([]string{"their", "there", "they're"}))
	n := nav.NewNavigator(ed, nil, nav.WithCompiler(compiler))

	state, err := plua.NewState()
	if err != nil {
		t.Fatalf("NewState() error: %v", err)
	}
	t.Cleanup(func() { _ = state.Close() })

	reg := NewRegistry()
	if err := reg.Register(NewNavModule(n, state.Sandbox())); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	reg.Install(state)

	return state, ed
}

func run(t *testing.T, state *plua.State, code string) {
	t.Helper()
	if err := state.DoString(context.Background(), code); err != nil {
		t.Fatalf("DoString(%q) error: %v", code, err)
	}
}

func selected(t *testing.T, ed *engine.Editor) string {
	t.Helper()
	s, err := ed.SelectedText()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNavRequireReturnsGlobal(t *testing.T) {
	state, _ := setupNavTest(t, "", 0)
	run(t, state, `assert(require("nav") == nav)`)
}

func TestNavByString(t *testing.T) {
	state, ed := setupNavTest(t, "the cat sat on the mat", 0)

	run(t, state, `nav.by_string("SAT", {action = "select"})`)

	if got := selected(t, ed); got != "sat" {
		t.Errorf("selected %q, want sat", got)
	}
}

func TestNavDefaultsToGoRight(t *testing.T) {
	state, ed := setupNavTest(t, "the cat sat", 0)

	run(t, state, `nav.by_string("cat")`)

	sel := ed.Selection()
	if !sel.IsEmpty() || sel.Start() != 7 {
		t.Errorf("selection = %v, want cursor at 7", sel)
	}
}

func TestNavOccurrenceLeft(t *testing.T) {
	state, ed := setupNavTest(t, "the cat sat on the mat", 22)

	run(t, state, `nav.by_string("the", {direction = "left", occurrence = 2, action = "select"})`)

	sel := ed.Selection()
	if sel.Start() != 0 || sel.End() != 3 {
		t.Errorf("selection = %v, want 0..3", sel)
	}
}

func TestNavNavigatePattern(t *testing.T) {
	state, ed := setupNavTest(t, "the cat sat on the mat", 0)

	run(t, state, `nav.navigate{pattern = "m[a-z]t", action = "select"}`)

	if got := selected(t, ed); got != "mat" {
		t.Errorf("selected %q, want mat", got)
	}
}

func TestNavNavigateRequiresPattern(t *testing.T) {
	state, _ := setupNavTest(t, "abc", 0)

	err := state.DoString(context.Background(), `nav.navigate{action = "select"}`)
	if err == nil || !strings.Contains(err.Error(), "pattern is required") {
		t.Errorf("expected missing pattern error, got %v", err)
	}
}

func TestNavByWordUsesHomophones(t *testing.T) {
	state, ed := setupNavTest(t, "put it over there now", 0)

	run(t, state, `nav.by_word("their", {action = "select"})`)

	if got := selected(t, ed); got != "there" {
		t.Errorf("selected %q, want there", got)
	}
}

func TestNavByText(t *testing.T) {
	state, ed := setupNavTest(t, "look over there now", 0)

	run(t, state, `nav.by_text("over their", {action = "select"})`)

	if got := selected(t, ed); got != "over there" {
		t.Errorf("selected %q, want %q", got, "over there")
	}
}

func TestNavByName(t *testing.T) {
	state, ed := setupNavTest(t, "x = MAX_LEN + 1", 0)

	run(t, state, `nav.by_name("constant", {action = "select"})`)

	if got := selected(t, ed); got != "MAX_LEN" {
		t.Errorf("selected %q, want MAX_LEN", got)
	}
}

func TestNavNoMatchIsNotAnError(t *testing.T) {
	state, ed := setupNavTest(t, "abc def", 2)

	run(t, state, `nav.by_string("zzz", {action = "select"})`)

	sel := ed.Selection()
	if !sel.IsEmpty() || sel.Start() != 2 {
		t.Errorf("selection = %v, want cursor at 2", sel)
	}
}

func TestNavOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"unknown option", `nav.by_string("a", {speed = 2})`, `unknown option "speed"`},
		{"bad action", `nav.by_string("a", {action = "jump"})`, "unknown navigation action"},
		{"bad direction", `nav.by_string("a", {direction = "north"})`, "unknown direction"},
		{"bad anchor", `nav.by_string("a", {anchor = "inside"})`, "unknown anchor mode"},
		{"zero occurrence", `nav.by_string("a", {occurrence = 0})`, "occurrence number must be at least 1"},
		{"fractional occurrence", `nav.by_string("a", {occurrence = 1.5})`, "occurrence must be an integer"},
		{"non-string action", `nav.by_string("a", {action = 3})`, "action must be a string"},
		{"array options", `nav.by_string("a", {"select"})`, "options must be a table of named fields"},
		{"pattern outside navigate", `nav.by_string("a", {pattern = "x"})`, `unknown option "pattern"`},
		{"invalid expression", `nav.navigate{pattern = "("}`, "invalid pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := setupNavTest(t, "a b c", 0)
			err := state.DoString(context.Background(), tt.code)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestNavCapabilities(t *testing.T) {
	state, ed := setupNavTest(t, "the cat sat", 0)
	ctx := context.Background()

	err := state.DoString(ctx, `nav.by_string("cat", {action = "delete"})`)
	if err == nil || !strings.Contains(err.Error(), "capability not granted: edit") {
		t.Fatalf("expected edit capability error, got %v", err)
	}
	if ed.Text() != "the cat sat" {
		t.Errorf("text changed without capability: %q", ed.Text())
	}

	err = state.DoString(ctx, `nav.by_string("cat", {action = "copy"})`)
	if err == nil || !strings.Contains(err.Error(), "capability not granted: clipboard") {
		t.Fatalf("expected clipboard capability error, got %v", err)
	}

	state.Sandbox().Grant(plua.CapabilityClipboard)
	run(t, state, `nav.by_string("cat", {action = "copy"})`)
	if clip, _ := ed.Clipboard().ReadAll(); clip != "cat" {
		t.Errorf("clipboard = %q, want cat", clip)
	}

	state.Sandbox().Grant(plua.CapabilityEdit)
	if err := ed.SetCursor(0); err != nil {
		t.Fatal(err)
	}
	run(t, state, `nav.by_string("cat", {action = "delete"})`)
	if ed.Text() != "the  sat" {
		t.Errorf("text = %q, want %q", ed.Text(), "the  sat")
	}
}

func TestNavClasses(t *testing.T) {
	state, _ := setupNavTest(t, "", 0)

	run(t, state, `
		local names = nav.classes()
		first, count = names[1], #names
		word = nav.class("word")
		missing = nav.class("nope")
	`)

	if got := state.GetGlobal("first").String(); got != "all" {
		t.Errorf("first class = %q, want all", got)
	}
	if got := state.GetGlobal("count").String(); got != "11" {
		t.Errorf("class count = %s, want 11", got)
	}
	if got := state.GetGlobal("word").String(); got != `[\p{L}\p{N}\p{M}_]+` {
		t.Errorf("word = %q", got)
	}
	if got := state.GetGlobal("missing").String(); got != "nil" {
		t.Errorf("missing = %q, want nil", got)
	}
}
