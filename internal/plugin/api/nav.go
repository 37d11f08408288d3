package api

import (
	"context"
	"fmt"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/voicenav/internal/nav"
	plua "github.com/dshills/voicenav/internal/plugin/lua"
)

// NavModule implements the nav API module.
type NavModule struct {
	nav     *nav.Navigator
	sandbox *plua.Sandbox
}

// NewNavModule creates a nav module driving n. A nil sandbox allows
// every action.
func NewNavModule(n *nav.Navigator, sandbox *plua.Sandbox) *NavModule {
	return &NavModule{nav: n, sandbox: sandbox}
}

// Name returns the module name.
func (m *NavModule) Name() string {
	return "nav"
}

// Register builds the module table.
func (m *NavModule) Register(L *lua.LState) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "navigate", L.NewFunction(m.navigate))
	L.SetField(mod, "by_string", L.NewFunction(m.byString))
	L.SetField(mod, "by_word", L.NewFunction(m.byWord))
	L.SetField(mod, "by_name", L.NewFunction(m.byName))
	L.SetField(mod, "by_text", L.NewFunction(m.byText))
	L.SetField(mod, "classes", L.NewFunction(m.classes))
	L.SetField(mod, "class", L.NewFunction(m.class))

	return mod
}

// requestKeys are the option keys shared by every navigation function.
var requestKeys = map[string]bool{
	"action":     true,
	"direction":  true,
	"anchor":     true,
	"class":      true,
	"occurrence": true,
}

// navigate{pattern=expr, action=, direction=, anchor=, class=, occurrence=} -> nil
// Navigates to a raw expression.
func (m *NavModule) navigate(L *lua.LState) int {
	opts := L.CheckTable(1)

	req, err := m.parseRequest(L, opts, "pattern")
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	expr, ok := plua.NewBridge(L).GetTableString(opts, "pattern")
	if !ok || expr == "" {
		L.ArgError(1, "pattern is required")
		return 0
	}
	t, err := m.nav.Compiler().Expression(expr)
	if err != nil {
		L.RaiseError("navigate: %v", err)
		return 0
	}
	req.Pattern = t

	m.run(L, "navigate", req, func(ctx context.Context, req nav.Request) error {
		return m.nav.Navigate(ctx, req)
	})
	return 0
}

// by_string(s [, opts]) -> nil
// Navigates to a literal string, ignoring case.
func (m *NavModule) byString(L *lua.LState) int {
	return m.navigateBy(L, "by_string", m.nav.NavigateByString)
}

// by_word(word [, opts]) -> nil
// Navigates to a word or any of its homophones.
func (m *NavModule) byWord(L *lua.LState) int {
	return m.navigateBy(L, "by_word", m.nav.NavigateByWord)
}

// by_name(class [, opts]) -> nil
// Navigates to the next token of a named class.
func (m *NavModule) byName(L *lua.LState) int {
	return m.navigateBy(L, "by_name", m.nav.NavigateByName)
}

// by_text(text [, opts]) -> nil
// Navigates to free text, matching homophones of each word.
func (m *NavModule) byText(L *lua.LState) int {
	return m.navigateBy(L, "by_text", m.nav.NavigateByText)
}

// classes() -> {names}
// Returns the class names, sorted.
func (m *NavModule) classes(L *lua.LState) int {
	names := m.nav.Compiler().Classes().Names()
	L.Push(plua.NewBridge(L).ToLuaValue(names))
	return 1
}

// class(name) -> expr or nil
// Returns the expression of a named class.
func (m *NavModule) class(L *lua.LState) int {
	name := L.CheckString(1)
	for _, def := range m.nav.Compiler().Classes().Defs() {
		if def.Name == name {
			L.Push(lua.LString(def.Expr))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

type targetFunc func(ctx context.Context, req nav.Request, target string) error

func (m *NavModule) navigateBy(L *lua.LState, name string, fn targetFunc) int {
	target := L.CheckString(1)
	opts := L.OptTable(2, nil)

	req, err := m.parseRequest(L, opts)
	if err != nil {
		L.ArgError(2, err.Error())
		return 0
	}

	m.run(L, name, req, func(ctx context.Context, req nav.Request) error {
		return fn(ctx, req, target)
	})
	return 0
}

// run checks capabilities and performs the call with the state's context.
func (m *NavModule) run(L *lua.LState, name string, req nav.Request, fn func(context.Context, nav.Request) error) {
	if err := m.checkCapabilities(req.Action); err != nil {
		L.RaiseError("%s: %v", name, err)
		return
	}

	ctx := L.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := fn(ctx, req); err != nil {
		L.RaiseError("%s: %v", name, err)
	}
}

// checkCapabilities enforces edit for DELETE and CUT and clipboard for
// CUT and COPY.
func (m *NavModule) checkCapabilities(a nav.Action) error {
	if m.sandbox == nil {
		return nil
	}
	if a == nav.ActionDelete || a == nav.ActionCut {
		if err := m.sandbox.CheckCapability(plua.CapabilityEdit); err != nil {
			return err
		}
	}
	if a == nav.ActionCut || a == nav.ActionCopy {
		if err := m.sandbox.CheckCapability(plua.CapabilityClipboard); err != nil {
			return err
		}
	}
	return nil
}

// parseRequest reads the option table into a request with the defaults
// GO, RIGHT, default anchor and class, occurrence 1. extra lists keys the
// caller reads itself.
func (m *NavModule) parseRequest(L *lua.LState, opts *lua.LTable, extra ...string) (nav.Request, error) {
	req := nav.Request{
		Action:     nav.ActionGo,
		Direction:  nav.DirectionRight,
		Anchor:     nav.AnchorDefault,
		Occurrence: 1,
	}
	if opts == nil {
		return req, nil
	}

	b := plua.NewBridge(L)
	fields, ok := b.ToGoValue(opts).(map[string]any)
	if !ok {
		return req, fmt.Errorf("options must be a table of named fields")
	}

	for _, key := range b.Keys(opts) {
		if !requestKeys[key] && !slices.Contains(extra, key) {
			return req, fmt.Errorf("unknown option %q", key)
		}
	}

	str := func(key string) (string, bool, error) {
		v, ok := fields[key]
		if !ok {
			return "", false, nil
		}
		s, ok := v.(string)
		if !ok {
			return "", false, fmt.Errorf("%s must be a string", key)
		}
		return s, true, nil
	}

	if s, ok, err := str("action"); err != nil {
		return req, err
	} else if ok {
		if req.Action, err = nav.ParseAction(s); err != nil {
			return req, err
		}
	}
	if s, ok, err := str("direction"); err != nil {
		return req, err
	} else if ok {
		if req.Direction, err = nav.ParseDirection(s); err != nil {
			return req, err
		}
	}
	if s, ok, err := str("anchor"); err != nil {
		return req, err
	} else if ok {
		if req.Anchor, err = nav.ParseAnchorMode(s); err != nil {
			return req, err
		}
	}
	if s, ok, err := str("class"); err != nil {
		return req, err
	} else if ok {
		req.TargetClass = s
	}

	if v, ok := fields["occurrence"]; ok {
		n, ok := v.(int64)
		if !ok {
			return req, fmt.Errorf("occurrence must be an integer")
		}
		if n < 1 {
			return req, fmt.Errorf("%w: %d", nav.ErrInvalidOccurrence, n)
		}
		req.Occurrence = int(n)
	}

	return req, nil
}
