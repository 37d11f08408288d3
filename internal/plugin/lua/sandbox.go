package lua

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Capability represents a permission that can be granted to scripts.
type Capability string

// Available capabilities.
const (
	CapabilityEdit      Capability = "edit"
	CapabilityClipboard Capability = "clipboard"
)

// ParseCapability parses a capability name.
func ParseCapability(s string) (Capability, error) {
	switch c := Capability(strings.ToLower(strings.TrimSpace(s))); c {
	case CapabilityEdit, CapabilityClipboard:
		return c, nil
	}
	return "", fmt.Errorf("unknown capability %q", s)
}

// Sandbox restricts Lua execution to safe operations.
type Sandbox struct {
	L   *lua.LState
	out io.Writer

	mu           sync.RWMutex
	capabilities map[Capability]bool
	modules      map[string]bool
}

// safeModules are the built-in libraries require may return.
var safeModules = map[string]bool{
	"string": true,
	"table":  true,
	"math":   true,
}

// NewSandbox creates a new sandbox for the Lua state.
func NewSandbox(L *lua.LState, out io.Writer) *Sandbox {
	return &Sandbox{
		L:            L,
		out:          out,
		capabilities: make(map[Capability]bool),
		modules:      make(map[string]bool),
	}
}

// Install sets up the sandbox restrictions.
func (s *Sandbox) Install() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		s.L.SetGlobal(name, lua.LNil)
	}

	s.installPrint()
	s.installSafeRequire()
}

// installPrint sends print output to the sandbox writer.
func (s *Sandbox) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(s.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// installSafeRequire clears the search paths and replaces require with a
// version that only returns safe libraries and preloaded modules.
func (s *Sandbox) installSafeRequire() {
	if pkg, ok := s.L.GetGlobal("package").(*lua.LTable); ok {
		s.L.SetField(pkg, "path", lua.LString(""))
		s.L.SetField(pkg, "cpath", lua.LString(""))
	}

	originalRequire := s.L.GetGlobal("require")

	s.L.SetGlobal("require", s.L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if !safeModules[name] && !s.moduleAllowed(name) {
			L.RaiseError("%v: %q", ErrModuleNotAllowed, name)
			return 0
		}
		L.Push(originalRequire)
		L.Push(lua.LString(name))
		L.Call(1, 1)
		return 1
	}))
}

func (s *Sandbox) allowModule(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modules[name] = true
}

func (s *Sandbox) moduleAllowed(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modules[name]
}

// Grant enables a capability.
func (s *Sandbox) Grant(c Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capabilities[c] = true
}

// Revoke disables a capability.
func (s *Sandbox) Revoke(c Capability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.capabilities, c)
}

// HasCapability returns true if the capability is granted.
func (s *Sandbox) HasCapability(c Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.capabilities[c]
}

// Capabilities returns all granted capabilities, sorted.
func (s *Sandbox) Capabilities() []Capability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	caps := make([]Capability, 0, len(s.capabilities))
	for c, granted := range s.capabilities {
		if granted {
			caps = append(caps, c)
		}
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// CheckCapability returns a *CapabilityError if c is not granted.
func (s *Sandbox) CheckCapability(c Capability) error {
	if !s.HasCapability(c) {
		return &CapabilityError{Capability: c}
	}
	return nil
}
