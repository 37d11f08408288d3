package api

import (
	"fmt"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	plua "github.com/dshills/voicenav/internal/plugin/lua"
)

// Module is a Lua API module.
type Module interface {
	// Name returns the module name used for require and the global.
	Name() string

	// Register builds the module table in L.
	Register(L *lua.LState) *lua.LTable
}

// Registry manages API modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates a new API registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Register adds a module to the registry.
func (r *Registry) Register(mod Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[mod.Name()]; exists {
		return fmt.Errorf("module %q already registered", mod.Name())
	}
	r.modules[mod.Name()] = mod
	return nil
}

// Get returns a module by name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mod, ok := r.modules[name]
	return mod, ok
}

// List returns all registered module names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install preloads every module into state and sets it as a global.
// require and the global return the same table.
func (r *Registry) Install(state *plua.State) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	L := state.LuaState()
	for name, mod := range r.modules {
		tbl := mod.Register(L)
		state.Preload(name, func(L *lua.LState) int {
			L.Push(tbl)
			return 1
		})
		state.SetGlobal(name, tbl)
	}
}
