// Package lua runs voicenav scripts in a sandboxed gopher-lua state.
//
// Scripts drive the navigator through modules preloaded by the host
// (see package api). The sandbox keeps only the base, table, string and
// math libraries, removes dofile, loadfile, load and loadstring, and
// restricts require to those libraries and to preloaded modules.
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(2 * time.Second))
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	state.Sandbox().Grant(lua.CapabilityEdit)
//	if err := state.DoFile(ctx, "select-args.lua"); err != nil {
//	    return err
//	}
//
// # Capabilities
//
// Modules check capabilities before performing side effects:
//   - CapabilityEdit: delete or cut text
//   - CapabilityClipboard: write to the clipboard (cut and copy)
//
// Moving and selecting never need a capability.
//
// # Timeouts
//
// Every execution runs under a context. The VM checks it between
// instructions, so a runaway loop stops with ErrExecutionTimeout. Go
// functions called from Lua receive the same context through
// LState.Context.
package lua
