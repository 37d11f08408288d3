// Package api provides the Lua modules exposed to voicenav scripts.
//
// Each module implements Module and is added to a Registry, which preloads
// it into a sandboxed state so scripts can use either the global or
// require:
//
//	local nav = require("nav")
//	nav.by_word("there", { action = "select", direction = "left" })
//
// The nav module is the grammar binding: it turns spoken-command fields
// (action, direction, anchor, class, occurrence) into navigation requests.
package api
