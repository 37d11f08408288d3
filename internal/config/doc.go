// Package config provides the voicenav settings store.
//
// Settings are defined in a registry with types, defaults and limits, and
// are read from a TOML or YAML file and from environment variables. Higher
// sources override lower ones:
//
//	┌─────────────────────────────┐
//	│  4. Set (programmatic)      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← VOICENAV_MAX_LINE_SEARCH, ...
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← $XDG_CONFIG_HOME/voicenav/settings.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: TOML and YAML file loading, environment variables
//   - registry: setting definitions and value conversion
//   - watcher: file watching for live reload
//   - notify: change notification
//
// # Basic Usage
//
//	cfg := config.New(config.WithWatcher(true))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	defer cfg.Close()
//
//	nv := nav.NewNavigator(ed, cfg)
//
// Config implements nav.Settings, so a reload is seen by the next
// navigation call.
//
// # Configuration Files
//
//	# ~/.config/voicenav/settings.toml
//	[text_navigation]
//	max_line_search = 3
//	action_delay = "150ms"
//
//	[logging]
//	level = "debug"
//
// A reload that fails to parse or validate is logged and the previous
// values stay in effect.
package config
