package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
// Values are returned as strings; the registry converts them.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for the given env var to path mapping.
func NewEnvLoader(mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// WithLookup replaces the environment lookup, for tests.
func (l *EnvLoader) WithLookup(lookup func(string) (string, bool)) *EnvLoader {
	l.lookup = lookup
	return l
}

// Load reads the mapped environment variables.
// Empty values are treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok && val != "" {
			setByPath(config, path, val)
		}
	}
	return config, nil
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
