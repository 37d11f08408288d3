package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Errors returned by the registry.
var (
	// ErrSettingAlreadyRegistered is returned when registering a duplicate path.
	ErrSettingAlreadyRegistered = errors.New("setting already registered")

	// ErrUnknownSetting is returned for paths that were never registered.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidValue is returned when a value fails coercion or validation.
	ErrInvalidValue = errors.New("invalid setting value")
)

// Setting paths.
const (
	MaxLineSearch   = "text_navigation.max_line_search"
	ActionDelay     = "text_navigation.action_delay"
	LogLevel        = "logging.level"
	HomophoneFiles  = "homophones.files"
	SystemClipboard = "clipboard.system"
)

// Registry maintains all known settings definitions.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
}

// New creates an empty settings registry.
func New() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
	}
}

// NewWithDefaults creates a registry with the built-in settings.
func NewWithDefaults() *Registry {
	r := New()
	r.RegisterDefaults()
	return r
}

// Register adds a setting definition to the registry.
// Returns an error if a setting with the same path already exists or the
// default does not validate.
func (r *Registry) Register(setting Setting) error {
	if setting.Default != nil {
		def, err := setting.Coerce(setting.Default)
		if err != nil {
			return fmt.Errorf("%w: default for %s: %w", ErrInvalidValue, setting.Path, err)
		}
		setting.Default = def
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.settings[setting.Path]; exists {
		return fmt.Errorf("%w: %s", ErrSettingAlreadyRegistered, setting.Path)
	}

	s := setting
	r.settings[setting.Path] = &s
	return nil
}

// MustRegister registers a setting and panics on error.
func (r *Registry) MustRegister(setting Setting) {
	if err := r.Register(setting); err != nil {
		panic(err)
	}
}

// Get returns the setting definition for the given path, or nil.
func (r *Registry) Get(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Has checks if a setting is registered.
func (r *Registry) Has(path string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.settings[path]
	return exists
}

// All returns all registered settings sorted by path.
func (r *Registry) All() []*Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Setting, 0, len(r.settings))
	for _, s := range r.settings {
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Path < result[j].Path
	})

	return result
}

// Defaults returns a map of all default values keyed by path.
func (r *Registry) Defaults() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]any, len(r.settings))
	for path, s := range r.settings {
		if s.Default != nil {
			result[path] = s.Default
		}
	}
	return result
}

// EnvMapping returns environment variable names mapped to setting paths.
func (r *Registry) EnvMapping() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string)
	for path, s := range r.settings {
		if s.Env != "" {
			result[s.Env] = path
		}
	}
	return result
}

// Coerce converts value for the setting at path.
func (r *Registry) Coerce(path string, value any) (any, error) {
	s := r.Get(path)
	if s == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	v, err := s.Coerce(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, path, err)
	}
	return v, nil
}

// Validate checks if a value is valid for a setting.
func (r *Registry) Validate(path string, value any) error {
	_, err := r.Coerce(path, value)
	return err
}

// Section returns the top-level section of a path.
func Section(path string) string {
	section, _, _ := strings.Cut(path, ".")
	return section
}

// RegisterDefaults registers all built-in settings.
func (r *Registry) RegisterDefaults() {
	r.MustRegister(Setting{
		Path:        MaxLineSearch,
		Type:        TypeInt,
		Default:     2,
		Description: "Extra lines searched above or below the cursor line for up and down",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(50),
		Env:         "VOICENAV_MAX_LINE_SEARCH",
	})

	r.MustRegister(Setting{
		Path:        ActionDelay,
		Type:        TypeDuration,
		Default:     200 * time.Millisecond,
		Description: "Pause before the first mutation when the editor cannot report readiness",
		Minimum:     MinValue(0),
		Maximum:     MaxValue(5000),
		Env:         "VOICENAV_ACTION_DELAY",
	})

	r.MustRegister(Setting{
		Path:        LogLevel,
		Type:        TypeEnum,
		Default:     "info",
		Description: "Logging verbosity level",
		Enum:        []string{"debug", "info", "warn", "error"},
		Env:         "VOICENAV_LOG_LEVEL",
	})

	r.MustRegister(Setting{
		Path:        HomophoneFiles,
		Type:        TypeStringList,
		Default:     []string{},
		Description: "Homophone files (.csv, .yaml) used for word and text targets",
		Env:         "VOICENAV_HOMOPHONES",
	})

	r.MustRegister(Setting{
		Path:        SystemClipboard,
		Type:        TypeBool,
		Default:     false,
		Description: "Use the system clipboard for cut and copy",
		Env:         "VOICENAV_SYSTEM_CLIPBOARD",
	})
}
