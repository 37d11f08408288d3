package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/adrg/xdg"

	"github.com/dshills/voicenav/internal/config/loader"
	"github.com/dshills/voicenav/internal/config/notify"
	"github.com/dshills/voicenav/internal/config/registry"
	"github.com/dshills/voicenav/internal/config/watcher"
)

// Value sources, lowest priority first.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceSet     = "set"
)

// Config holds the effective voicenav settings.
//
// Values come from the registry defaults, the settings file, environment
// variables and Set, in increasing priority. Config is safe for concurrent
// use; readers never observe a half-applied reload.
type Config struct {
	mu sync.RWMutex

	registry *registry.Registry
	notifier *notify.Notifier
	watcher  *watcher.Watcher

	path      string
	fs        loader.FileSystem
	lookupEnv func(string) (string, bool)

	values    map[string]any
	sources   map[string]string
	overrides map[string]any

	enableWatcher bool
	enableEnv     bool
	closed        bool
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the settings file. An empty path disables file loading.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFS sets the file system used to read the settings file.
func WithFS(fs loader.FileSystem) Option {
	return func(c *Config) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithRegistry replaces the built-in settings registry.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithWatcher enables file watching for live reload.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// WithEnv enables environment variable overrides.
func WithEnv(enable bool) Option {
	return func(c *Config) {
		c.enableEnv = enable
	}
}

// WithEnvLookup replaces os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(c *Config) {
		if lookup != nil {
			c.lookupEnv = lookup
		}
	}
}

// DefaultPath returns the per-user settings file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "voicenav", "settings.toml")
}

// New creates a Config holding the registry defaults. Call Load to read
// the settings file and environment.
func New(opts ...Option) *Config {
	c := &Config{
		registry:      registry.NewWithDefaults(),
		notifier:      notify.New(),
		path:          DefaultPath(),
		fs:            loader.DefaultFS(),
		lookupEnv:     os.LookupEnv,
		overrides:     make(map[string]any),
		enableWatcher: false,
		enableEnv:     true,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.values = c.registry.Defaults()
	c.sources = make(map[string]string, len(c.values))
	for p := range c.values {
		c.sources[p] = SourceDefault
	}

	return c
}

// Load reads the settings file and environment and starts the watcher
// when enabled. A missing settings file is not an error.
func (c *Config) Load(_ context.Context) error {
	if err := c.Reload(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	start := c.enableWatcher && c.path != "" && c.watcher == nil
	c.mu.Unlock()

	if start {
		if err := c.startWatcher(); err != nil {
			logger.Warn("live reload disabled", "path", c.path, "err", err)
		}
	}
	return nil
}

// Reload reads all sources again. On error the previous values are kept.
func (c *Config) Reload() error {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return ErrClosed
	}
	overrides := make(map[string]any, len(c.overrides))
	for p, v := range c.overrides {
		overrides[p] = v
	}
	c.mu.RUnlock()

	values, sources, err := c.build(overrides)
	if err != nil {
		return err
	}

	c.mu.Lock()
	oldValues, oldSources := c.values, c.sources
	c.values, c.sources = values, sources
	c.mu.Unlock()

	c.notifyDiff(oldValues, oldSources, values, sources)
	c.notifier.NotifyReload(c.path)
	return nil
}

// build computes effective values from every source.
func (c *Config) build(overrides map[string]any) (map[string]any, map[string]string, error) {
	values := c.registry.Defaults()
	sources := make(map[string]string, len(values))
	for p := range values {
		sources[p] = SourceDefault
	}

	var errs []error
	apply := func(flat map[string]any, source string) {
		for _, p := range loader.Paths(flat) {
			v, err := c.registry.Coerce(p, flat[p])
			if errors.Is(err, registry.ErrUnknownSetting) {
				logger.Warn("ignoring unknown setting", "path", p, "source", source)
				continue
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", source, err))
				continue
			}
			values[p] = v
			sources[p] = source
		}
	}

	if c.path != "" {
		l, err := loader.ForPathWithFS(c.fs, c.path)
		if err != nil {
			return nil, nil, err
		}
		data, err := l.Load()
		if err != nil {
			return nil, nil, err
		}
		if data == nil {
			logger.Debug("no settings file", "path", c.path)
		}
		apply(loader.Flatten(data), SourceFile)
	}

	if c.enableEnv {
		data, err := loader.NewEnvLoader(c.registry.EnvMapping()).WithLookup(c.lookupEnv).Load()
		if err != nil {
			return nil, nil, err
		}
		apply(loader.Flatten(data), SourceEnv)
	}

	for p, v := range overrides {
		values[p] = v
		sources[p] = SourceSet
	}

	if err := errors.Join(errs...); err != nil {
		return nil, nil, err
	}
	return values, sources, nil
}

// notifyDiff reports every path whose effective value changed.
func (c *Config) notifyDiff(oldValues map[string]any, oldSources map[string]string, values map[string]any, sources map[string]string) {
	paths := make([]string, 0, len(values))
	for p := range values {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		oldV, newV := oldValues[p], values[p]
		if reflect.DeepEqual(oldV, newV) && oldSources[p] == sources[p] {
			continue
		}
		typ := notify.ChangeSet
		if sources[p] == SourceDefault {
			typ = notify.ChangeReset
		}
		logger.Debug("setting changed", "path", p, "value", newV, "source", sources[p])
		c.notifier.Notify(notify.Change{
			Path:     p,
			Type:     typ,
			OldValue: oldV,
			NewValue: newV,
			Source:   sources[p],
		})
	}
}

func (c *Config) startWatcher() error {
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		logger.Warn("settings watcher error", "err", err)
	}))
	if err != nil {
		return err
	}
	if err := w.Watch(c.path); err != nil {
		_ = w.Close()
		return err
	}
	w.OnChange(c.handleFileChange)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return w.Close()
	}
	c.watcher = w
	c.mu.Unlock()

	logger.Debug("watching settings", "path", c.path)
	return nil
}

func (c *Config) handleFileChange(event watcher.Event) {
	logger.Debug("settings file changed", "path", event.Path, "op", event.Op)
	if err := c.Reload(); err != nil {
		logger.Error("reload failed, keeping previous settings", "path", event.Path, "err", err)
	}
}

// Close stops the watcher and drops subscriptions.
func (c *Config) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	c.notifier.Close()
	if w != nil {
		return w.Close()
	}
	return nil
}

// Watching reports whether the settings file is watched for changes.
func (c *Config) Watching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

// Path returns the settings file path.
func (c *Config) Path() string {
	return c.path
}

// Registry returns the settings registry.
func (c *Config) Registry() *registry.Registry {
	return c.registry
}

// Get returns the effective value at path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[path]
	return v, ok
}

// Source returns where the effective value at path came from.
func (c *Config) Source(path string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sources[path]
}

// Int returns an integer setting.
func (c *Config) Int(path string) (int, bool) {
	v, ok := c.Get(path)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Duration returns a duration setting.
func (c *Config) Duration(path string) (time.Duration, bool) {
	v, ok := c.Get(path)
	if !ok {
		return 0, false
	}
	d, ok := v.(time.Duration)
	return d, ok
}

// StringValue returns a string or enum setting.
func (c *Config) StringValue(path string) (string, bool) {
	v, ok := c.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Bool returns a boolean setting.
func (c *Config) Bool(path string) (bool, bool) {
	v, ok := c.Get(path)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Strings returns a copy of a list setting.
func (c *Config) Strings(path string) ([]string, bool) {
	v, ok := c.Get(path)
	if !ok {
		return nil, false
	}
	list, ok := v.([]string)
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// Set overrides a setting for the life of the Config. It takes priority
// over the file and environment and survives reloads.
func (c *Config) Set(path string, value any) error {
	v, err := c.registry.Coerce(path, value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	old := c.values[path]
	c.overrides[path] = v
	c.values[path] = v
	c.sources[path] = SourceSet
	c.mu.Unlock()

	if !reflect.DeepEqual(old, v) {
		c.notifier.Notify(notify.Change{
			Path:     path,
			Type:     notify.ChangeSet,
			OldValue: old,
			NewValue: v,
			Source:   SourceSet,
		})
	}
	return nil
}

// Subscribe registers an observer for all configuration changes.
func (c *Config) Subscribe(observer notify.Observer) *notify.Subscription {
	return c.notifier.Subscribe(observer)
}

// SubscribePath registers an observer for changes at or below path.
func (c *Config) SubscribePath(path string, observer notify.Observer) *notify.Subscription {
	return c.notifier.SubscribePath(path, observer)
}

// Entry is one effective setting.
type Entry struct {
	Path        string
	Value       any
	Source      string
	Description string
}

// Entries returns every registered setting with its effective value,
// sorted by path.
func (c *Config) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := c.registry.All()
	entries := make([]Entry, 0, len(defs))
	for _, s := range defs {
		entries = append(entries, Entry{
			Path:        s.Path,
			Value:       c.values[s.Path],
			Source:      c.sources[s.Path],
			Description: s.Description,
		})
	}
	return entries
}
