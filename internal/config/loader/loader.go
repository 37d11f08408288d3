// Package loader reads voicenav settings files and environment overrides.
//
// Files are TOML or YAML, chosen by extension. Every loader returns a
// nested map; Flatten turns it into dot-separated setting paths.
package loader

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// ReaderLoader is the interface for loaders that read from io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// ForPath returns the file loader matching path's extension.
func ForPath(path string) (Loader, error) {
	return ForPathWithFS(DefaultFS(), path)
}

// ForPathWithFS is like ForPath with a custom file system.
func ForPathWithFS(fsys FileSystem, path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return NewTOMLLoaderWithFS(fsys, path), nil
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fsys, path), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// readFile reads path, mapping a missing file to nil data.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// Flatten converts nested tables into dot-separated paths.
// Non-map values, including lists, are leaves.
func Flatten(data map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", data)
	return out
}

func flattenInto(out map[string]any, prefix string, data map[string]any) {
	for key, val := range data {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if m, ok := val.(map[string]any); ok {
			flattenInto(out, path, m)
			continue
		}
		out[path] = val
	}
}

// Paths returns the sorted keys of a flattened map.
func Paths(flat map[string]any) []string {
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
