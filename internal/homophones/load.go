package homophones

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadCSV adds one group per record of r. Records may have any number of
// fields; lines starting with '#' are comments.
func (s *Store) ReadCSV(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		s.Add(rec...)
	}
}

// ReadYAML adds the groups of a YAML list of string lists.
func (s *Store) ReadYAML(r io.Reader) error {
	var groups [][]string
	if err := yaml.NewDecoder(r).Decode(&groups); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	for _, g := range groups {
		s.Add(g...)
	}
	return nil
}

// LoadFile reads groups from path, choosing the reader by extension
// (.csv, .yaml or .yml).
func (s *Store) LoadFile(path string) error {
	var read func(io.Reader) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		read = s.ReadCSV
	case ".yaml", ".yml":
		read = s.ReadYAML
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open homophones: %w", err)
	}
	defer f.Close()

	if err := read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load creates a store from the given files.
func Load(paths ...string) (*Store, error) {
	s := New()
	for _, p := range paths {
		if err := s.LoadFile(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}
