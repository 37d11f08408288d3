package homophones

import (
	"slices"
	"strings"
	"sync"
)

// Store maps each word to the group it belongs to. Lookups are
// case-insensitive. Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	groups map[string][]string
}

// New creates a store holding the given groups.
func New(groups ...[]string) *Store {
	s := &Store{groups: make(map[string][]string)}
	for _, g := range groups {
		s.Add(g...)
	}
	return s
}

// Add registers words as one group. Groups sharing a word are merged.
// Blank words are ignored and a group needs at least two distinct words.
func (s *Store) Add(words ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var group []string
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		group = appendUnique(group, w)
		for _, other := range s.groups[key(w)] {
			group = appendUnique(group, other)
		}
	}
	if len(group) < 2 {
		return
	}

	for _, w := range group {
		s.groups[key(w)] = group
	}
}

// Lookup returns the group containing word, or nil. The returned slice is
// a copy.
func (s *Store) Lookup(word string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[key(strings.TrimSpace(word))]
	if !ok {
		return nil
	}
	return slices.Clone(g)
}

// Len returns the number of words with homophones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}

func key(w string) string {
	return strings.ToLower(w)
}

func appendUnique(group []string, w string) []string {
	for _, g := range group {
		if strings.EqualFold(g, w) {
			return group
		}
	}
	return append(group, w)
}
