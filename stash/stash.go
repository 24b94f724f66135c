// Package stash stores named values captured during a harness run so
// path expressions can reference dynamically bound values instead of
// literals.
package stash

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrKeyNotFound indicates a requested key has no stored value.
var ErrKeyNotFound = errors.New("stash: key not found")

// Stash is a key/value table consulted per path segment. It satisfies
// the evaluator's substitution interface. Not safe for concurrent
// mutation; callers serialize writes relative to evaluation.
type Stash struct {
	values  map[string]any
	secrets map[string]struct{}
}

// New returns an empty stash.
func New() *Stash {
	return &Stash{
		values:  make(map[string]any),
		secrets: make(map[string]struct{}),
	}
}

// FromMap returns a stash seeded with the given values.
func FromMap(values map[string]any) *Stash {
	s := New()
	for key, value := range values {
		s.values[key] = value
	}
	return s
}

// Set stores value under key, replacing any previous value. A key
// previously stored as a secret stays a secret.
func (s *Stash) Set(key string, value any) {
	s.values[key] = value
}

// SetSecret stores value under key and marks it for redaction in
// harness output.
func (s *Stash) SetSecret(key string, value any) {
	s.values[key] = value
	s.secrets[key] = struct{}{}
}

// Contains reports whether key has a stored value.
func (s *Stash) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Value returns the stored value for key, failing with ErrKeyNotFound
// when absent.
func (s *Stash) Value(key string) (any, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Delete removes key and its secret marker.
func (s *Stash) Delete(key string) {
	delete(s.values, key)
	delete(s.secrets, key)
}

// Len returns the number of stored values.
func (s *Stash) Len() int {
	return len(s.values)
}

// Secrets returns the values marked for redaction, ordered by key for
// deterministic output.
func (s *Stash) Secrets() []any {
	out := make([]any, 0, len(s.secrets))
	for _, key := range slices.Sorted(maps.Keys(s.secrets)) {
		if value, ok := s.values[key]; ok {
			out = append(out, value)
		}
	}
	return out
}

// Clear removes all values and secret markers.
func (s *Stash) Clear() {
	clear(s.values)
	clear(s.secrets)
}
