// Package cache provides the memoizing, tag-addressable cache behind
// the content store plus the rendered-page cache and the invalidation
// fan-out that keeps both consistent after admin writes.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/hasancaglar07/tarfcomtr-sub001/metrics"
)

// DefaultTTL bounds staleness when explicit invalidation misses.
const DefaultTTL = time.Hour

type entry struct {
	value   interface{}
	expires time.Time
	tags    []string
}

// Store memoizes query results under stable keys. Every entry is
// registered under one or more tags so a mutation can purge exactly
// the entries that could contain the old value.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*entry
	tagged  map[string]map[string]struct{}
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
		tagged:  make(map[string]map[string]struct{}),
	}
}

// Key builds a stable cache key from an operation name and its
// arguments, so lookups for different slugs occupy distinct entries.
func Key(op string, args ...string) string {
	h := xxhash.New()
	h.WriteString(op)
	for _, a := range args {
		h.WriteString("\x00")
		h.WriteString(a)
	}
	return fmt.Sprintf("%s:%016x", op, h.Sum64())
}

func (s *Store) get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

func (s *Store) set(key string, tags []string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.entries[key]; ok {
		s.dropFromTags(key, old.tags)
	}
	s.entries[key] = &entry{value: value, expires: time.Now().Add(s.ttl), tags: tags}
	for _, tag := range tags {
		keys, ok := s.tagged[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.tagged[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// GetOrLoad serves a fresh entry or runs the loader and memoizes the
// result under the given tags. Loader errors propagate and are never
// cached; an empty result is only stored when the query legitimately
// returned it.
func (s *Store) GetOrLoad(key string, tags []string, load func() (interface{}, error)) (interface{}, error) {
	if v, ok := s.get(key); ok {
		metrics.CacheHits.Inc()
		return v, nil
	}
	metrics.CacheMisses.Inc()

	// Concurrent misses may load redundantly; last write wins, which
	// is safe for read-only query results.
	v, err := load()
	if err != nil {
		return nil, err
	}
	s.set(key, tags, v)
	return v, nil
}

// PurgeTags drops every entry registered under any of the tags.
// Purging a tag with no live entries is a no-op, never an error.
func (s *Store) PurgeTags(tags ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tag := range tags {
		for key := range s.tagged[tag] {
			if e, ok := s.entries[key]; ok {
				s.dropFromTags(key, e.tags)
				delete(s.entries, key)
				metrics.CachePurges.Inc()
			}
		}
		delete(s.tagged, tag)
	}
}

func (s *Store) PurgeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
	s.tagged = make(map[string]map[string]struct{})
}

// Len reports live (possibly expired) entries; used by tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) dropFromTags(key string, tags []string) {
	for _, tag := range tags {
		if keys, ok := s.tagged[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(s.tagged, tag)
			}
		}
	}
}

// Cached is a typed convenience wrapper around Store.GetOrLoad.
func Cached[T any](s *Store, key string, tags []string, load func() (T, error)) (T, error) {
	v, err := s.GetOrLoad(key, tags, func() (interface{}, error) {
		return load()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
