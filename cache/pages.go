package cache

import (
	"sync"
	"time"
)

type pageEntry struct {
	html    string
	expires time.Time
}

// PageCache keeps successful HTML renders keyed by request path so a
// repeat read skips the whole render. Entries expire after the TTL
// even when no mutation purged them.
type PageCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]pageEntry
}

func NewPageCache(ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PageCache{ttl: ttl, entries: make(map[string]pageEntry)}
}

func (p *PageCache) Get(path string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[path]
	if !ok || time.Now().After(e.expires) {
		return "", false
	}
	return e.html, true
}

func (p *PageCache) Set(path, html string) {
	p.mu.Lock()
	p.entries[path] = pageEntry{html: html, expires: time.Now().Add(p.ttl)}
	p.mu.Unlock()
}

// PurgePaths drops rendered routes. Unknown paths are a no-op.
func (p *PageCache) PurgePaths(paths ...string) {
	p.mu.Lock()
	for _, path := range paths {
		delete(p.entries, path)
	}
	p.mu.Unlock()
}

func (p *PageCache) PurgeAll() {
	p.mu.Lock()
	p.entries = make(map[string]pageEntry)
	p.mu.Unlock()
}

func (p *PageCache) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}
