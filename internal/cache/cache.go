// Package cache memoizes classification results so repeat lookups on the
// same URL or domain skip pattern evaluation entirely.
package cache

import (
	"sync"

	"github.com/joshsymonds/tab-corral/internal/model"
)

// ResultCache is a two-tier memo: a URL tier for repeat lookups on identical
// URLs, and a domain tier for auto-pattern results, consulted when bulk
// operations visit many tabs sharing a domain. Negative results are stored
// as real entries, so repeated misses short-circuit the same way hits do.
//
// Both tiers are unbounded with no eviction; the pattern set is small and
// changes rarely, and every change clears the whole cache. This is the only
// mutable state shared across callers, hence the lock.
type ResultCache struct {
	byURL    map[string]model.Classification
	byDomain map[string]model.Classification
	mu       sync.RWMutex
}

// New creates an empty cache.
func New() *ResultCache {
	return &ResultCache{
		byURL:    make(map[string]model.Classification),
		byDomain: make(map[string]model.Classification),
	}
}

// LookupURL returns the cached result for a full URL. The second return
// distinguishes "cached NoMatch" from "never seen".
func (c *ResultCache) LookupURL(url string) (model.Classification, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.byURL[url]
	return result, ok
}

// LookupDomain returns the cached auto-pattern result for a domain.
func (c *ResultCache) LookupDomain(domain string) (model.Classification, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.byDomain[domain]
	return result, ok
}

// Store writes a result into the URL tier, and into the domain tier when the
// result came from an auto-pattern.
func (c *ResultCache) Store(url, domain string, result model.Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byURL[url] = result
	if result.Source == model.SourceAuto {
		c.byDomain[domain] = result
	}
}

// InvalidateAll clears both tiers. Callers must invoke this synchronously on
// any pattern configuration change, before the next classification, so stale
// results are never served.
func (c *ResultCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byURL = make(map[string]model.Classification)
	c.byDomain = make(map[string]model.Classification)
}

// Len returns the entry counts of the URL and domain tiers.
func (c *ResultCache) Len() (urls, domains int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byURL), len(c.byDomain)
}
