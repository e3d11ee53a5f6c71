package library

import (
	"sync"
	"time"
)

// ViewCache avoids re-running the pipeline when nothing it depends on has
// changed. The key is (catalog, query, calendar day of now): a reloaded
// catalog is a new *Catalog and misses, and so does the first render after
// midnight, since relative labels move with the day.
type ViewCache struct {
	mu      sync.Mutex
	entries map[viewKey]ViewModel
	hits    int
	misses  int
}

type viewKey struct {
	catalog *Catalog
	query   Query
	day     string
}

// NewViewCache returns an empty cache ready for use.
func NewViewCache() *ViewCache {
	return &ViewCache{
		entries: make(map[viewKey]ViewModel),
	}
}

// Get returns the cached ViewModel for (c, q, now's day), assembling and
// storing it on a miss. The bool reports whether it was a hit.
func (vc *ViewCache) Get(c *Catalog, q Query, now time.Time) (ViewModel, bool) {
	key := viewKey{catalog: c, query: q.normalized(), day: now.Format(DateLayout)}

	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vm, ok := vc.entries[key]; ok {
		vc.hits++
		return vm, true
	}

	vc.misses++
	// Relative labels moved with the day; earlier days can never hit again.
	for k := range vc.entries {
		if k.day != key.day {
			delete(vc.entries, k)
		}
	}
	vm := Assemble(c.Sessions, q, now)
	vc.entries[key] = vm
	return vm, false
}

// Invalidate drops every cached entry. Called when a catalog is replaced so
// the old one can be collected.
func (vc *ViewCache) Invalidate() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.entries = make(map[viewKey]ViewModel)
}

// Counters returns the hit and miss totals since creation.
func (vc *ViewCache) Counters() (hits, misses int) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.hits, vc.misses
}
