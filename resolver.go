package quarterly

import (
	"sync"
	"time"
)

// Resolver maps IANA zone names (e.g. "America/New_York") to
// *time.Location, caching lookups against the platform zone database.
//
// A Resolver is an explicit zone-resolution handle: callers inject one
// instead of reaching for an ambient global. An empty or unknown name
// fails with ErrCodeInvalidZone; there is no silent UTC fallback.
//
// Thread-safety: all methods are safe for concurrent use. The cache is
// read-mostly and guarded by an RWMutex.
type Resolver struct {
	mu    sync.RWMutex
	zones map[string]*time.Location
}

// NewResolver creates an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{zones: make(map[string]*time.Location)}
}

// Resolve returns the location for the given IANA zone name, loading it
// from the platform zone database on first use and caching it after.
func (r *Resolver) Resolve(name string) (*time.Location, error) {
	if name == "" {
		// time.LoadLocation("") means UTC; an empty reference must
		// fail rather than default silently.
		return nil, newUnknownZoneError(name, nil)
	}

	r.mu.RLock()
	loc, ok := r.zones[name]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, newUnknownZoneError(name, err)
	}

	r.mu.Lock()
	r.zones[name] = loc
	r.mu.Unlock()
	return loc, nil
}
