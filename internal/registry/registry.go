// Package registry holds the immutable set of monitored boundary zones.
// A registry is built once from configuration and never mutated; reload
// swaps the whole registry through a Handle so in-flight detector passes
// keep a consistent snapshot.
package registry

import (
	"sync"
	"time"

	"github.com/vessel-monitor/internal/domain"
)

type Registry struct {
	zones  []*domain.BoundaryZone
	byID   map[string]*domain.BoundaryZone
	loc    *time.Location
	loaded time.Time
}

// Load validates every zone config and builds a registry. Any invalid
// zone rejects the whole load.
func Load(configs []ZoneConfig, loc *time.Location) (*Registry, error) {
	if loc == nil {
		loc = time.UTC
	}

	zones := make([]*domain.BoundaryZone, 0, len(configs))
	byID := make(map[string]*domain.BoundaryZone, len(configs))
	for _, c := range configs {
		zone, err := c.toZone()
		if err != nil {
			return nil, err
		}
		if _, dup := byID[zone.ID]; dup {
			return nil, &DuplicateZoneError{ID: zone.ID}
		}
		zones = append(zones, zone)
		byID[zone.ID] = zone
	}

	return &Registry{
		zones:  zones,
		byID:   byID,
		loc:    loc,
		loaded: time.Now(),
	}, nil
}

type DuplicateZoneError struct {
	ID string
}

func (e *DuplicateZoneError) Error() string {
	return "duplicate zone id: " + e.ID
}

// AllZones returns the read-only zone snapshot. Callers must not modify
// the returned slice or the zones it points to.
func (r *Registry) AllZones() []*domain.BoundaryZone {
	return r.zones
}

// Zone returns a zone by ID.
func (r *Registry) Zone(id string) (*domain.BoundaryZone, bool) {
	z, ok := r.byID[id]
	return z, ok
}

// Len returns the number of zones.
func (r *Registry) Len() int {
	return len(r.zones)
}

// LoadedAt returns when this snapshot was built.
func (r *Registry) LoadedAt() time.Time {
	return r.loaded
}

// IsFishingAllowedNow reports whether fishing is permitted in the zone at
// the given instant. Seasonal windows are evaluated against the zone
// set's local calendar, by date only.
func (r *Registry) IsFishingAllowedNow(zone *domain.BoundaryZone, now time.Time) bool {
	if !zone.FishingAllowed {
		return false
	}
	local := now.In(r.loc)
	for _, w := range zone.SeasonalWindows {
		if w.In(local) {
			return false
		}
	}
	return true
}

// Handle is a swappable reference to the current registry. Reads are
// lock-cheap; Swap installs a fully built replacement.
type Handle struct {
	mu  sync.RWMutex
	reg *Registry
}

func NewHandle(reg *Registry) *Handle {
	return &Handle{reg: reg}
}

// Current returns the active registry snapshot.
func (h *Handle) Current() *Registry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.reg
}

// Swap atomically replaces the active registry.
func (h *Handle) Swap(reg *Registry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reg = reg
}
