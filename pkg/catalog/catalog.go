// Package catalog holds the in-memory collection snapshots a search session
// operates on. A Catalog is created when the session starts, loaded once, and
// discarded on teardown; snapshots are never refreshed in place. Matching
// always works on whatever is loaded at query time, so partial availability
// (some sources still in flight, some failed) is the normal state, not an
// error.
package catalog

import (
	"sync"

	"github.com/rihla/rihla/pkg/core"
)

// Catalog owns one immutable snapshot per collection kind. Install replaces
// a snapshot wholesale; readers get the slice that was current when they
// asked and can iterate it without holding the lock.
type Catalog struct {
	mu        sync.RWMutex
	snapshots map[core.Kind][]core.Entity
	hub       *UpdateHub
}

func New() *Catalog {
	return &Catalog{
		snapshots: make(map[core.Kind][]core.Entity),
		hub:       NewUpdateHub(0),
	}
}

// Install replaces the snapshot for a kind and notifies subscribers. The
// derived-collection builder calls this a second time for cities once the
// authoritative per-country listings arrive, which is how the searchable set
// grows incrementally without blocking the first queries.
func (c *Catalog) Install(kind core.Kind, entities []core.Entity) {
	c.mu.Lock()
	c.snapshots[kind] = entities
	c.mu.Unlock()

	c.hub.Broadcast(Update{Kind: kind, Count: len(entities)})
}

// Snapshot returns the current snapshot for a kind. A kind that never loaded
// (failed, skipped, or still pending) yields an empty slice, which simply
// contributes zero candidates downstream.
func (c *Catalog) Snapshot(kind core.Kind) []core.Entity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[kind]
}

// Counts reports the snapshot sizes per kind, for the inventory endpoint and
// CLI diagnostics.
func (c *Catalog) Counts() map[core.Kind]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[core.Kind]int, len(c.snapshots))
	for kind, entities := range c.snapshots {
		counts[kind] = len(entities)
	}
	return counts
}

// Subscribe registers for snapshot-install notifications. Callers must
// Unsubscribe with the returned id.
func (c *Catalog) Subscribe() (uint64, <-chan Update) {
	return c.hub.Register()
}

func (c *Catalog) Unsubscribe(id uint64) {
	c.hub.Unregister(id)
}
