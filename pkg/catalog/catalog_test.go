package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/rihla/rihla/pkg/core"
)

func TestInstallAndSnapshot(t *testing.T) {
	c := New()

	c.Install(core.KindHotel, []core.Entity{
		&core.Hotel{ID: "h1", Name: "A"},
	})

	if got := len(c.Snapshot(core.KindHotel)); got != 1 {
		t.Fatalf("got %d entities, want 1", got)
	}
	if got := c.Snapshot(core.KindTour); got != nil {
		t.Fatalf("never-loaded kind must yield nil, got %v", got)
	}
}

func TestInstallReplacesWholesale(t *testing.T) {
	c := New()
	c.Install(core.KindHotel, []core.Entity{
		&core.Hotel{ID: "h1", Name: "A"},
		&core.Hotel{ID: "h2", Name: "B"},
	})

	old := c.Snapshot(core.KindHotel)
	c.Install(core.KindHotel, []core.Entity{
		&core.Hotel{ID: "h3", Name: "C"},
	})

	// Readers holding the old snapshot keep iterating it safely.
	if len(old) != 2 {
		t.Errorf("old snapshot changed under the reader: %d entities", len(old))
	}
	if got := len(c.Snapshot(core.KindHotel)); got != 1 {
		t.Errorf("got %d entities after replace, want 1", got)
	}
}

func TestCounts(t *testing.T) {
	c := New()
	c.Install(core.KindHotel, []core.Entity{&core.Hotel{ID: "h1"}})
	c.Install(core.KindCity, nil)

	counts := c.Counts()
	if counts[core.KindHotel] != 1 {
		t.Errorf("got %d hotels, want 1", counts[core.KindHotel])
	}
	if count, ok := counts[core.KindCity]; !ok || count != 0 {
		t.Errorf("failed collection must report an explicit zero, got %v/%v", count, ok)
	}
}

func TestSubscribeReceivesInstalls(t *testing.T) {
	c := New()
	id, updates := c.Subscribe()
	defer c.Unsubscribe(id)

	c.Install(core.KindCity, []core.Entity{
		&core.City{Name: "Cairo", Country: "Egypt"},
	})

	update := <-updates
	if update.Kind != core.KindCity || update.Count != 1 {
		t.Fatalf("got update %+v, want city/1", update)
	}
}

func TestUnsubscribeTwiceIsSafe(t *testing.T) {
	c := New()
	id, _ := c.Subscribe()
	c.Unsubscribe(id)
	c.Unsubscribe(id)

	if size := c.hub.Size(); size != 0 {
		t.Fatalf("got %d listeners, want 0", size)
	}
}

func TestBroadcastDropsForSlowListener(t *testing.T) {
	hub := NewUpdateHub(1)
	id, ch := hub.Register()
	defer hub.Unregister(id)

	hub.Broadcast(Update{Kind: core.KindHotel, Count: 1})
	hub.Broadcast(Update{Kind: core.KindTour, Count: 2}) // dropped, buffer full

	first := <-ch
	if first.Kind != core.KindHotel {
		t.Fatalf("got %+v, want the first update", first)
	}
	select {
	case extra := <-ch:
		t.Fatalf("expected the second update to be dropped, got %+v", extra)
	default:
	}
}

// stubSource is a canned source for loader tests.
type stubSource struct {
	kind     core.Kind
	name     string
	entities []core.Entity
	err      error
}

func (s *stubSource) Kind() core.Kind                                   { return s.kind }
func (s *stubSource) Name() string                                      { return s.name }
func (s *stubSource) Fetch(ctx context.Context) ([]core.Entity, error)  { return s.entities, s.err }
func (s *stubSource) Enabled(core.SourceSettings) bool                  { return true }
func (s *stubSource) Factory(core.SourceSettings) (core.Source, error)  { return s, nil }
func (s *stubSource) Close() error                                      { return nil }

func TestLoadInstallsAllSources(t *testing.T) {
	c := New()
	sources := []core.Source{
		&stubSource{kind: core.KindHotel, name: "hotels", entities: []core.Entity{&core.Hotel{ID: "h1"}}},
		&stubSource{kind: core.KindTour, name: "tours", entities: []core.Entity{&core.Tour{ID: "t1"}, &core.Tour{ID: "t2"}}},
	}

	Load(context.Background(), c, sources)

	if got := len(c.Snapshot(core.KindHotel)); got != 1 {
		t.Errorf("got %d hotels, want 1", got)
	}
	if got := len(c.Snapshot(core.KindTour)); got != 2 {
		t.Errorf("got %d tours, want 2", got)
	}
}

func TestLoadFailureLeavesEmptyCollection(t *testing.T) {
	c := New()
	sources := []core.Source{
		&stubSource{kind: core.KindHotel, name: "hotels", err: errors.New("endpoint down")},
		&stubSource{kind: core.KindTour, name: "tours", entities: []core.Entity{&core.Tour{ID: "t1"}}},
	}

	Load(context.Background(), c, sources)

	// The failed collection is present but empty; the healthy one loaded.
	if got := len(c.Snapshot(core.KindHotel)); got != 0 {
		t.Errorf("got %d hotels from a failed source, want 0", got)
	}
	if got := len(c.Snapshot(core.KindTour)); got != 1 {
		t.Errorf("got %d tours, want 1", got)
	}
	if _, ok := c.Counts()[core.KindHotel]; !ok {
		t.Error("failed collection must still appear in counts")
	}
}
