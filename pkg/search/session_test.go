package search

import (
	"testing"
	"time"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/match"
)

func TestSessionStartsIdle(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	if s.State() != StateIdle {
		t.Fatalf("got state %q, want %q", s.State(), StateIdle)
	}
}

func TestSessionBlankInputResetsToIdle(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	s.SetQuery("cairo")
	if s.State() != StateReady {
		t.Fatalf("got state %q, want %q", s.State(), StateReady)
	}

	s.SetQuery("   ")
	if s.State() != StateIdle {
		t.Fatalf("got state %q after blank input, want %q", s.State(), StateIdle)
	}
	if len(s.Results()) != 0 {
		t.Error("blank input must clear results")
	}
	if s.Committed() != "" {
		t.Error("blank input must clear the committed query")
	}
}

func TestSessionImmediateSearch(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	s.SetQuery("cairo")

	if s.Committed() != "cairo" {
		t.Fatalf("got committed %q, want %q", s.Committed(), "cairo")
	}
	if s.State() != StateReady {
		t.Fatalf("got state %q, want %q", s.State(), StateReady)
	}
	if len(s.Results()) == 0 {
		t.Fatal("expected internal matches for cairo")
	}
}

func TestSessionNoMatches(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	s.SetQuery("zzzz")

	if s.State() != StateNoMatches {
		t.Fatalf("got state %q, want %q", s.State(), StateNoMatches)
	}
	if len(s.Results()) != 0 {
		t.Error("no-matches state must carry zero results")
	}
}

func TestSessionDebouncedCommit(t *testing.T) {
	cfg := Config{
		Kinds:    core.PublicKinds(),
		Strategy: NewFixedWindow(20 * time.Millisecond),
		Ranked:   true,
		Cap:      20,
	}
	s := NewSession(testCatalog(), cfg)
	defer s.Close()

	s.SetQuery("c")
	s.SetQuery("ca")
	s.SetQuery("cairo")

	if s.State() != StateDebouncing {
		t.Fatalf("got state %q while typing, want %q", s.State(), StateDebouncing)
	}

	waitForState(t, s, StateReady)

	if s.Committed() != "cairo" {
		t.Fatalf("got committed %q, want %q (only the final value commits)", s.Committed(), "cairo")
	}
}

func TestSessionPublicResultsRankedAndCapped(t *testing.T) {
	cfg := Config{
		Kinds:    core.PublicKinds(),
		Strategy: Immediate{},
		Ranked:   true,
		Cap:      2,
	}
	s := NewSession(testCatalog(), cfg)
	defer s.Close()

	s.SetQuery("cairo")

	results := s.Results()
	if len(results) != 2 {
		t.Fatalf("got %d results, want the cap of 2", len(results))
	}
	// The city outranks hotels and tours matched on non-name fields.
	if results[0].Kind != core.KindCity {
		t.Errorf("got %q first, want the city", results[0].Kind)
	}
}

func TestSessionSelectResetsAndHandsOff(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	s.SetQuery("cairo")
	results := s.Results()
	if len(results) == 0 {
		t.Fatal("expected matches")
	}

	sel := s.Select(results[0])
	if sel.Kind != results[0].Kind {
		t.Errorf("got selection kind %q, want %q", sel.Kind, results[0].Kind)
	}
	if sel.Ref != results[0].Entity.Ref() {
		t.Errorf("got selection ref %q, want %q", sel.Ref, results[0].Entity.Ref())
	}
	if s.State() != StateIdle {
		t.Errorf("got state %q after select, want %q", s.State(), StateIdle)
	}
	if len(s.Results()) != 0 {
		t.Error("select must clear results")
	}
}

func TestSessionRefreshPicksUpNewSnapshots(t *testing.T) {
	c := testCatalog()
	s := NewSession(c, InternalConfig())
	defer s.Close()

	s.SetQuery("freight")
	if s.State() != StateNoMatches {
		t.Fatalf("got state %q, want %q", s.State(), StateNoMatches)
	}

	c.Install(core.KindDirectClient, []core.Entity{
		&core.DirectClient{ID: "direct-client-Cairo Freight", Name: "Cairo Freight"},
	})
	s.Refresh()

	if s.State() != StateReady {
		t.Fatalf("got state %q after refresh, want %q", s.State(), StateReady)
	}
}

func TestSessionOnResultsCallback(t *testing.T) {
	s := NewSession(testCatalog(), InternalConfig())
	defer s.Close()

	var gotQuery string
	var gotState State
	calls := 0
	s.OnResults(func(query string, state State, results []match.Result) {
		gotQuery = query
		gotState = state
		calls++
	})

	s.SetQuery("cairo")

	if calls != 1 {
		t.Fatalf("got %d callback invocations, want 1", calls)
	}
	if gotQuery != "cairo" {
		t.Errorf("callback got query %q, want %q", gotQuery, "cairo")
	}
	if gotState != StateReady {
		t.Errorf("callback got state %q, want %q", gotState, StateReady)
	}
}

func waitForState(t *testing.T, s *Session, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.State() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for state %q, still %q", want, s.State())
}
