// Package search ties the engine together: a Session owns the raw and
// committed query, a debounce strategy, and the aggregate-then-rank pipeline
// over a catalog. Public and back-office sessions differ only in
// configuration: kind set, debounce strategy, ranking, and cap.
package search

import (
	"sync"
	"time"

	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/match"
	"github.com/rihla/rihla/pkg/rank"
)

// State is the UI-facing session state. Idle, Debouncing and Searching are
// mutually exclusive phases of query handling; NoMatches is the explicit
// empty state, distinct from "still loading" and "nothing typed yet".
type State string

const (
	StateIdle       State = "idle"
	StateDebouncing State = "debouncing"
	StateSearching  State = "searching"
	StateReady      State = "ready"
	StateNoMatches  State = "no_matches"
)

// Config selects a session flavor.
type Config struct {
	Kinds    []core.Kind
	Strategy Strategy

	// Ranked applies the relevance cascade; without it results stay in
	// aggregation (concatenation) order.
	Ranked bool

	// Cap truncates ranked output; <= 0 means uncapped.
	Cap int
}

// PublicConfig is the public search bar: debounced, ranked, capped.
func PublicConfig(window time.Duration, cap int) Config {
	if cap <= 0 {
		cap = rank.PublicCap
	}
	return Config{
		Kinds:    core.PublicKinds(),
		Strategy: NewFixedWindow(window),
		Ranked:   true,
		Cap:      cap,
	}
}

// InternalConfig is the back-office search bar: immediate, concatenated in
// fixed collection priority, uncapped. Its sources are small and pre-scoped
// to the tenant, so neither debouncing nor ranking buys anything.
func InternalConfig() Config {
	return Config{
		Kinds:    core.InternalKinds(),
		Strategy: Immediate{},
	}
}

// Session is one search bar instance. It owns its catalog reference and
// query state exclusively; sessions are never shared.
type Session struct {
	catalog *catalog.Catalog
	cfg     Config

	mu        sync.Mutex
	raw       string
	committed string
	state     State
	results   []match.Result
	onResults func(query string, state State, results []match.Result)
}

func NewSession(c *catalog.Catalog, cfg Config) *Session {
	return &Session{
		catalog: c,
		cfg:     cfg,
		state:   StateIdle,
	}
}

// OnResults registers a push callback invoked after every completed matching
// pass, for live transports. Must be set before the first SetQuery.
func (s *Session) OnResults(fn func(query string, state State, results []match.Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResults = fn
}

// SetQuery feeds a raw input value. Blank input resets to idle immediately,
// bypassing the strategy and all matching; anything else goes through the
// session's debounce strategy and commits when stable.
func (s *Session) SetQuery(raw string) {
	s.mu.Lock()
	s.raw = raw
	if match.Blank(raw) {
		s.committed = ""
		s.results = nil
		s.state = StateIdle
		s.mu.Unlock()
		s.cfg.Strategy.Stop()
		return
	}
	s.state = StateDebouncing
	s.mu.Unlock()

	s.cfg.Strategy.Input(raw, s.commit)
}

func (s *Session) commit(query string) {
	s.mu.Lock()
	if s.raw != query {
		// Superseded between timer fire and lock acquisition.
		s.mu.Unlock()
		return
	}
	s.committed = query
	s.state = StateSearching
	s.mu.Unlock()

	s.run(query)
}

// Refresh re-runs the committed query over the current snapshots. Live
// sessions call it when the catalog installs a new snapshot.
func (s *Session) Refresh() {
	s.mu.Lock()
	query := s.committed
	s.mu.Unlock()
	if query == "" {
		return
	}
	s.run(query)
}

func (s *Session) run(query string) {
	results := Aggregate(s.catalog, s.cfg.Kinds, query)
	if s.cfg.Ranked {
		results = rank.Cap(rank.Rank(results, query), s.cfg.Cap)
	}

	s.mu.Lock()
	if s.committed != query {
		s.mu.Unlock()
		return
	}
	s.results = results
	if len(results) == 0 {
		s.state = StateNoMatches
	} else {
		s.state = StateReady
	}
	notify := s.onResults
	state := s.state
	s.mu.Unlock()

	if notify != nil {
		notify(query, state, results)
	}
}

// State returns the current UI-facing state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Committed returns the debounced query actually used for matching.
func (s *Session) Committed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

// Results returns the current result list.
func (s *Session) Results() []match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Select hands off the picked result for navigation and resets the session.
// The engine performs no routing itself.
func (s *Session) Select(result match.Result) core.Selection {
	s.Dismiss()
	return core.Selection{Kind: result.Kind, Ref: result.Entity.Ref()}
}

// Dismiss clears the query and results, returning the session to idle.
func (s *Session) Dismiss() {
	s.cfg.Strategy.Stop()
	s.mu.Lock()
	s.raw = ""
	s.committed = ""
	s.results = nil
	s.state = StateIdle
	s.mu.Unlock()
}

// Close tears the session down; pending commits are cancelled.
func (s *Session) Close() {
	s.cfg.Strategy.Stop()
}
