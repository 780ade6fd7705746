package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rihla/rihla/pkg/match"
	"github.com/rihla/rihla/pkg/search"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The search API is public and CORS-open; the socket follows suit.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleLiveSearch upgrades to a WebSocket and runs one search session per
// connection. The client streams raw input values ({"q": "..."}); the server
// applies the session's debounce strategy and pushes a results frame after
// every completed matching pass. The session also subscribes to catalog
// updates, so results refresh when the derived city listings arrive after
// the socket opened.
//
// ?scope=backoffice selects the internal session (immediate, concatenated,
// uncapped); anything else gets the public one (debounced, ranked, capped).
func (s *Server) HandleLiveSearch(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("live search upgrade failed: %v", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	var cfg search.Config
	if r.URL.Query().Get("scope") == "backoffice" {
		cfg = search.InternalConfig()
	} else {
		cfg = search.PublicConfig(s.cfg.Debounce.Duration, s.cfg.ResultCap)
	}

	cat := s.Catalog()
	session := search.NewSession(cat, cfg)
	defer session.Close()

	sessionID := uuid.New().String()

	// Frames are pushed from the debounce timer and the catalog update
	// goroutine; gorilla connections allow one concurrent writer.
	var writeMu sync.Mutex
	send := func(frame LiveFrame) bool {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(frame) == nil
	}

	session.OnResults(func(query string, state search.State, results []match.Result) {
		send(LiveFrame{
			Type:    "results",
			Session: sessionID,
			Query:   query,
			State:   string(state),
			Count:   len(results),
			Results: toResultResponses(results),
		})
	})

	if !send(LiveFrame{Type: "hello", Session: sessionID, State: string(session.State())}) {
		return
	}

	// Re-run the committed query whenever a snapshot installs.
	subID, updates := cat.Subscribe()
	defer cat.Unsubscribe(subID)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var input liveInput
			if err := conn.ReadJSON(&input); err != nil {
				return
			}
			session.SetQuery(input.Q)
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case _, ok := <-updates:
			if !ok {
				return
			}
			session.Refresh()
		}
	}
}
