package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/match"
	"github.com/rihla/rihla/pkg/rank"
	"github.com/rihla/rihla/pkg/search"
	"github.com/rihla/rihla/pkg/version"
)

// HandleSearch is the one-shot public search: ranked and capped. The
// debounce strategy belongs to interactive sessions; a plain GET is already
// a committed query.
func (s *Server) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if match.Blank(query) {
		s.writeError(w, http.StatusBadRequest, "Missing query parameter", "Query parameter 'q' is required")
		return
	}

	results := search.Aggregate(s.Catalog(), core.PublicKinds(), query)
	results = rank.Cap(rank.Rank(results, query), s.cfg.ResultCap)

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: toResultResponses(results),
	})
}

// HandleBackofficeSearch searches the internal collections: no ranking, no
// cap, concatenated in fixed collection priority (offices, direct clients,
// vouchers, users).
func (s *Server) HandleBackofficeSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if match.Blank(query) {
		s.writeError(w, http.StatusBadRequest, "Missing query parameter", "Query parameter 'q' is required")
		return
	}

	results := search.Aggregate(s.Catalog(), core.InternalKinds(), query)

	s.writeJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: toResultResponses(results),
	})
}

// HandleListKinds reports the loaded snapshot sizes per collection kind.
func (s *Server) HandleListKinds(w http.ResponseWriter, r *http.Request) {
	counts := s.Catalog().Counts()

	infos := make([]KindInfo, 0, len(counts))
	for kind, count := range counts {
		infos = append(infos, KindInfo{Kind: kind.String(), Count: count})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Kind < infos[j].Kind
	})

	s.writeJSON(w, http.StatusOK, ListKindsResponse{
		Kinds: infos,
		Count: len(infos),
	})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   version.String(),
	})
}
