package api

import (
	"net/http"
)

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/search", s.HandleSearch)
	mux.HandleFunc("GET /api/backoffice/search", s.HandleBackofficeSearch)
	mux.HandleFunc("GET /api/kinds", s.HandleListKinds)
	mux.HandleFunc("GET /api/search/live", s.HandleLiveSearch)
	mux.HandleFunc("GET /health", s.HandleHealth)
}
