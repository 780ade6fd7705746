package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/log"
)

// Server exposes the search engine over HTTP: one-shot public and
// back-office search, the source inventory, and the WebSocket live search.
type Server struct {
	registry *core.Registry
	cfg      *config.Config
	logger   *log.Logger

	mu      sync.RWMutex
	catalog *catalog.Catalog
}

func NewServer(registry *core.Registry, c *catalog.Catalog, cfg *config.Config) *Server {
	return &Server{
		registry: registry,
		catalog:  c,
		cfg:      cfg,
		logger:   log.ForSource("api"),
	}
}

// Catalog returns the snapshot repository requests should operate on.
// One-shot handlers read it per request; live sessions capture it once at
// connection start and keep it for their lifetime.
func (s *Server) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// SwapCatalog installs a freshly loaded catalog, e.g. after a config reload.
// Existing live sessions keep their old snapshots until they reconnect.
func (s *Server) SwapCatalog(c *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Errorf("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, errName, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Error:   errName,
		Message: message,
	})
}

// CorsMiddleware allows the marketing site and the back office to call the
// API from the browser.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
