package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
)

func testServer() *Server {
	cat := catalog.New()
	cat.Install(core.KindHotel, []core.Entity{
		&core.Hotel{ID: "h1", Name: "Nile Grand", Slug: "nile-grand", City: "Cairo", Country: "Egypt"},
	})
	cat.Install(core.KindCity, []core.Entity{
		&core.City{Name: "Cairo", Country: "Egypt"},
	})
	cat.Install(core.KindOffice, []core.Entity{
		&core.Office{ID: "o1", Name: "Cairo Branch"},
	})
	cat.Install(core.KindVoucher, []core.Entity{
		&core.Voucher{ID: "v1", Number: "4521"},
	})

	return NewServer(core.GlobalRegistry(), cat, config.GetDefaultConfig())
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandleSearchRanksDestinationsFirst(t *testing.T) {
	w := doRequest(t, testServer(), "/api/search?q=cairo")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("got %d results, want the hotel and the city", resp.Count)
	}
	if resp.Results[0].Kind != "city" {
		t.Errorf("got %q first, want the city", resp.Results[0].Kind)
	}
	if resp.Results[0].MatchedField != "name" {
		t.Errorf("got matched_field %q, want name", resp.Results[0].MatchedField)
	}
}

func TestHandleSearchRequiresQuery(t *testing.T) {
	for _, path := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		w := doRequest(t, testServer(), path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: got status %d, want 400", path, w.Code)
		}
	}
}

func TestHandleSearchExcludesInternalKinds(t *testing.T) {
	w := doRequest(t, testServer(), "/api/search?q=4521")

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	for _, r := range resp.Results {
		if r.Kind == "voucher" || r.Kind == "office" {
			t.Errorf("internal kind %q leaked into public search", r.Kind)
		}
	}
}

func TestHandleBackofficeSearch(t *testing.T) {
	w := doRequest(t, testServer(), "/api/backoffice/search?q=cairo")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].Kind != "office" {
		t.Fatalf("got %+v, want only the office", resp.Results)
	}
}

func TestHandleBackofficeVoucherNumber(t *testing.T) {
	w := doRequest(t, testServer(), "/api/backoffice/search?q=452")

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].Kind != "voucher" {
		t.Fatalf("got %+v, want the voucher by number substring", resp.Results)
	}
}

func TestHandleListKinds(t *testing.T) {
	w := doRequest(t, testServer(), "/api/kinds")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var resp ListKindsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	counts := make(map[string]int)
	for _, info := range resp.Kinds {
		counts[info.Kind] = info.Count
	}
	if counts["hotel"] != 1 || counts["city"] != 1 {
		t.Errorf("got counts %v", counts)
	}
}

func TestHandleHealth(t *testing.T) {
	w := doRequest(t, testServer(), "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" || resp.Version == "" {
		t.Errorf("got %+v", resp)
	}
}

func TestCorsMiddleware(t *testing.T) {
	s := testServer()
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	handler := CorsMiddleware(mux)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("got Access-Control-Allow-Origin %q, want *", got)
	}

	opts := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, opts)
	if w.Code != http.StatusOK {
		t.Errorf("got status %d for preflight, want 200", w.Code)
	}
}

func TestSwapCatalog(t *testing.T) {
	s := testServer()

	fresh := catalog.New()
	fresh.Install(core.KindCountry, []core.Entity{
		&core.Country{Name: "Jordan"},
	})
	s.SwapCatalog(fresh)

	w := doRequest(t, s, "/api/search?q=jordan")
	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].Kind != "country" {
		t.Fatalf("got %+v, want the country from the swapped catalog", resp.Results)
	}
}
