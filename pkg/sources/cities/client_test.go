package cities

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestByCountryQueriesAndBackfills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("country"); got != "Turkey" {
			t.Errorf("got country param %q, want Turkey", got)
		}
		fmt.Fprint(w, `{"data":[
			{"name":"Istanbul","country":"Turkey","tour_count":12,"hotel_count":40},
			{"name":"Antalya","tour_count":3}
		]}`)
	}))
	defer srv.Close()

	rows, err := NewClient(srv.URL).ByCountry(context.Background(), "Turkey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d cities, want 2", len(rows))
	}
	if rows[0].TourCount != 12 || rows[0].HotelCount != 40 {
		t.Errorf("got counts %d/%d", rows[0].TourCount, rows[0].HotelCount)
	}
	if rows[1].Country != "Turkey" {
		t.Errorf("got country %q, want the omitted field backfilled", rows[1].Country)
	}
}

func TestByCountryEscapesCountryName(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("country")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).ByCountry(context.Background(), "United Arab Emirates"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "United Arab Emirates" {
		t.Errorf("got country %q after escaping round trip", gotQuery)
	}
}

func TestByCountryErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).ByCountry(context.Background(), "Turkey"); err == nil {
		t.Fatal("expected the transport failure to surface")
	}
}
