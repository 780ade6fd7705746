package derive

import (
	"context"
	"strings"
	"sync"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Lookup fetches the authoritative city listing for one country.
type Lookup func(ctx context.Context, country string) ([]core.City, error)

// cityKey dedupes on the (name, country) pair, case-insensitively.
func cityKey(name, country string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(strings.TrimSpace(country))
}

// SeedCities scans the primary collections for (city, country) pairs and
// dedupes on that key. Hotels and tours contribute when both fields are set;
// packages contribute each listed city paired with their first country. The
// first occurrence of a key wins for image selection.
func SeedCities(hotels []core.Hotel, tours []core.Tour, packages []core.Package) []core.City {
	seen := make(map[string]bool)
	var cities []core.City

	add := func(name, country string) {
		name = strings.TrimSpace(name)
		country = strings.TrimSpace(country)
		if name == "" || country == "" {
			return
		}
		key := cityKey(name, country)
		if seen[key] {
			return
		}
		seen[key] = true
		cities = append(cities, core.City{
			Name:    name,
			Country: country,
			Image:   imageFor(name, country),
		})
	}

	for _, hotel := range hotels {
		add(hotel.City, hotel.Country)
	}
	for _, tour := range tours {
		add(tour.City, tour.Country)
	}
	for _, pkg := range packages {
		if len(pkg.Countries) == 0 {
			continue
		}
		for _, city := range pkg.Cities {
			add(city, pkg.Countries[0])
		}
	}
	return cities
}

// lookupConcurrency bounds the parallel per-country city lookups.
const lookupConcurrency = 4

// FetchAuthoritative queries the per-country cities endpoint for every static
// destination, concurrently. Countries whose lookup fails contribute nothing;
// the seeds already cover them.
func FetchAuthoritative(ctx context.Context, lookup Lookup) []core.City {
	l := log.ForSource("cities")

	var mu sync.Mutex
	var fetched []core.City

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for _, country := range DestinationNames() {
		g.Go(func() error {
			rows, err := lookup(ctx, country)
			if err != nil {
				l.Warnf("city lookup for %s failed: %v", country, err)
				return nil
			}
			mu.Lock()
			fetched = append(fetched, rows...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return fetched
}

// MergeAuthoritative overlays API-sourced cities onto the seeded set. Rows
// sharing a (name, country) key replace the seed in place, picking up tour
// and hotel counts while keeping the seed's position for ordering stability;
// a replaced row without an image keeps the seed's. New keys append in fetch
// order.
func MergeAuthoritative(seeds, fetched []core.City) []core.City {
	merged := make([]core.City, len(seeds))
	copy(merged, seeds)

	index := make(map[string]int, len(merged))
	for i, city := range merged {
		index[cityKey(city.Name, city.Country)] = i
	}

	for _, city := range fetched {
		key := cityKey(city.Name, city.Country)
		if i, ok := index[key]; ok {
			if city.Image == "" {
				city.Image = merged[i].Image
			}
			merged[i] = city
			continue
		}
		if city.Image == "" {
			city.Image = imageFor(city.Name, city.Country)
		}
		index[key] = len(merged)
		merged = append(merged, city)
	}
	return merged
}
