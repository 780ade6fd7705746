package derive

import (
	"context"

	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/core"
)

// Populate builds every derived collection from the primary snapshots already
// in the catalog and installs them. The static destinations and the seeded
// cities go in immediately so the first queries can match places; the
// authoritative per-country listings land in a second install once their
// lookups return. Callers run Populate after catalog.Load; it never blocks
// the primary search path beyond its own synchronous seeding.
func Populate(ctx context.Context, c *catalog.Catalog, lookup Lookup) {
	c.Install(core.KindCountry, Destinations())

	vouchers := vouchersFrom(c.Snapshot(core.KindVoucher))
	clients := DirectClients(vouchers)
	clientEntities := make([]core.Entity, 0, len(clients))
	for i := range clients {
		clientEntities = append(clientEntities, &clients[i])
	}
	c.Install(core.KindDirectClient, clientEntities)

	seeds := SeedCities(
		hotelsFrom(c.Snapshot(core.KindHotel)),
		toursFrom(c.Snapshot(core.KindTour)),
		packagesFrom(c.Snapshot(core.KindPackage)),
	)
	c.Install(core.KindCity, cityEntities(seeds))

	if lookup == nil {
		return
	}
	fetched := FetchAuthoritative(ctx, lookup)
	if len(fetched) == 0 {
		return
	}
	c.Install(core.KindCity, cityEntities(MergeAuthoritative(seeds, fetched)))
}

func cityEntities(cities []core.City) []core.Entity {
	entities := make([]core.Entity, 0, len(cities))
	for i := range cities {
		entities = append(entities, &cities[i])
	}
	return entities
}

func hotelsFrom(entities []core.Entity) []core.Hotel {
	out := make([]core.Hotel, 0, len(entities))
	for _, e := range entities {
		if hotel, ok := e.(*core.Hotel); ok {
			out = append(out, *hotel)
		}
	}
	return out
}

func toursFrom(entities []core.Entity) []core.Tour {
	out := make([]core.Tour, 0, len(entities))
	for _, e := range entities {
		if tour, ok := e.(*core.Tour); ok {
			out = append(out, *tour)
		}
	}
	return out
}

func packagesFrom(entities []core.Entity) []core.Package {
	out := make([]core.Package, 0, len(entities))
	for _, e := range entities {
		if pkg, ok := e.(*core.Package); ok {
			out = append(out, *pkg)
		}
	}
	return out
}

func vouchersFrom(entities []core.Entity) []core.Voucher {
	out := make([]core.Voucher, 0, len(entities))
	for _, e := range entities {
		if voucher, ok := e.(*core.Voucher); ok {
			out = append(out, *voucher)
		}
	}
	return out
}
