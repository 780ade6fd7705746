package cmd

import (
	"context"
	"fmt"

	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/derive"
	"github.com/rihla/rihla/pkg/sources/cities"
)

// The collection kinds backed by a registry source, split by search scope.
// Cities, countries and direct clients are derived, not fetched. Public and
// internal are mutually exclusive feature sets; one-shot commands only fetch
// the half they search, and only the internal half ever sends credentials.
var (
	publicFetchedKinds = []core.Kind{
		core.KindHotel,
		core.KindTour,
		core.KindPackage,
		core.KindBlog,
	}
	internalFetchedKinds = []core.Kind{
		core.KindOffice,
		core.KindVoucher,
		core.KindUser,
	}
	fetchedKinds = append(append([]core.Kind{}, publicFetchedKinds...), internalFetchedKinds...)
)

// buildRegistry instantiates the requested kinds from config. Disabled and
// role-gated sources are simply absent; their collections stay empty.
func buildRegistry(cfg *config.Config, kinds []core.Kind) (*core.Registry, error) {
	registry := core.GlobalRegistry()
	for _, kind := range kinds {
		if cfg.SourceDisabled(kind) {
			continue
		}
		if err := registry.CreateSource(kind, cfg.Settings(kind)); err != nil {
			return nil, fmt.Errorf("creating %s source: %w", kind, err)
		}
	}
	return registry, nil
}

// cityLookup builds the per-country authoritative city lookup. Callers that
// do not search places pass derive.Populate a nil lookup instead.
func cityLookup(cfg *config.Config) derive.Lookup {
	return cities.NewClient(cfg.CitiesEndpoint()).ByCountry
}

// loadCatalogInto fetches every registered collection concurrently into cat
// and then builds the derived collections on top. Snapshots are searchable as
// they install, so callers may run this in a goroutine and serve queries
// against whatever has landed.
func loadCatalogInto(ctx context.Context, registry *core.Registry, cat *catalog.Catalog, lookup derive.Lookup) {
	catalog.Load(ctx, cat, registry.Sources())
	derive.Populate(ctx, cat, lookup)
}

// loadCatalog is the synchronous variant for one-shot commands.
func loadCatalog(ctx context.Context, registry *core.Registry, lookup derive.Lookup) *catalog.Catalog {
	cat := catalog.New()
	loadCatalogInto(ctx, registry, cat, lookup)
	return cat
}
