package cmd

import (
	"testing"

	"github.com/rihla/rihla/pkg/config"
	"github.com/rihla/rihla/pkg/core"

	// Import all source modules to trigger their init() functions, as the
	// main package does in sources.go.
	_ "github.com/rihla/rihla/pkg/sources/blogs"
	_ "github.com/rihla/rihla/pkg/sources/hotels"
	_ "github.com/rihla/rihla/pkg/sources/offices"
	_ "github.com/rihla/rihla/pkg/sources/packages"
	_ "github.com/rihla/rihla/pkg/sources/tours"
	_ "github.com/rihla/rihla/pkg/sources/users"
	_ "github.com/rihla/rihla/pkg/sources/vouchers"
)

func TestKindScopesSplitFetched(t *testing.T) {
	seen := make(map[core.Kind]string)
	for _, kind := range publicFetchedKinds {
		seen[kind] = "public"
	}
	for _, kind := range internalFetchedKinds {
		if scope, ok := seen[kind]; ok {
			t.Errorf("%s appears in both %s and internal scopes", kind, scope)
		}
		seen[kind] = "internal"
	}
	if len(seen) != len(fetchedKinds) {
		t.Fatalf("scopes cover %d kinds, fetched list has %d", len(seen), len(fetchedKinds))
	}
	for _, kind := range fetchedKinds {
		if _, ok := seen[kind]; !ok {
			t.Errorf("%s is fetched but belongs to no scope", kind)
		}
	}
}

func TestBuildRegistryScopesKinds(t *testing.T) {
	cfg := config.GetDefaultConfig()

	registry, err := buildRegistry(cfg, publicFetchedKinds)
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	defer func() {
		if err := registry.Close(); err != nil {
			t.Errorf("closing registry: %v", err)
		}
	}()

	public := make(map[core.Kind]bool)
	for _, kind := range publicFetchedKinds {
		public[kind] = true
	}
	for _, src := range registry.Sources() {
		if !public[src.Kind()] {
			t.Errorf("public scope created a %s source", src.Kind())
		}
	}
}
