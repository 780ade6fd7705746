package packages

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindPackage, &Source{})
}

// Source fetches the featured package collection. The endpoint paginates, so
// the adapter walks pages until the collection is exhausted.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindPackage }
func (s *Source) Name() string    { return "packages" }

func (s *Source) Enabled(core.SourceSettings) bool { return true }

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("packages source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.Client(),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("packages")
	rows, err := fetch.GetPaged[core.Package](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching packages: %w", err)
	}
	l.Debugf("fetched %d packages", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
