package tours

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindTour, &Source{})
}

// Source fetches the tour collection.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindTour }
func (s *Source) Name() string    { return "tours" }

func (s *Source) Enabled(core.SourceSettings) bool { return true }

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("tours source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.Client(),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("tours")
	rows, err := fetch.GetList[core.Tour](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching tours: %w", err)
	}
	l.Debugf("fetched %d tours", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
