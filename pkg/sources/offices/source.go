package offices

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindOffice, &Source{})
}

// Source fetches the partner office directory. The endpoint is
// authenticated; the bearer token rides on every request.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindOffice }
func (s *Source) Name() string    { return "offices" }

func (s *Source) Enabled(core.SourceSettings) bool { return true }

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("offices source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.BearerClient(settings.Token),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("offices")
	rows, err := fetch.GetList[core.Office](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching offices: %w", err)
	}
	l.Debugf("fetched %d offices", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
