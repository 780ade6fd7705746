package users

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindUser, &Source{})
}

// Source fetches back-office user accounts. The endpoint is role-gated
// server-side, so without the admin flag and a token the source reports
// itself disabled and the request is never attempted.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindUser }
func (s *Source) Name() string    { return "users" }

func (s *Source) Enabled(settings core.SourceSettings) bool {
	return settings.Admin && settings.Token != ""
}

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("users source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.BearerClient(settings.Token),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("users")
	rows, err := fetch.GetList[core.User](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	l.Debugf("fetched %d users", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
