package blogs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindBlog, &Source{})
}

// Source fetches published blog posts, walking the paginated endpoint.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindBlog }
func (s *Source) Name() string    { return "blogs" }

func (s *Source) Enabled(core.SourceSettings) bool { return true }

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("blogs source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.Client(),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("blogs")
	rows, err := fetch.GetPaged[core.Blog](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching blogs: %w", err)
	}
	l.Debugf("fetched %d blog posts", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
