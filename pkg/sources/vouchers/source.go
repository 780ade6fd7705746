package vouchers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
	"github.com/rihla/rihla/pkg/log"
)

func init() {
	core.RegisterSourcePrototype(core.KindVoucher, &Source{})
}

// Source fetches the voucher collection. Besides being searchable by number,
// vouchers feed the derived direct-client collection.
type Source struct {
	endpoint string
	client   *http.Client
}

func (s *Source) Kind() core.Kind { return core.KindVoucher }
func (s *Source) Name() string    { return "vouchers" }

func (s *Source) Enabled(core.SourceSettings) bool { return true }

func (s *Source) Factory(settings core.SourceSettings) (core.Source, error) {
	if settings.Endpoint == "" {
		return nil, fmt.Errorf("vouchers source requires an endpoint")
	}
	return &Source{
		endpoint: settings.Endpoint,
		client:   fetch.BearerClient(settings.Token),
	}, nil
}

func (s *Source) Fetch(ctx context.Context) ([]core.Entity, error) {
	l := log.ForSource("vouchers")
	rows, err := fetch.GetList[core.Voucher](ctx, s.client, s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching vouchers: %w", err)
	}
	l.Debugf("fetched %d vouchers", len(rows))

	entities := make([]core.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, &rows[i])
	}
	return entities, nil
}

func (s *Source) Close() error { return nil }
