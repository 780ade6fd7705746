// Package cities is the per-country city lookup used by the derived-city
// builder. It is not a registry source: cities are synthesized from the
// primary collections first and this authoritative listing overwrites them
// afterwards, so the lookup is driven by the builder rather than the catalog
// loader.
package cities

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/fetch"
)

type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   fetch.Client(),
	}
}

// ByCountry fetches the authoritative city listing for one country. Rows come
// back with tour/hotel counts; the country field is filled in when the
// endpoint omits it.
func (c *Client) ByCountry(ctx context.Context, country string) ([]core.City, error) {
	u := fmt.Sprintf("%s?country=%s", c.endpoint, url.QueryEscape(country))
	rows, err := fetch.GetList[core.City](ctx, c.client, u)
	if err != nil {
		return nil, fmt.Errorf("fetching cities for %s: %w", country, err)
	}
	for i := range rows {
		if rows[i].Country == "" {
			rows[i].Country = country
		}
	}
	return rows, nil
}
