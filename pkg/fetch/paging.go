package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// maxPages bounds paginated fetches so a misbehaving endpoint cannot spin
// the adapter forever.
const maxPages = 25

// GetPaged walks a paginated collection endpoint (?page=N, 1-based) until an
// empty page. A failure on the first page is a transport failure; a failure
// on a later page stops the walk and keeps what was already collected, since
// a partial collection still searches better than none.
func GetPaged[T any](ctx context.Context, client *http.Client, endpoint string) ([]T, error) {
	var all []T
	for page := 1; page <= maxPages; page++ {
		rows, err := GetList[T](ctx, client, pageURL(endpoint, page))
		if err != nil {
			if page == 1 {
				return nil, err
			}
			return all, nil
		}
		if len(rows) == 0 {
			break
		}
		all = append(all, rows...)
	}
	return all, nil
}

func pageURL(endpoint string, page int) string {
	sep := "?"
	if u, err := url.Parse(endpoint); err == nil && u.RawQuery != "" {
		sep = "&"
	}
	return fmt.Sprintf("%s%spage=%d", endpoint, sep, page)
}
