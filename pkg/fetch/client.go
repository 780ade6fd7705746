package fetch

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const requestTimeout = 15 * time.Second

// Client returns the plain HTTP client used by public sources.
func Client() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// BearerClient returns an HTTP client that attaches the token as an
// Authorization: Bearer header on every request. With an empty token it
// degrades to a plain client; the endpoint's 401 is then handled like any
// other transport failure.
func BearerClient(token string) *http.Client {
	if token == "" {
		return Client()
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(context.Background(), src)
	client.Timeout = requestTimeout
	return client
}
