// Package fetch holds the HTTP plumbing shared by every source adapter:
// request issuing and envelope-tolerant list decoding.
//
// The remote APIs are inconsistent about response shape. Depending on the
// endpoint, a collection arrives as a bare array, wrapped as {"data": [...]},
// or double-wrapped as {"data": {"data": [...]}} by the paginator. DecodeList
// accepts all three. Decode failures are returned to the caller; the catalog
// turns them into empty snapshots rather than surfacing them.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// envelope matches the wrapped response shapes. Data is kept raw so it can
// be either the list itself or another envelope.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeList decodes a collection response, tolerating the known envelope
// variants.
func DecodeList[T any](r io.Reader) ([]T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return decodeRaw[T](raw, 0)
}

// decodeRaw unwraps envelopes recursively. Two levels cover every shape the
// APIs produce; anything deeper is a malformed response.
func decodeRaw[T any](raw []byte, depth int) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decoding list: %w", err)
		}
		return list, nil
	}

	if depth >= 2 {
		return nil, fmt.Errorf("unexpected response shape")
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("response has no data field")
	}
	return decodeRaw[T](env.Data, depth+1)
}

// GetList issues a GET request and decodes the collection response. A non-2xx
// status is a transport failure.
func GetList[T any](ctx context.Context, client *http.Client, url string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	return DecodeList[T](resp.Body)
}
