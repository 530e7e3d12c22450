// Package firefly implements a read-only client for the Firefly III API.
//
// The client flattens the upstream JSON:API payloads into the types the
// dashboard consumes. It never writes; every method is a single
// authenticated GET.
package firefly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// listLimit is the page size for the reference data listings (accounts,
// categories, tags, budgets). The dashboard fetches those in one page.
const listLimit = 200

// maxBodySize caps how much of an upstream response is read.
const maxBodySize = 16 << 20

// Client is a client for the Firefly III API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	log     zerolog.Logger
}

// New returns a new Client for the API at baseURL.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "firefly").Logger(),
	}
}

// get performs an authenticated GET against the API and decodes the
// response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.api+json")

	c.log.Debug().Str("path", path).Str("query", params.Encode()).Msg("GET")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("firefly request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("reading firefly response failed: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("firefly API error: %s on %s: %s", resp.Status, path, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("firefly response for %s is not valid JSON: %w", path, err)
	}

	return nil
}

func dateParam(t time.Time) string {
	return t.Format("2006-01-02")
}
