package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches the processed activity feed. The feed is a single JSON
// document (an array of Activity) at a fixed URL; there is no pagination
// and no retry.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a feed client for the given document URL.
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
	}
}

// Fetch downloads and decodes the activity feed. Records with an empty or
// truncated datetime, or a negative distance or duration, are skipped;
// the rest of the feed is kept in document order.
func (c *Client) Fetch(ctx context.Context) ([]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching activity feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned %d: %s", resp.StatusCode, string(body))
	}

	var raw []Activity
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding activity feed: %w", err)
	}

	return Sanitize(raw), nil
}

// Sanitize drops records the rest of the system cannot bucket or
// aggregate: missing/short datetime, negative distance or duration.
// Order of the survivors is preserved.
func Sanitize(activities []Activity) []Activity {
	out := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if a.Day() == "" {
			continue
		}
		if a.Distance < 0 || a.Duration < 0 {
			continue
		}
		out = append(out, a)
	}
	return out
}
