package tripsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"tripmate/internal/utils"
)

// RecentLimit is the fixed page size the landing page requests.
const RecentLimit = 6

// FeedResult is what a fetch produces. Posts is always a usable slice,
// never nil. Err records why a fetch came back empty; callers may log it
// but must not surface it to visitors, who only ever see "no trips".
type FeedResult struct {
	Posts []TripSummary
	Err   error
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	RequestID  string
}

func NewClient(baseURL string) Client {
	return Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Recent issues the single bounded read for the recent-trips section.
// Every failure mode (transport error, non-2xx, malformed body) collapses
// to an empty result; cancelling ctx aborts the transport and the response,
// if one still arrives, is discarded. The caller renders whatever comes
// back without a state write of its own, so nothing outlives ctx.
func (c Client) Recent(ctx context.Context) FeedResult {
	return c.fetch(ctx, RecentLimit)
}

func (c Client) fetch(ctx context.Context, limit int) FeedResult {
	url := c.BaseURL + "/api/posts?limit=" + strconv.Itoa(limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.failed("build_request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.RequestID != "" {
		req.Header.Set("X-Request-ID", c.RequestID)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return c.failed("fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failed("fetch", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failed("read_body", err)
	}

	if err := ctx.Err(); err != nil {
		// Owner is gone; drop the result on the floor.
		return FeedResult{Posts: []TripSummary{}, Err: err}
	}

	return c.decode(body)
}

// decode extracts the posts list. A missing, null, or non-array posts field
// reads as an empty feed, same as no trips existing at all.
func (c Client) decode(body []byte) FeedResult {
	var envelope struct {
		Posts json.RawMessage `json:"posts"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return c.failed("decode", err)
	}

	raw := strings.TrimSpace(string(envelope.Posts))
	if raw == "" || raw == "null" {
		return FeedResult{Posts: []TripSummary{}}
	}

	var posts []TripSummary
	if err := json.Unmarshal(envelope.Posts, &posts); err != nil {
		return c.failed("decode", err)
	}
	if posts == nil {
		posts = []TripSummary{}
	}
	return FeedResult{Posts: posts}
}

func (c Client) failed(action string, err error) FeedResult {
	utils.LogEvent(c.RequestID, "tripsfeed", action, err.Error())
	return FeedResult{Posts: []TripSummary{}, Err: err}
}
