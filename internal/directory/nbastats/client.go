// Package nbastats downloads the complete NBA player list from the
// stats.nba.com commonallplayers endpoint. The result feeds the static
// directory as a dataset file.
package nbastats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	Season     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches the all-time player list.
type Client struct {
	baseURL    string
	season     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	season := strings.TrimSpace(cfg.Season)
	if season == "" {
		season = defaultSeason
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		doer = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: baseURL, season: season, httpClient: doer}
}

// FetchPlayers returns every player the league lists, current and historical,
// in the endpoint's "last, first" order.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/commonallplayers", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("IsOnlyCurrentSeason", "0")
	q.Set("LeagueID", "00")
	q.Set("Season", c.season)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", referer)
	req.Header.Set("Origin", origin)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		var retryAfter time.Duration
		if secs, err := strconv.Atoi(strings.TrimSpace(resp.Header.Get("Retry-After"))); err == nil && secs > 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
		return nil, &directory.RateLimitError{
			Directory:  Name,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
			Message:    "stats.nba.com rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nbastats: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload commonAllPlayersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nbastats: decode players: %w", err)
	}
	if len(payload.ResultSets) == 0 {
		return nil, fmt.Errorf("nbastats: response has no result sets")
	}

	set := payload.ResultSets[0]
	cols, err := resolveColumns(set.Headers)
	if err != nil {
		return nil, err
	}
	out := make([]players.Player, 0, len(set.RowSet))
	for i, row := range set.RowSet {
		p, err := mapRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}
