package balldontlie

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
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/names"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	MaxPages   int
}

// Client resolves player names through the balldontlie players search.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	maxPages   int
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
		maxPages:   resolveMaxPages(cfg.MaxPages),
	}
}

// FindByFullName searches upstream by the name's last token, then keeps the
// results whose full name contains the query, in upstream order. Results
// without an NBA.com id are dropped.
func (c *Client) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	term := names.SearchTerm(fullName)
	if term == "" {
		return nil, nil
	}
	matcher := names.NewMatcher(fullName)

	var (
		cursor  *int
		matches []players.Player
		skipped int
	)
	for page := 1; ; page++ {
		payload, err := c.fetchPage(ctx, term, cursor)
		if err != nil {
			return nil, err
		}

		for _, p := range payload.Data {
			player, ok := mapPlayer(p)
			if !ok {
				if matcher.Matches(p.FirstName + " " + p.LastName) {
					skipped++
				}
				continue
			}
			if matcher.Matches(player.FullName) {
				matches = append(matches, player)
			}
		}

		if payload.Meta.NextCursor == nil || len(payload.Data) == 0 {
			break
		}
		if page >= c.maxPages {
			break
		}
		cursor = payload.Meta.NextCursor
	}
	if skipped > 0 {
		logging.Debug(logging.FromContext(ctx, nil), "balldontlie candidates without nba_player_id skipped",
			logging.FieldName, fullName,
			logging.FieldCandidates, skipped,
		)
	}
	return matches, nil
}

func (c *Client) fetchPage(ctx context.Context, term string, cursor *int) (playersResponse, error) {
	req, err := c.buildRequest(ctx, term, cursor)
	if err != nil {
		return playersResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return playersResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return playersResponse{}, &directory.RateLimitError{
			Directory:  Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    rateLimitMessage(body),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return playersResponse{}, fmt.Errorf("balldontlie: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload playersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return playersResponse{}, fmt.Errorf("balldontlie: decode players: %w", err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, term string, cursor *int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/players", nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("search", term)
	q.Set("per_page", strconv.Itoa(defaultPerPage))
	if cursor != nil {
		q.Set("cursor", strconv.Itoa(*cursor))
	}
	req.URL.RawQuery = q.Encode()
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func rateLimitMessage(body []byte) string {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "balldontlie rate limited"
	}
	return "balldontlie rate limited: " + msg
}
