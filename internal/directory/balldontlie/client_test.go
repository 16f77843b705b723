package balldontlie

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/testutil"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFindByFullNameSearchesAndFilters(t *testing.T) {
	var capturedAuth string
	var capturedQueries []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/players" {
			t.Fatalf("expected /players path, got %s", req.URL.Path)
		}
		capturedQueries = append(capturedQueries, req.URL.RawQuery)
		capturedAuth = req.Header.Get("Authorization")

		if len(capturedQueries) == 1 {
			return jsonResponse(http.StatusOK, `{
				"data": [
					{"id": 237, "nba_player_id": 2544, "first_name": "LeBron", "last_name": "James", "team": {"abbreviation": "LAL"}},
					{"id": 238, "nba_player_id": 1628539, "first_name": "Mike", "last_name": "James", "team": {"abbreviation": "PHX"}}
				],
				"meta": {"next_cursor": 238, "per_page": 100}
			}`), nil
		}
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"id": 999, "nba_player_id": 1641733, "first_name": "Bronny", "last_name": "James", "team": {"abbreviation": "LAL"}}
			],
			"meta": {"per_page": 100}
		}`), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	got, err := client.FindByFullName(context.Background(), "LeBron James")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedAuth != "secret" {
		t.Fatalf("expected authorization header, got %s", capturedAuth)
	}
	if len(capturedQueries) != 2 {
		t.Fatalf("expected 2 requests (cursor pagination), got %d", len(capturedQueries))
	}

	first, err := url.ParseQuery(capturedQueries[0])
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQueries[0], err)
	}
	if first.Get("search") != "James" || first.Get("per_page") != "100" || first.Has("cursor") {
		t.Fatalf("unexpected first query %v", first)
	}
	second, _ := url.ParseQuery(capturedQueries[1])
	if second.Get("cursor") != "238" {
		t.Fatalf("expected cursor=238 on second page, got %v", second)
	}

	if len(got) != 1 {
		t.Fatalf("expected only LeBron to match, got %+v", got)
	}
	if got[0].ID != 2544 || got[0].FullName != "LeBron James" || got[0].Team != "LAL" {
		t.Fatalf("unexpected candidate %+v", got[0])
	}
}

func TestFindByFullNameSkipsHitsWithoutNBAID(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"data": [
				{"id": 237, "first_name": "LeBron", "last_name": "James"},
				{"id": 240, "nba_player_id": null, "first_name": "LeBron", "last_name": "James"}
			],
			"meta": {}
		}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	logger, logs := testutil.NewBufferLogger()
	ctx := logging.WithContext(context.Background(), logger)

	got, err := client.FindByFullName(ctx, "LeBron James")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected balldontlie-only ids to be dropped, got %+v", got)
	}
	if !strings.Contains(logs.String(), "candidates=2") {
		t.Fatalf("expected skipped count in debug log, got %q", logs.String())
	}
}

func TestFindByFullNameNoResults(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data": [], "meta": {}}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FindByFullName(context.Background(), "Not A Real Player")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %+v", got)
	}
}

func TestFindByFullNameBlankSkipsRequest(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("expected no request for blank name")
		return nil, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FindByFullName(context.Background(), "   ")
	if err != nil || got != nil {
		t.Fatalf("expected nil result, got %+v err=%v", got, err)
	}
}

func TestFindByFullNameHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "boom"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FindByFullName(context.Background(), "LeBron James")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestFindByFullNameRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "30")
		resp.Header.Set("X-RateLimit-Remaining", "0")
		return resp, nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FindByFullName(context.Background(), "LeBron James")
	rl, ok := directory.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.Directory != Name || rl.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
	if rl.RetryAfter != 30*time.Second || rl.Remaining != "0" {
		t.Fatalf("unexpected retry metadata %+v", rl)
	}
	if !strings.Contains(rl.Message, "slow down") {
		t.Fatalf("expected upstream body in message, got %q", rl.Message)
	}
}

func TestFindByFullNameHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FindByFullName(context.Background(), "LeBron James"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFindByFullNameRespectsMaxPagesCap(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{
			"data": [{"id": 1, "nba_player_id": 2034, "first_name": "Mike", "last_name": "Miller"}],
			"meta": {"next_cursor": 5}
		}`), nil
	})
	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
		MaxPages:   1,
	})

	got, err := client.FindByFullName(context.Background(), "Mike Miller")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if calls != 1 {
		t.Fatalf("expected to stop after max pages, got %d calls", calls)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout, got %s", httpClient.Timeout)
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
