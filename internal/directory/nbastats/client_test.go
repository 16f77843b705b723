package nbastats

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
)

const samplePayload = `{
	"resource": "commonallplayers",
	"resultSets": [{
		"name": "CommonAllPlayers",
		"headers": ["PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS", "FROM_YEAR", "TO_YEAR", "TEAM_ABBREVIATION"],
		"rowSet": [
			[76001, "Abdelnaby, Alaa", "Alaa Abdelnaby", 0, "1990", "1994", ""],
			[2544, "James, LeBron", "LeBron James", 1, "2003", "2024", "LAL"],
			[2403, "Nenê", "Nenê", 0, "2002", "2019", ""]
		]
	}]
}`

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchPlayersMapsRowsInOrder(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, samplePayload), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com/stats/", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/stats/commonallplayers" {
		t.Fatalf("unexpected path %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("IsOnlyCurrentSeason") != "0" || q.Get("LeagueID") != "00" || q.Get("Season") != defaultSeason {
		t.Fatalf("unexpected query %v", q)
	}
	if captured.Header.Get("Referer") == "" || captured.Header.Get("User-Agent") == "" {
		t.Fatalf("expected browser headers, got %v", captured.Header)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 players, got %d", len(got))
	}
	lebron := got[1]
	if lebron.ID != 2544 || lebron.FullName != "LeBron James" || lebron.FirstName != "LeBron" || lebron.LastName != "James" {
		t.Fatalf("unexpected mapping %+v", lebron)
	}
	if !lebron.IsActive || lebron.Team != "LAL" {
		t.Fatalf("expected active LAL player, got %+v", lebron)
	}
	if got[0].ID != 76001 || got[0].IsActive {
		t.Fatalf("expected inactive first row, got %+v", got[0])
	}
	if got[2].FirstName != "Nenê" || got[2].LastName != "" {
		t.Fatalf("expected single-word name kept as first name, got %+v", got[2])
	}
}

func TestFetchPlayersUsesConfiguredSeason(t *testing.T) {
	var season string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		season = req.URL.Query().Get("Season")
		return jsonResponse(http.StatusOK, samplePayload), nil
	})
	client := NewClient(Config{Season: "2023-24", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchPlayers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if season != "2023-24" {
		t.Fatalf("expected configured season, got %q", season)
	}
}

func TestFetchPlayersErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "status", status: http.StatusForbidden, body: "denied", want: "403"},
		{name: "decode", status: http.StatusOK, body: "{bad", want: "decode"},
		{name: "no result sets", status: http.StatusOK, body: `{"resultSets": []}`, want: "no result sets"},
		{name: "missing column", status: http.StatusOK, body: `{"resultSets": [{"headers": ["PERSON_ID"], "rowSet": []}]}`, want: "missing column"},
		{name: "bad id", status: http.StatusOK, body: `{"resultSets": [{"headers": ["PERSON_ID", "DISPLAY_LAST_COMMA_FIRST", "DISPLAY_FIRST_LAST", "ROSTERSTATUS"], "rowSet": [["x", "A, B", "B A", 1]]}]}`, want: "row 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
				return jsonResponse(tc.status, tc.body), nil
			})
			client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

			_, err := client.FetchPlayers(context.Background())
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestIntCellAcceptsQuotedNumbers(t *testing.T) {
	cols := columns{id: 0, lastComma: 1, firstLast: 2, status: 3, team: -1}
	row := rawRow(`"1629029"`, `"Dončić, Luka"`, `"Luka Dončić"`, `"1"`)

	p, err := mapRow(row, cols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1629029 || !p.IsActive || p.LastName != "Dončić" {
		t.Fatalf("unexpected mapping %+v", p)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != defaultBaseURL || c.season != defaultSeason {
		t.Fatalf("unexpected defaults %+v", c)
	}
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok || httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default http client with timeout")
	}
}

func rawRow(cells ...string) []json.RawMessage {
	row := make([]json.RawMessage, len(cells))
	for i, c := range cells {
		row[i] = json.RawMessage(c)
	}
	return row
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestFetchPlayersRateLimited(t *testing.T) {
	rt := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "")
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})
	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchPlayers(context.Background())
	rlErr, ok := directory.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.Directory != Name || rlErr.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected rate limit error %+v", rlErr)
	}
}
