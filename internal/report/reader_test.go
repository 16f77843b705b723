package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

func TestReadRoundTripsWrittenReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	results := []players.LookupResult{
		players.Matched("LeBron James", 2544),
		players.Unmatched("Not A Real Player"),
		players.Matched("Payton, Gary", 56),
	}
	if err := Write(path, results); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(results) {
		t.Fatalf("expected %d rows, got %d", len(results), len(got))
	}
	for i := range results {
		if got[i] != results[i] {
			t.Fatalf("row %d expected %+v, got %+v", i, results[i], got[i])
		}
	}
}

func TestReadFromStripsBOM(t *testing.T) {
	got, err := ReadFrom(strings.NewReader("\ufeffname,nba_player_id\nLeBron James,2544\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].PlayerID != 2544 {
		t.Fatalf("unexpected rows %+v", got)
	}
}

func TestReadFromRejectsBadHeader(t *testing.T) {
	_, err := ReadFrom(strings.NewReader("player,id\nLeBron James,2544\n"))
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}

	_, err = ReadFrom(strings.NewReader(""))
	if !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader for empty input, got %v", err)
	}
}

func TestReadFromRejectsBadIdentifier(t *testing.T) {
	cases := []string{"abc", "-1", "12.5"}
	for _, raw := range cases {
		_, err := ReadFrom(strings.NewReader("name,nba_player_id\nLeBron James," + raw + "\n"))
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Fatalf("identifier %q expected ErrInvalidIdentifier, got %v", raw, err)
		}
	}
}

func TestReadFromRejectsWrongFieldCount(t *testing.T) {
	if _, err := ReadFrom(strings.NewReader("name,nba_player_id\nLeBron James,2544,extra\n")); err == nil {
		t.Fatal("expected field count error")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}
