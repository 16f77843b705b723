package testutil

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}

	clock := SteppingClock(now, time.Second)
	first := clock()
	second := clock()
	if !first.Equal(now) || second.Sub(first) != time.Second {
		t.Fatalf("expected clock to start at now and advance by 1s, got %v then %v", first, second)
	}
}

func TestStubDirectory(t *testing.T) {
	boom := errors.New("boom")
	dir := &StubDirectory{
		Candidates: map[string][]players.Player{"LeBron James": {SamplePlayer(2544, "LeBron James")}},
		Errors:     map[string]error{"Broken": boom},
	}

	got, err := dir.FindByFullName(context.Background(), "LeBron James")
	if err != nil || len(got) != 1 || got[0].ID != 2544 {
		t.Fatalf("unexpected result %+v err=%v", got, err)
	}
	if got, err := dir.FindByFullName(context.Background(), "Unknown"); err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", got, err)
	}
	if _, err := dir.FindByFullName(context.Background(), "Broken"); !errors.Is(err, boom) {
		t.Fatalf("expected configured error, got %v", err)
	}
	if strings.Join(dir.Queries, "|") != "LeBron James|Unknown|Broken" {
		t.Fatalf("unexpected queries %v", dir.Queries)
	}

	if _, err := (ErrDirectory{Err: boom}).FindByFullName(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected ErrDirectory error, got %v", err)
	}
}

func TestFileHelpers(t *testing.T) {
	path := WriteFile(t, "names.txt", "LeBron James\n")
	if got := ReadFile(t, path); got != "LeBron James\n" {
		t.Fatalf("unexpected contents %q", got)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
