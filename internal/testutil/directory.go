package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// StubDirectory answers lookups from a fixed map and records every query.
type StubDirectory struct {
	Candidates map[string][]players.Player
	Errors     map[string]error
	Queries    []string
}

// FindByFullName returns the configured candidates for fullName.
func (s *StubDirectory) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	_ = ctx
	s.Queries = append(s.Queries, fullName)
	if err, ok := s.Errors[fullName]; ok {
		return nil, err
	}
	return s.Candidates[fullName], nil
}

// ErrDirectory always returns Err.
type ErrDirectory struct {
	Err error
}

func (d ErrDirectory) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	return nil, d.Err
}

// SamplePlayer returns a minimal candidate with the provided id and name.
func SamplePlayer(id int, fullName string) players.Player {
	return players.Player{ID: id, FullName: fullName}
}
