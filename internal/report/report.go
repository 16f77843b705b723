// Package report reads and writes the two-column lookup report:
//
//	name,nba_player_id
//	LeBron James,2544
//	Not A Real Player,
package report

import (
	"errors"
	"sort"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// Header is the fixed report header row.
var Header = []string{"name", "nba_player_id"}

var (
	// ErrInvalidHeader is returned when a report does not start with Header.
	ErrInvalidHeader = errors.New("report: invalid header")
	// ErrInvalidIdentifier is returned when an identifier is neither empty nor a non-negative integer.
	ErrInvalidIdentifier = errors.New("report: invalid identifier")
)

// Summary aggregates a set of lookup results.
type Summary struct {
	Total     int
	Matched   int
	Unmatched int
	// Duplicates maps an identifier shared by more than one distinct name to those names.
	Duplicates map[int][]string
}

// Summarize counts matches and finds identifiers assigned to more than one distinct name.
func Summarize(results []players.LookupResult) Summary {
	s := Summary{Total: len(results)}
	byID := make(map[int][]string)
	for _, r := range results {
		if !r.Found {
			s.Unmatched++
			continue
		}
		s.Matched++
		if !containsName(byID[r.PlayerID], r.Name) {
			byID[r.PlayerID] = append(byID[r.PlayerID], r.Name)
		}
	}
	for id, names := range byID {
		if len(names) < 2 {
			continue
		}
		if s.Duplicates == nil {
			s.Duplicates = make(map[int][]string)
		}
		s.Duplicates[id] = names
	}
	return s
}

// DuplicateIDs returns the duplicated identifiers in ascending order.
func (s Summary) DuplicateIDs() []int {
	ids := make([]int, 0, len(s.Duplicates))
	for id := range s.Duplicates {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// UnmatchedNames returns the names without an identifier, in report order.
func UnmatchedNames(results []players.LookupResult) []string {
	var out []string
	for _, r := range results {
		if !r.Found {
			out = append(out, r.Name)
		}
	}
	return out
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
