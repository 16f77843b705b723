package balldontlie

import (
	"strings"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// mapPlayer converts a search hit into a candidate keyed by its NBA.com id.
// Hits without one are rejected so balldontlie ids never reach a report.
func mapPlayer(p playerResponse) (players.Player, bool) {
	if p.NBAPlayerID == nil || *p.NBAPlayerID <= 0 {
		return players.Player{}, false
	}
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	return players.Player{
		ID:        *p.NBAPlayerID,
		FullName:  strings.TrimSpace(first + " " + last),
		FirstName: first,
		LastName:  last,
		Team:      strings.TrimSpace(p.Team.Abbreviation),
	}, true
}
