package players

import "strconv"

// Player is a directory candidate: one record returned for a full-name query.
type Player struct {
	ID        int    `json:"id" yaml:"id"`
	FullName  string `json:"full_name" yaml:"full_name"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	IsActive  bool   `json:"is_active" yaml:"is_active"`
	Team      string `json:"team,omitempty" yaml:"team,omitempty"`
}

// DisplayName returns FullName, falling back to "First Last".
func (p Player) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// LookupResult pairs an input name with the identifier resolved for it.
// PlayerID is only meaningful when Found is true.
type LookupResult struct {
	Name     string
	PlayerID int
	Found    bool
}

// Matched builds a result for a name that resolved to id.
func Matched(name string, id int) LookupResult {
	return LookupResult{Name: name, PlayerID: id, Found: true}
}

// Unmatched builds a result for a name the directory had no candidates for.
func Unmatched(name string) LookupResult {
	return LookupResult{Name: name}
}

// FromCandidates takes the head of the candidate list, or reports no match when it is empty.
func FromCandidates(name string, candidates []Player) LookupResult {
	if len(candidates) == 0 {
		return Unmatched(name)
	}
	return Matched(name, candidates[0].ID)
}

// Identifier renders the id as a decimal string, or "" when unmatched.
func (r LookupResult) Identifier() string {
	if !r.Found {
		return ""
	}
	return strconv.Itoa(r.PlayerID)
}
