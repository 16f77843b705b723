// Package names normalizes player names and implements full-name matching
// shared by every directory.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks so "Jokić" compares equal to "Jokic".
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold returns the comparison form of a name: accents stripped, case folded,
// whitespace runs collapsed to single spaces.
func Fold(s string) string {
	s = cases.Fold().String(StripAccents(s))
	return strings.Join(strings.Fields(s), " ")
}

// Matcher tests candidate full names against a query.
type Matcher struct {
	needle string
}

// NewMatcher builds a Matcher for query. The query matches any full name
// containing it, ignoring case and accents.
func NewMatcher(query string) Matcher {
	return Matcher{needle: Fold(query)}
}

// Matches reports whether fullName contains the query.
func (m Matcher) Matches(fullName string) bool {
	return m.MatchesFolded(Fold(fullName))
}

// MatchesFolded is Matches for a name already passed through Fold.
func (m Matcher) MatchesFolded(folded string) bool {
	if m.needle == "" {
		return false
	}
	return strings.Contains(folded, m.needle)
}

var generationalSuffixes = map[string]struct{}{
	"jr": {}, "jr.": {}, "sr": {}, "sr.": {}, "ii": {}, "iii": {}, "iv": {},
}

// SearchTerm picks the token to send to upstream APIs that only search first
// or last names: the last token of the name, skipping suffixes such as "Jr.".
func SearchTerm(fullName string) string {
	fields := strings.Fields(StripAccents(fullName))
	for i := len(fields) - 1; i >= 0; i-- {
		if _, suffix := generationalSuffixes[strings.ToLower(fields[i])]; suffix && i > 0 {
			continue
		}
		return fields[i]
	}
	return ""
}
