package nbastats

import "time"

// Name identifies the source in errors.
const Name = "nbastats"

const (
	defaultBaseURL     = "https://stats.nba.com/stats"
	defaultSeason      = "2024-25"
	defaultHTTPTimeout = 60 * time.Second

	// stats.nba.com rejects requests that do not look like they come from nba.com.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	referer   = "https://www.nba.com/"
	origin    = "https://www.nba.com"
)

const (
	colPersonID      = "PERSON_ID"
	colLastCommaName = "DISPLAY_LAST_COMMA_FIRST"
	colFirstLastName = "DISPLAY_FIRST_LAST"
	colRosterStatus  = "ROSTERSTATUS"
	colTeam          = "TEAM_ABBREVIATION"
)
