package balldontlie

// Name identifies this directory in logs, metrics and errors.
const Name = "balldontlie"

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

// playerResponse is one search hit. ID is balldontlie's own key; only
// NBAPlayerID is an NBA.com person id.
type playerResponse struct {
	ID          int          `json:"id"`
	NBAPlayerID *int         `json:"nba_player_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Position    string       `json:"position"`
	Team        teamResponse `json:"team"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"full_name"`
}

type metaResponse struct {
	NextCursor *int `json:"next_cursor"`
	PerPage    int  `json:"per_page"`
}
