package nbastats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

type columns struct {
	id, lastComma, firstLast, status, team int
}

func resolveColumns(headers []string) (columns, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	lookup := func(name string) (int, error) {
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("nbastats: missing column %s", name)
		}
		return i, nil
	}

	var cols columns
	var err error
	if cols.id, err = lookup(colPersonID); err != nil {
		return columns{}, err
	}
	if cols.lastComma, err = lookup(colLastCommaName); err != nil {
		return columns{}, err
	}
	if cols.firstLast, err = lookup(colFirstLastName); err != nil {
		return columns{}, err
	}
	if cols.status, err = lookup(colRosterStatus); err != nil {
		return columns{}, err
	}
	cols.team = -1
	if i, ok := index[colTeam]; ok {
		cols.team = i
	}
	return cols, nil
}

// mapRow converts one commonallplayers row. "James, LeBron" yields first name
// LeBron and last name James; a single-word name such as "Nenê" keeps an
// empty last name.
func mapRow(row []json.RawMessage, cols columns) (players.Player, error) {
	id, err := intCell(row, cols.id)
	if err != nil {
		return players.Player{}, fmt.Errorf("nbastats: %s: %w", colPersonID, err)
	}
	lastComma := stringCell(row, cols.lastComma)
	full := stringCell(row, cols.firstLast)

	first, last := lastComma, ""
	if i := strings.Index(lastComma, ","); i >= 0 {
		last = strings.TrimSpace(lastComma[:i])
		first = strings.TrimSpace(lastComma[i+1:])
	}
	if full == "" {
		full = strings.TrimSpace(first + " " + last)
	}

	status, _ := intCell(row, cols.status)
	return players.Player{
		ID:        id,
		FullName:  full,
		FirstName: first,
		LastName:  last,
		IsActive:  status == 1,
		Team:      stringCell(row, cols.team),
	}, nil
}

func stringCell(row []json.RawMessage, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// intCell accepts both numeric and quoted numeric cells.
func intCell(row []json.RawMessage, i int) (int, error) {
	if i < 0 || i >= len(row) {
		return 0, fmt.Errorf("column %d out of range", i)
	}
	var n json.Number
	if err := json.Unmarshal(row[i], &n); err == nil {
		v, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, err
		}
		return v, nil
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err != nil {
		return 0, fmt.Errorf("unexpected value %s", string(row[i]))
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
