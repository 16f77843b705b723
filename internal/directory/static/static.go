// Package static serves player lookups from an in-memory dataset, either the
// embedded NBA player list or a JSON/YAML file supplied at runtime.
package static

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
	"github.com/preston-bernstein/nba-id-lookup/internal/names"
)

// Name identifies this directory in logs and metrics.
const Name = "static"

//go:embed data/players.json
var embeddedPlayers []byte

// Directory matches queries against a fixed player list, preserving dataset order.
type Directory struct {
	players []players.Player
	folded  []string
}

// New builds a Directory from the embedded dataset.
func New() (*Directory, error) {
	var list []players.Player
	if err := json.Unmarshal(embeddedPlayers, &list); err != nil {
		return nil, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return FromPlayers(list)
}

// Load builds a Directory from a dataset file. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var list []players.Player
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &list)
	default:
		err = json.Unmarshal(data, &list)
	}
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return FromPlayers(list)
}

// FromPlayers validates list and builds a Directory over it. Entries without
// a full name get one from their first and last names.
func FromPlayers(list []players.Player) (*Directory, error) {
	d := &Directory{
		players: make([]players.Player, 0, len(list)),
		folded:  make([]string, 0, len(list)),
	}
	seen := make(map[int]int, len(list))
	for i, p := range list {
		if p.ID < 0 {
			return nil, fmt.Errorf("dataset entry %d: negative id %d", i, p.ID)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("dataset entry %d: id %d already used by entry %d", i, p.ID, prev)
		}
		seen[p.ID] = i

		p.FullName = strings.TrimSpace(p.DisplayName())
		if p.FullName == "" {
			return nil, fmt.Errorf("dataset entry %d: missing name", i)
		}
		d.players = append(d.players, p)
		d.folded = append(d.folded, names.Fold(p.FullName))
	}
	return d, nil
}

// Len reports the number of players in the dataset.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.players)
}

// FindByFullName returns every player whose full name contains fullName,
// ignoring case and accents, in dataset order.
func (d *Directory) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}

	m := names.NewMatcher(fullName)
	var out []players.Player
	for i, folded := range d.folded {
		if m.MatchesFolded(folded) {
			out = append(out, d.players[i])
		}
	}
	return out, nil
}
