// Package directory defines the player directory contract: given a full
// name, return zero or more candidate players in the directory's own
// relevance order.
package directory

import (
	"context"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
)

// Directory resolves full names to candidate players.
// An empty, nil-error result means the directory knows no such player.
type Directory interface {
	FindByFullName(ctx context.Context, fullName string) ([]players.Player, error)
}

// Func adapts a plain function to the Directory interface.
type Func func(ctx context.Context, fullName string) ([]players.Player, error)

// FindByFullName calls f.
func (f Func) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	return f(ctx, fullName)
}
