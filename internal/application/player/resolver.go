package player

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// Resolver turns a user-supplied player reference (numeric id or name) into
// a PlayerID backed by the saved galaxy.
type Resolver struct {
	stateRepo galaxy.StateRepository
}

// NewResolver creates a Resolver
func NewResolver(stateRepo galaxy.StateRepository) *Resolver {
	return &Resolver{stateRepo: stateRepo}
}

// ResolveByID validates that the given id belongs to a saved player
func (r *Resolver) ResolveByID(ctx context.Context, id int) (shared.PlayerID, error) {
	playerID, err := shared.NewPlayerID(id)
	if err != nil {
		return shared.PlayerID{}, err
	}

	state, err := r.stateRepo.LoadState(ctx)
	if err != nil {
		return shared.PlayerID{}, fmt.Errorf("failed to load game state: %w", err)
	}

	if _, ok := state.Player(playerID); !ok {
		return shared.PlayerID{}, fmt.Errorf("no player with ID %d", id)
	}
	return playerID, nil
}

// ResolveByName looks a player up by exact name
func (r *Resolver) ResolveByName(ctx context.Context, name string) (shared.PlayerID, error) {
	state, err := r.stateRepo.LoadState(ctx)
	if err != nil {
		return shared.PlayerID{}, fmt.Errorf("failed to load game state: %w", err)
	}

	player, ok := state.PlayerByName(name)
	if !ok {
		return shared.PlayerID{}, fmt.Errorf("no player named %q", name)
	}
	return player.ID(), nil
}
