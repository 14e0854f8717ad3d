package galaxy

import "context"

// StateRepository defines persistence operations for the galaxy ledger
type StateRepository interface {
	// LoadState reconstructs the full galaxy state from storage
	LoadState(ctx context.Context) (*State, error)

	// SaveState persists every player and planet, preserving acquisition order
	SaveState(ctx context.Context, state *State) error
}
