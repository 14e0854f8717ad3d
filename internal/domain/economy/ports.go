package economy

import (
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GameState is the slice of the galaxy ledger the economy engine reads and,
// through ExecuteSpendingPlan, mutates. *galaxy.State satisfies it.
type GameState interface {
	// Player looks up a player by id
	Player(id shared.PlayerID) (*galaxy.Player, bool)

	// Players returns all players in seating order
	Players() []*galaxy.Player

	// PlayerPlanets returns a player's planets in acquisition order
	PlayerPlanets(id shared.PlayerID) []*galaxy.Planet

	// FindPlanet looks up one of a player's planets by name
	FindPlanet(owner shared.PlayerID, name string) (*galaxy.Planet, bool)
}
