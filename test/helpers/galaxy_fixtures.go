package helpers

import (
	"fmt"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// PlanetSpec describes a planet to place in a test galaxy
type PlanetSpec struct {
	Name      string
	Resources int
	Influence int
	Exhausted bool
}

// PlayerSpec describes a player to place in a test galaxy
type PlayerSpec struct {
	ID           int
	Name         string
	Faction      string
	TradeGoods   int
	Commodities  int
	Technologies []string
	Planets      []PlanetSpec
}

// BuildGalaxy assembles a game state from player specs
func BuildGalaxy(players ...PlayerSpec) (*galaxy.State, error) {
	state := galaxy.NewState()

	for _, spec := range players {
		id, err := shared.NewPlayerID(spec.ID)
		if err != nil {
			return nil, err
		}

		player := galaxy.ReconstructPlayer(
			id, spec.Name, spec.Faction,
			spec.TradeGoods, spec.Commodities, spec.Technologies,
		)
		if err := state.AddPlayer(player); err != nil {
			return nil, err
		}

		for _, p := range spec.Planets {
			planet := galaxy.ReconstructPlanet(p.Name, p.Resources, p.Influence, galaxy.TraitNone, p.Exhausted)
			if err := state.AddPlanet(id, planet); err != nil {
				return nil, err
			}
		}
	}

	return state, nil
}

// MustBuildGalaxy is BuildGalaxy for fixtures known to be well-formed
func MustBuildGalaxy(players ...PlayerSpec) *galaxy.State {
	state, err := BuildGalaxy(players...)
	if err != nil {
		panic(fmt.Errorf("bad galaxy fixture: %w", err))
	}
	return state
}

// TwoPlanetPlayer is the baseline single-player economy: Jord (4/2),
// Muaat (2/1) and three trade goods.
func TwoPlanetPlayer(playerID int) PlayerSpec {
	return PlayerSpec{
		ID:         playerID,
		Name:       fmt.Sprintf("Player %d", playerID),
		Faction:    "FEDERATION_OF_SOL",
		TradeGoods: 3,
		Planets: []PlanetSpec{
			{Name: "Jord", Resources: 4, Influence: 2},
			{Name: "Muaat", Resources: 2, Influence: 1},
		},
	}
}
