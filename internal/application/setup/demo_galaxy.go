package setup

import (
	"fmt"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// demoPlayer describes one seeded player and their starting holdings
type demoPlayer struct {
	id           int
	name         string
	faction      string
	tradeGoods   int
	commodities  int
	technologies []string
	planets      []demoPlanet
}

type demoPlanet struct {
	name      string
	resources int
	influence int
	trait     galaxy.PlanetTrait
}

// demoRoster is the fixture table: three players, each with a home system
// and a couple of annexed planets. Planet order matters — spending plans
// iterate holdings in acquisition order.
var demoRoster = []demoPlayer{
	{
		id:         1,
		name:       "Sol",
		faction:    "FEDERATION_OF_SOL",
		tradeGoods: 3,
		planets: []demoPlanet{
			{name: "Jord", resources: 4, influence: 2},
			{name: "Wellon", resources: 1, influence: 2, trait: galaxy.TraitIndustrial},
			{name: "Vefut II", resources: 2, influence: 2, trait: galaxy.TraitHazardous},
		},
	},
	{
		id:          2,
		name:        "Muaat",
		faction:     "EMBERS_OF_MUAAT",
		tradeGoods:  1,
		commodities: 4,
		technologies: []string{
			"PROTOTYPE_WAR_SUN_II",
		},
		planets: []demoPlanet{
			{name: "Muaat", resources: 4, influence: 1},
			{name: "Lazar", resources: 1, influence: 0, trait: galaxy.TraitIndustrial},
			{name: "Sakulag", resources: 2, influence: 1, trait: galaxy.TraitHazardous},
		},
	},
	{
		id:         3,
		name:       "Xxcha",
		faction:    "XXCHA_KINGDOM",
		tradeGoods: 2,
		planets: []demoPlanet{
			{name: "Archon Ren", resources: 2, influence: 3},
			{name: "Archon Tau", resources: 1, influence: 1},
			{name: "Quann", resources: 2, influence: 1, trait: galaxy.TraitCultural},
		},
	},
}

// SeedDemoGalaxy builds the deterministic three-player fixture galaxy used
// by `imperium game seed`, the bench driver and the BDD backgrounds. Every
// planet starts ready.
func SeedDemoGalaxy() (*galaxy.State, error) {
	state := galaxy.NewState()

	for _, entry := range demoRoster {
		id, err := shared.NewPlayerID(entry.id)
		if err != nil {
			return nil, err
		}

		player, err := galaxy.NewPlayer(id, entry.name, entry.faction)
		if err != nil {
			return nil, fmt.Errorf("failed to build demo player %s: %w", entry.name, err)
		}
		if entry.tradeGoods > 0 {
			if err := player.GainTradeGoods(entry.tradeGoods); err != nil {
				return nil, err
			}
		}
		if entry.commodities > 0 {
			if err := player.GainCommodities(entry.commodities); err != nil {
				return nil, err
			}
		}
		for _, tech := range entry.technologies {
			player.GainTechnology(tech)
		}

		if err := state.AddPlayer(player); err != nil {
			return nil, err
		}

		for _, p := range entry.planets {
			trait := p.trait
			if trait == "" {
				trait = galaxy.TraitNone
			}
			planet, err := galaxy.NewPlanetWithTrait(p.name, p.resources, p.influence, trait)
			if err != nil {
				return nil, fmt.Errorf("failed to build demo planet %s: %w", p.name, err)
			}
			if err := state.AddPlanet(id, planet); err != nil {
				return nil, err
			}
		}
	}

	return state, nil
}
