package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/test/helpers"
)

func TestStateRepository_SaveAndLoad(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state := helpers.MustBuildGalaxy(helpers.PlayerSpec{
		ID:           1,
		Name:         "Sol",
		Faction:      "FEDERATION_OF_SOL",
		TradeGoods:   3,
		Commodities:  2,
		Technologies: []string{"SARWEEN_TOOLS"},
		Planets: []helpers.PlanetSpec{
			{Name: "Jord", Resources: 4, Influence: 2},
			{Name: "Wellon", Resources: 1, Influence: 2, Exhausted: true},
		},
	})

	// Act
	err := repo.SaveState(context.Background(), state)
	require.NoError(t, err)

	loaded, err := repo.LoadState(context.Background())
	require.NoError(t, err)

	// Assert
	playerID, err := shared.NewPlayerID(1)
	require.NoError(t, err)

	player, ok := loaded.Player(playerID)
	require.True(t, ok)
	assert.Equal(t, "Sol", player.Name())
	assert.Equal(t, "FEDERATION_OF_SOL", player.Faction())
	assert.Equal(t, 3, player.TradeGoods())
	assert.Equal(t, 2, player.Commodities())
	assert.True(t, player.HasTechnology("SARWEEN_TOOLS"))

	planets := loaded.PlayerPlanets(playerID)
	require.Len(t, planets, 2)
	assert.Equal(t, "Jord", planets[0].Name())
	assert.False(t, planets[0].IsExhausted())
	assert.Equal(t, "Wellon", planets[1].Name())
	assert.True(t, planets[1].IsExhausted())
}

func TestStateRepository_PreservesPlanetOrder(t *testing.T) {
	// Spending allocation walks planets in acquisition order, so the
	// round-trip must not reorder them alphabetically or by value.
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state := helpers.MustBuildGalaxy(helpers.PlayerSpec{
		ID:      1,
		Name:    "Xxcha",
		Faction: "XXCHA_KINGDOM",
		Planets: []helpers.PlanetSpec{
			{Name: "Quann", Resources: 2, Influence: 1},
			{Name: "Archon Ren", Resources: 2, Influence: 3},
			{Name: "Archon Tau", Resources: 1, Influence: 1},
		},
	})

	require.NoError(t, repo.SaveState(context.Background(), state))

	loaded, err := repo.LoadState(context.Background())
	require.NoError(t, err)

	playerID, err := shared.NewPlayerID(1)
	require.NoError(t, err)

	planets := loaded.PlayerPlanets(playerID)
	require.Len(t, planets, 3)
	assert.Equal(t, "Quann", planets[0].Name())
	assert.Equal(t, "Archon Ren", planets[1].Name())
	assert.Equal(t, "Archon Tau", planets[2].Name())
}

func TestStateRepository_SaveOverwritesExhaustion(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state := helpers.MustBuildGalaxy(helpers.TwoPlanetPlayer(1))
	require.NoError(t, repo.SaveState(context.Background(), state))

	playerID, err := shared.NewPlayerID(1)
	require.NoError(t, err)

	planet, found := state.FindPlanet(playerID, "Jord")
	require.True(t, found)
	require.NoError(t, planet.Exhaust())

	// Act - save the mutated state over the previous snapshot
	require.NoError(t, repo.SaveState(context.Background(), state))

	loaded, err := repo.LoadState(context.Background())
	require.NoError(t, err)

	reloaded, found := loaded.FindPlanet(playerID, "Jord")
	require.True(t, found)
	assert.True(t, reloaded.IsExhausted())
}

func TestStateRepository_LoadEmptyDatabase(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.Players())
}

func TestDeleteAllGameData(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state := helpers.MustBuildGalaxy(helpers.TwoPlanetPlayer(1), helpers.TwoPlanetPlayer(2))
	require.NoError(t, repo.SaveState(context.Background(), state))

	// Act
	require.NoError(t, persistence.DeleteAllGameData(context.Background(), db))

	loaded, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded.Players())
}

func TestStateRepository_MultiplePlayers(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormStateRepository(db)

	state := helpers.MustBuildGalaxy(
		helpers.TwoPlanetPlayer(1),
		helpers.PlayerSpec{
			ID:      2,
			Name:    "Muaat",
			Faction: "EMBERS_OF_MUAAT",
			Planets: []helpers.PlanetSpec{
				{Name: "Muaat", Resources: 4, Influence: 1},
			},
		},
	)
	require.NoError(t, repo.SaveState(context.Background(), state))

	loaded, err := repo.LoadState(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Players(), 2)

	secondID, err := shared.NewPlayerID(2)
	require.NoError(t, err)
	assert.Len(t, loaded.PlayerPlanets(secondID), 1)
}
