package galaxy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

func addTestPlanet(t *testing.T, state *galaxy.State, owner int, name string, resources, influence int) *galaxy.Planet {
	t.Helper()
	planet, err := galaxy.NewPlanet(name, resources, influence)
	require.NoError(t, err)
	require.NoError(t, state.AddPlanet(shared.MustNewPlayerID(owner), planet))
	return planet
}

func TestState_AddAndLookupPlayers(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	alice := newTestPlayer(t, 1, "Alice")
	bob := newTestPlayer(t, 2, "Bob")

	// Act
	require.NoError(t, state.AddPlayer(alice))
	require.NoError(t, state.AddPlayer(bob))

	// Assert
	found, ok := state.Player(shared.MustNewPlayerID(2))
	require.True(t, ok)
	assert.Equal(t, "Bob", found.Name())

	byName, ok := state.PlayerByName("Alice")
	require.True(t, ok)
	assert.Equal(t, 1, byName.ID().Value())

	_, ok = state.Player(shared.MustNewPlayerID(9))
	assert.False(t, ok)
}

func TestState_AddPlayer_Duplicate(t *testing.T) {
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))

	err := state.AddPlayer(newTestPlayer(t, 1, "Impostor"))

	assert.Error(t, err)
}

func TestState_PlanetsKeepAcquisitionOrder(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))

	// Act - acquire in a specific order
	addTestPlanet(t, state, 1, "Jord", 4, 2)
	addTestPlanet(t, state, 1, "Muaat", 2, 1)
	addTestPlanet(t, state, 1, "Wellon", 1, 2)

	// Assert - iteration order matches acquisition order
	planets := state.PlayerPlanets(shared.MustNewPlayerID(1))
	require.Len(t, planets, 3)
	assert.Equal(t, "Jord", planets[0].Name())
	assert.Equal(t, "Muaat", planets[1].Name())
	assert.Equal(t, "Wellon", planets[2].Name())
}

func TestState_AddPlanet_UnknownOwner(t *testing.T) {
	state := galaxy.NewState()
	planet, err := galaxy.NewPlanet("Jord", 4, 2)
	require.NoError(t, err)

	err = state.AddPlanet(shared.MustNewPlayerID(7), planet)

	assert.Error(t, err)
}

func TestState_FindPlanet(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))
	addTestPlanet(t, state, 1, "Jord", 4, 2)

	// Act & Assert
	planet, ok := state.FindPlanet(shared.MustNewPlayerID(1), "Jord")
	require.True(t, ok)
	assert.Equal(t, 4, planet.Resources())

	_, ok = state.FindPlanet(shared.MustNewPlayerID(1), "Muaat")
	assert.False(t, ok)
}

func TestState_TransferPlanet(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 2, "Bob")))
	planet := addTestPlanet(t, state, 1, "Mecatol Rex", 1, 6)
	require.NoError(t, planet.Exhaust())
	addTestPlanet(t, state, 2, "Jord", 4, 2)

	// Act
	err := state.TransferPlanet("Mecatol Rex", shared.MustNewPlayerID(1), shared.MustNewPlayerID(2))

	// Assert - re-parented, exhaustion preserved, appended after Bob's holdings
	require.NoError(t, err)
	assert.Empty(t, state.PlayerPlanets(shared.MustNewPlayerID(1)))

	bobPlanets := state.PlayerPlanets(shared.MustNewPlayerID(2))
	require.Len(t, bobPlanets, 2)
	assert.Equal(t, "Jord", bobPlanets[0].Name())
	assert.Equal(t, "Mecatol Rex", bobPlanets[1].Name())
	assert.True(t, bobPlanets[1].IsExhausted())
}

func TestState_TransferPlanet_NotControlled(t *testing.T) {
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 2, "Bob")))

	err := state.TransferPlanet("Jord", shared.MustNewPlayerID(1), shared.MustNewPlayerID(2))

	assert.Error(t, err)
}

func TestState_ReadyPlayerPlanets(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))
	jord := addTestPlanet(t, state, 1, "Jord", 4, 2)
	muaat := addTestPlanet(t, state, 1, "Muaat", 2, 1)
	addTestPlanet(t, state, 1, "Wellon", 1, 2)
	require.NoError(t, jord.Exhaust())
	require.NoError(t, muaat.Exhaust())

	// Act
	readied, err := state.ReadyPlayerPlanets(shared.MustNewPlayerID(1))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, readied)
	for _, planet := range state.PlayerPlanets(shared.MustNewPlayerID(1)) {
		assert.False(t, planet.IsExhausted())
	}
}

func TestState_ReadyAllPlanets(t *testing.T) {
	// Arrange
	state := galaxy.NewState()
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 1, "Alice")))
	require.NoError(t, state.AddPlayer(newTestPlayer(t, 2, "Bob")))
	jord := addTestPlanet(t, state, 1, "Jord", 4, 2)
	muaat := addTestPlanet(t, state, 2, "Muaat", 2, 1)
	require.NoError(t, jord.Exhaust())
	require.NoError(t, muaat.Exhaust())

	// Act
	readied := state.ReadyAllPlanets()

	// Assert
	assert.Equal(t, 2, readied)
}
