package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// newEconomyFixture builds a single-player state with Jord (4/2) and
// Muaat (2/1) and the given trade-good balance.
func newEconomyFixture(t *testing.T, tradeGoods int) (*galaxy.State, shared.PlayerID) {
	t.Helper()

	state := galaxy.NewState()
	playerID := shared.MustNewPlayerID(1)
	player, err := galaxy.NewPlayer(playerID, "Hegemon", "FEDERATION_OF_SOL")
	require.NoError(t, err)
	require.NoError(t, player.GainTradeGoods(tradeGoods))
	require.NoError(t, state.AddPlayer(player))

	addFixturePlanet(t, state, playerID, "Jord", 4, 2)
	addFixturePlanet(t, state, playerID, "Muaat", 2, 1)

	return state, playerID
}

func addFixturePlanet(t *testing.T, state *galaxy.State, owner shared.PlayerID, name string, resources, influence int) *galaxy.Planet {
	t.Helper()

	planet, err := galaxy.NewPlanet(name, resources, influence)
	require.NoError(t, err)
	require.NoError(t, state.AddPlanet(owner, planet))
	return planet
}

func newManager(state *galaxy.State) *economy.ResourceManager {
	return economy.NewResourceManager(state, shared.NewMockClock(planTime))
}

func requirePlanet(t *testing.T, state *galaxy.State, owner shared.PlayerID, name string) *galaxy.Planet {
	t.Helper()

	planet, found := state.FindPlanet(owner, name)
	require.True(t, found)
	return planet
}

func TestResourceManager_AvailableResources(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	available, err := manager.AvailableResources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9, available)
}

func TestResourceManager_AvailableResources_ExhaustedPlanetExcluded(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 1)
	require.NoError(t, requirePlanet(t, state, playerID, "Jord").Exhaust())
	manager := newManager(state)

	// Act
	available, err := manager.AvailableResources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, available)
}

func TestResourceManager_AvailableResources_UnknownPlayer(t *testing.T) {
	// Arrange
	state, _ := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	_, err := manager.AvailableResources(shared.MustNewPlayerID(9))

	// Assert
	require.Error(t, err)
	var notFound *economy.PlayerNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 9, notFound.PlayerID.Value())
	assert.Equal(t, "available_resources", notFound.Operation)
	assert.Equal(t, planTime, notFound.Timestamp)
}

func TestResourceManager_AvailableInfluence(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	available, err := manager.AvailableInfluence(playerID, false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 6, available)
}

func TestResourceManager_AvailableInfluence_VotingExcludesTradeGoods(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	available, err := manager.AvailableInfluence(playerID, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, available)
}

func TestResourceManager_ResourceSources_OmitsExhaustedAndZeroValue(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	addFixturePlanet(t, state, playerID, "Xanhact", 0, 1)
	require.NoError(t, requirePlanet(t, state, playerID, "Muaat").Exhaust())
	manager := newManager(state)

	// Act
	sources, err := manager.ResourceSources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []economy.PlanetContribution{{Planet: "Jord", Amount: 4}}, sources.Planets())
	assert.Equal(t, 3, sources.TradeGoods())
	assert.Equal(t, 7, sources.Total())
}

func TestResourceManager_InfluenceSources_VotingHasNoTradeGoods(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	sources, err := manager.InfluenceSources(playerID, true)

	// Assert
	require.NoError(t, err)
	assert.True(t, sources.ForVoting())
	assert.Equal(t, 0, sources.TradeGoods())
	assert.Equal(t, []economy.PlanetContribution{
		{Planet: "Jord", Amount: 2},
		{Planet: "Muaat", Amount: 1},
	}, sources.Planets())
}

func TestResourceManager_CreateSpendingPlan_ZeroRequestIsEmptyAndValid(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	plan, err := manager.CreateSpendingPlan(playerID, 0, 0, false)

	// Assert
	require.NoError(t, err)
	assert.True(t, plan.IsValid())
	assert.Empty(t, plan.PlanetsToExhaust())
	assert.Equal(t, 0, plan.TotalTradeGoods())
}

func TestResourceManager_CreateSpendingPlan_WholePlanetOvershoot(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 1)
	manager := newManager(state)

	// Act
	plan, err := manager.CreateSpendingPlan(playerID, 5, 0, false)

	// Assert
	require.NoError(t, err)
	assert.True(t, plan.IsValid())
	assert.Equal(t, []economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
		{Planet: "Muaat", Amount: 2},
	}, plan.ResourceSpending().Planets())
	assert.Equal(t, 0, plan.ResourceSpending().TradeGoods())
	assert.Equal(t, 6, plan.ResourceSpending().Total())
}

func TestResourceManager_CreateSpendingPlan_TradeGoodsCoverShortfall(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	plan, err := manager.CreateSpendingPlan(playerID, 8, 0, false)

	// Assert
	require.NoError(t, err)
	assert.True(t, plan.IsValid())
	assert.Equal(t, 2, plan.ResourceSpending().TradeGoods())
	assert.Equal(t, 8, plan.ResourceSpending().Total())
}

func TestResourceManager_CreateSpendingPlan_InvalidCarriesShortfall(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	plan, err := manager.CreateSpendingPlan(playerID, 12, 0, false)

	// Assert
	require.NoError(t, err)
	assert.False(t, plan.IsValid())
	assert.Equal(t, "insufficient resources: required 12, available 9 (short 3)", plan.ErrorMessage())
}

func TestResourceManager_CreateSpendingPlan_ValidityMatchesAvailability(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	cases := []struct {
		name      string
		resources int
		influence int
		forVoting bool
	}{
		{"both coverable", 9, 6, false},
		{"resources short", 10, 0, false},
		{"influence short", 0, 7, false},
		{"voting trims influence", 0, 4, true},
		{"voting planets only", 0, 3, true},
		{"zero request", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			plan, err := manager.CreateSpendingPlan(playerID, tc.resources, tc.influence, tc.forVoting)
			require.NoError(t, err)

			availableResources, err := manager.AvailableResources(playerID)
			require.NoError(t, err)
			availableInfluence, err := manager.AvailableInfluence(playerID, tc.forVoting)
			require.NoError(t, err)

			// Assert
			expected := availableResources >= tc.resources && availableInfluence >= tc.influence
			assert.Equal(t, expected, plan.IsValid())
		})
	}
}

func TestResourceManager_CreateSpendingPlan_VotingInfluenceSpendsNoTradeGoods(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 5)
	manager := newManager(state)

	// Act
	plan, err := manager.CreateSpendingPlan(playerID, 0, 4, true)

	// Assert
	require.NoError(t, err)
	assert.False(t, plan.IsValid())
	assert.Equal(t, 0, plan.InfluenceSpending().TradeGoods())
	assert.Equal(t, "insufficient influence: required 4, available 3 (short 1)", plan.ErrorMessage())
}

func TestResourceManager_CanAffordSpending(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	affordable, err := manager.CanAffordSpending(playerID, 9, 6, false)
	require.NoError(t, err)
	tooMuch, err := manager.CanAffordSpending(playerID, 9, 7, false)
	require.NoError(t, err)

	// Assert
	assert.True(t, affordable)
	assert.False(t, tooMuch)
}

func TestResourceManager_ExecuteSpendingPlan_ExhaustsPlanets(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 5, 0, false)
	require.NoError(t, err)

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.True(t, result.Success)
	assert.Equal(t, []string{"Jord", "Muaat"}, result.PlanetsExhausted)
	assert.Equal(t, 0, result.TradeGoodsSpent)
	assert.True(t, requirePlanet(t, state, playerID, "Jord").IsExhausted())
	assert.True(t, requirePlanet(t, state, playerID, "Muaat").IsExhausted())

	player, ok := state.Player(playerID)
	require.True(t, ok)
	assert.Equal(t, 3, player.TradeGoods())
}

func TestResourceManager_ExecuteSpendingPlan_SharedPlanetExhaustedOnce(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 0)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 4, 2, false)
	require.NoError(t, err)
	require.True(t, plan.IsValid())

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.True(t, result.Success)
	assert.Equal(t, []string{"Jord"}, result.PlanetsExhausted)
	assert.True(t, requirePlanet(t, state, playerID, "Jord").IsExhausted())
	assert.False(t, requirePlanet(t, state, playerID, "Muaat").IsExhausted())
}

func TestResourceManager_ExecuteSpendingPlan_DeductsTradeGoodsLast(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 8, 0, false)
	require.NoError(t, err)

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.True(t, result.Success)
	assert.Equal(t, 2, result.TradeGoodsSpent)

	player, ok := state.Player(playerID)
	require.True(t, ok)
	assert.Equal(t, 1, player.TradeGoods())
}

func TestResourceManager_ExecuteSpendingPlan_InvalidPlanLeavesStateUntouched(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 12, 0, false)
	require.NoError(t, err)
	require.False(t, plan.IsValid())

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.False(t, result.Success)
	assert.Equal(t, plan.ErrorMessage(), result.ErrorMessage)
	assert.False(t, requirePlanet(t, state, playerID, "Jord").IsExhausted())
	assert.False(t, requirePlanet(t, state, playerID, "Muaat").IsExhausted())

	player, ok := state.Player(playerID)
	require.True(t, ok)
	assert.Equal(t, 3, player.TradeGoods())
}

func TestResourceManager_ExecuteSpendingPlan_RollsBackOnExhaustionConflict(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 5, 0, false)
	require.NoError(t, err)

	// Muaat is exhausted by another effect between planning and execution
	require.NoError(t, requirePlanet(t, state, playerID, "Muaat").Exhaust())

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "already exhausted")
	assert.False(t, requirePlanet(t, state, playerID, "Jord").IsExhausted())
	assert.True(t, requirePlanet(t, state, playerID, "Muaat").IsExhausted())

	player, ok := state.Player(playerID)
	require.True(t, ok)
	assert.Equal(t, 3, player.TradeGoods())
}

func TestResourceManager_ExecuteSpendingPlan_RollsBackWhenTradeGoodsShort(t *testing.T) {
	// Arrange: both dimensions claim the same two trade goods, so the
	// combined demand exceeds the balance even though the plan is valid.
	state := galaxy.NewState()
	playerID := shared.MustNewPlayerID(1)
	player, err := galaxy.NewPlayer(playerID, "Hegemon", "FEDERATION_OF_SOL")
	require.NoError(t, err)
	require.NoError(t, player.GainTradeGoods(2))
	require.NoError(t, state.AddPlayer(player))
	addFixturePlanet(t, state, playerID, "Quann", 1, 1)

	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 3, 3, false)
	require.NoError(t, err)
	require.True(t, plan.IsValid())
	require.Equal(t, 4, plan.TotalTradeGoods())

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "insufficient trade goods")
	assert.False(t, requirePlanet(t, state, playerID, "Quann").IsExhausted())
	assert.Equal(t, 2, player.TradeGoods())
}

func TestResourceManager_ExecuteSpendingPlan_MissingPlanetRollsBack(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	rival, err := galaxy.NewPlayer(shared.MustNewPlayerID(2), "Usurper", "EMIRATES_OF_HACAN")
	require.NoError(t, err)
	require.NoError(t, state.AddPlayer(rival))

	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, 5, 0, false)
	require.NoError(t, err)

	// Muaat changes hands between planning and execution
	require.NoError(t, state.TransferPlanet("Muaat", playerID, rival.ID()))

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "planet Muaat not found")
	assert.False(t, requirePlanet(t, state, playerID, "Jord").IsExhausted())
}

func TestResourceManager_ExecuteSpendingPlan_UnknownPlayerFails(t *testing.T) {
	// Arrange
	state, _ := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan := economy.NewSpendingPlan(
		shared.MustNewPlayerID(9),
		economy.NewResourceSpending(nil, 0),
		economy.NewInfluenceSpending(nil, 0),
		0, 0, false, planTime)

	// Act
	result := manager.ExecuteSpendingPlan(plan)

	// Assert
	require.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "player 9 not found")
}

func TestResourceManager_ExecuteSpendingPlan_NilPlanFails(t *testing.T) {
	// Arrange
	state, _ := newEconomyFixture(t, 3)
	manager := newManager(state)

	// Act
	result := manager.ExecuteSpendingPlan(nil)

	// Assert
	require.False(t, result.Success)
	assert.Equal(t, "no spending plan provided", result.ErrorMessage)
}

func TestResourceManager_ExecuteSpendingPlan_NegativeRequestPanics(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	manager := newManager(state)
	plan, err := manager.CreateSpendingPlan(playerID, -1, 0, false)
	require.NoError(t, err)
	require.True(t, plan.IsValid())

	// Act
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		manager.ExecuteSpendingPlan(plan)
	}()

	// Assert
	require.NotNil(t, recovered)
	violation, ok := recovered.(*economy.IntegrityViolationError)
	require.True(t, ok)
	assert.Equal(t, -1, violation.RequestedResources)
	assert.Equal(t, 0, violation.RequestedInfluence)
}
