package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

func newCachedManager(t *testing.T, tradeGoods int) (*economy.CachedResourceManager, *economy.ResourceManager, shared.PlayerID) {
	t.Helper()

	state, playerID := newEconomyFixture(t, tradeGoods)
	cached := economy.NewCachedResourceManager(state, shared.NewMockClock(planTime))
	plain := economy.NewResourceManager(state, shared.NewMockClock(planTime))
	return cached, plain, playerID
}

func TestCachedResourceManager_MatchesUncachedAnswers(t *testing.T) {
	// Arrange
	cached, plain, playerID := newCachedManager(t, 3)

	// Act & Assert
	for i := 0; i < 3; i++ {
		cachedResources, err := cached.AvailableResources(playerID)
		require.NoError(t, err)
		plainResources, err := plain.AvailableResources(playerID)
		require.NoError(t, err)
		assert.Equal(t, plainResources, cachedResources)

		cachedInfluence, err := cached.AvailableInfluence(playerID, true)
		require.NoError(t, err)
		plainInfluence, err := plain.AvailableInfluence(playerID, true)
		require.NoError(t, err)
		assert.Equal(t, plainInfluence, cachedInfluence)

		cachedSources, err := cached.ResourceSources(playerID)
		require.NoError(t, err)
		plainSources, err := plain.ResourceSources(playerID)
		require.NoError(t, err)
		assert.Equal(t, plainSources.Planets(), cachedSources.Planets())
		assert.Equal(t, plainSources.TradeGoods(), cachedSources.TradeGoods())
	}
}

func TestCachedResourceManager_CountsHitsAndMisses(t *testing.T) {
	// Arrange
	cached, _, playerID := newCachedManager(t, 3)

	// Act
	_, err := cached.AvailableResources(playerID)
	require.NoError(t, err)
	_, err = cached.AvailableResources(playerID)
	require.NoError(t, err)
	_, err = cached.AvailableResources(playerID)
	require.NoError(t, err)

	// Assert
	stats := cached.Stats()
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestCachedResourceManager_SeparateKeysPerFlagAndPlayer(t *testing.T) {
	// Arrange
	cached, _, playerID := newCachedManager(t, 3)

	// Act
	votingTotal, err := cached.AvailableInfluence(playerID, true)
	require.NoError(t, err)
	openTotal, err := cached.AvailableInfluence(playerID, false)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 3, votingTotal)
	assert.Equal(t, 6, openTotal)
	stats := cached.Stats()
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
	assert.Equal(t, 2, stats.Entries)
}

func TestCachedResourceManager_InvalidatesAfterPlanetMutation(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	cached := economy.NewCachedResourceManager(state, shared.NewMockClock(planTime))

	before, err := cached.AvailableResources(playerID)
	require.NoError(t, err)
	require.Equal(t, 9, before)

	// Act
	require.NoError(t, requirePlanet(t, state, playerID, "Jord").Exhaust())
	after, err := cached.AvailableResources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, after)
	stats := cached.Stats()
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
}

func TestCachedResourceManager_InvalidatesAfterTradeGoodMutation(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	cached := economy.NewCachedResourceManager(state, shared.NewMockClock(planTime))

	before, err := cached.AvailableResources(playerID)
	require.NoError(t, err)
	require.Equal(t, 9, before)

	player, ok := state.Player(playerID)
	require.True(t, ok)

	// Act
	require.NoError(t, player.GainTradeGoods(2))
	after, err := cached.AvailableResources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 11, after)
}

func TestCachedResourceManager_ExecutionInvalidatesThroughFingerprint(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	cached := economy.NewCachedResourceManager(state, shared.NewMockClock(planTime))

	before, err := cached.AvailableResources(playerID)
	require.NoError(t, err)
	require.Equal(t, 9, before)

	plan, err := cached.CreateSpendingPlan(playerID, 4, 0, false)
	require.NoError(t, err)

	// Act
	result := cached.ExecuteSpendingPlan(plan)
	require.True(t, result.Success)
	after, err := cached.AvailableResources(playerID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, after)
}

func TestCachedResourceManager_ErrorsAreNotCached(t *testing.T) {
	// Arrange
	cached, _, _ := newCachedManager(t, 3)
	unknown := shared.MustNewPlayerID(9)

	// Act
	_, firstErr := cached.AvailableResources(unknown)
	_, secondErr := cached.AvailableResources(unknown)

	// Assert
	require.Error(t, firstErr)
	require.Error(t, secondErr)
	stats := cached.Stats()
	assert.Equal(t, 0, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
	assert.Equal(t, 0, stats.Entries)
}

func TestCachedResourceManager_ClearCacheKeepsCounters(t *testing.T) {
	// Arrange
	cached, _, playerID := newCachedManager(t, 3)
	_, err := cached.AvailableResources(playerID)
	require.NoError(t, err)
	_, err = cached.AvailableResources(playerID)
	require.NoError(t, err)

	// Act
	cached.ClearCache()

	// Assert
	stats := cached.Stats()
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 0, stats.Entries)
}

func TestCachedResourceManager_CanAffordSpendingUsesCache(t *testing.T) {
	// Arrange
	cached, _, playerID := newCachedManager(t, 3)

	// Act
	first, err := cached.CanAffordSpending(playerID, 9, 6, false)
	require.NoError(t, err)
	second, err := cached.CanAffordSpending(playerID, 9, 6, false)
	require.NoError(t, err)

	// Assert
	assert.True(t, first)
	assert.True(t, second)
	stats := cached.Stats()
	assert.Equal(t, 2, stats.Hits)
	assert.Equal(t, 2, stats.Misses)
}
