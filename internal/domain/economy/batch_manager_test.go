package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

func TestBatchResourceManager_PlansShareOneSnapshot(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	batch := economy.NewBatchResourceManager(newManager(state))

	// Act
	plans, err := batch.CreateBatchSpendingPlans(playerID, []economy.SpendingRequest{
		{Resources: 5},
		{Resources: 5},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, plans, 2)
	for _, plan := range plans {
		assert.True(t, plan.IsValid())
		assert.Equal(t, []string{"Jord", "Muaat"}, plan.ResourceSpending().PlanetNames())
		assert.Equal(t, 0, plan.ResourceSpending().TradeGoods())
	}
}

func TestBatchResourceManager_VotingRequestGetsVotingSnapshot(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 5)
	batch := economy.NewBatchResourceManager(newManager(state))

	// Act
	plans, err := batch.CreateBatchSpendingPlans(playerID, []economy.SpendingRequest{
		{Influence: 4, ForVoting: false},
		{Influence: 4, ForVoting: true},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, plans, 2)

	open := plans[0]
	assert.True(t, open.IsValid())
	assert.Equal(t, 1, open.InfluenceSpending().TradeGoods())

	voting := plans[1]
	assert.False(t, voting.IsValid())
	assert.Equal(t, 0, voting.InfluenceSpending().TradeGoods())
	assert.True(t, voting.ForVoting())
}

func TestBatchResourceManager_EmptyRequestList(t *testing.T) {
	// Arrange
	state, playerID := newEconomyFixture(t, 3)
	batch := economy.NewBatchResourceManager(newManager(state))

	// Act
	plans, err := batch.CreateBatchSpendingPlans(playerID, nil)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestBatchResourceManager_UnknownPlayer(t *testing.T) {
	// Arrange
	state, _ := newEconomyFixture(t, 3)
	batch := economy.NewBatchResourceManager(newManager(state))

	// Act
	_, err := batch.CreateBatchSpendingPlans(shared.MustNewPlayerID(9), []economy.SpendingRequest{
		{Resources: 1},
	})

	// Assert
	require.Error(t, err)
	var notFound *economy.PlayerNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
