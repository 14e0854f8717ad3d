package economy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

var planTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewSpendingPlan_ValidWhenBothCovered(t *testing.T) {
	// Arrange
	resources := economy.NewResourceSpending([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
	}, 1)
	influence := economy.NewInfluenceSpending([]economy.PlanetContribution{
		{Planet: "Muaat", Amount: 1},
	}, 0)

	// Act
	plan := economy.NewSpendingPlan(shared.MustNewPlayerID(1), resources, influence, 5, 1, false, planTime)

	// Assert
	assert.True(t, plan.IsValid())
	assert.Empty(t, plan.ErrorMessage())
	assert.False(t, plan.ID().IsZero())
	assert.Equal(t, planTime, plan.CreatedAt())
}

func TestNewSpendingPlan_CombinedShortfallMessage(t *testing.T) {
	// Arrange
	resources := economy.NewResourceSpending([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
	}, 2)
	influence := economy.NewInfluenceSpending([]economy.PlanetContribution{
		{Planet: "Muaat", Amount: 1},
	}, 2)

	// Act
	plan := economy.NewSpendingPlan(shared.MustNewPlayerID(1), resources, influence, 10, 9, false, planTime)

	// Assert
	assert.False(t, plan.IsValid())
	assert.Equal(t,
		"insufficient resources: required 10, available 6 (short 4); insufficient influence: required 9, available 3 (short 6)",
		plan.ErrorMessage())
}

func TestNewSpendingPlan_SingleShortfallMessage(t *testing.T) {
	// Arrange
	resources := economy.NewResourceSpending(nil, 2)
	influence := economy.NewInfluenceSpending(nil, 0)

	// Act
	plan := economy.NewSpendingPlan(shared.MustNewPlayerID(1), resources, influence, 3, 0, false, planTime)

	// Assert
	assert.False(t, plan.IsValid())
	assert.Equal(t, "insufficient resources: required 3, available 2 (short 1)", plan.ErrorMessage())
}

func TestSpendingPlan_PlanetsToExhaustDeduplicates(t *testing.T) {
	// Arrange
	resources := economy.NewResourceSpending([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
		{Planet: "Muaat", Amount: 2},
	}, 0)
	influence := economy.NewInfluenceSpending([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 2},
		{Planet: "Wellon", Amount: 1},
	}, 0)

	// Act
	plan := economy.NewSpendingPlan(shared.MustNewPlayerID(1), resources, influence, 6, 3, false, planTime)

	// Assert
	assert.Equal(t, []string{"Jord", "Muaat", "Wellon"}, plan.PlanetsToExhaust())
}

func TestSpendingPlan_TotalTradeGoodsSumsBothDimensions(t *testing.T) {
	// Arrange
	resources := economy.NewResourceSpending(nil, 2)
	influence := economy.NewInfluenceSpending(nil, 3)

	// Act
	plan := economy.NewSpendingPlan(shared.MustNewPlayerID(1), resources, influence, 2, 3, false, planTime)

	// Assert
	assert.Equal(t, 5, plan.TotalTradeGoods())
}

func TestSpendingPlan_NegativeRequestIsTriviallyValid(t *testing.T) {
	// Arrange & Act
	plan := economy.NewSpendingPlan(
		shared.MustNewPlayerID(1),
		economy.NewResourceSpending(nil, 0),
		economy.NewInfluenceSpending(nil, 0),
		-1, 0, false, planTime)

	// Assert
	assert.True(t, plan.IsValid())
	assert.Equal(t, -1, plan.RequestedResources())
}
