package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
)

func TestResourceSources_Totals(t *testing.T) {
	// Arrange
	sources := economy.NewResourceSources([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
		{Planet: "Muaat", Amount: 2},
	}, 3)

	// Act & Assert
	assert.Equal(t, 6, sources.PlanetTotal())
	assert.Equal(t, 3, sources.TradeGoods())
	assert.Equal(t, 9, sources.Total())
}

func TestResourceSources_PlanetsReturnsCopy(t *testing.T) {
	// Arrange
	sources := economy.NewResourceSources([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
	}, 0)

	// Act
	planets := sources.Planets()
	planets[0].Amount = 99

	// Assert
	assert.Equal(t, 4, sources.Planets()[0].Amount)
	assert.Equal(t, 4, sources.PlanetTotal())
}

func TestInfluenceSources_Totals(t *testing.T) {
	// Arrange
	sources := economy.NewInfluenceSources([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 2},
		{Planet: "Muaat", Amount: 1},
	}, 3, false)

	// Act & Assert
	assert.Equal(t, 3, sources.PlanetTotal())
	assert.Equal(t, 3, sources.TradeGoods())
	assert.Equal(t, 6, sources.Total())
	assert.False(t, sources.ForVoting())
}

func TestInfluenceSources_VotingExcludesTradeGoods(t *testing.T) {
	// Arrange & Act
	sources := economy.NewInfluenceSources([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 2},
	}, 5, true)

	// Assert
	assert.True(t, sources.ForVoting())
	assert.Equal(t, 0, sources.TradeGoods())
	assert.Equal(t, 2, sources.Total())
}

func TestResourceSpending_TotalAndNames(t *testing.T) {
	// Arrange
	spending := economy.NewResourceSpending([]economy.PlanetContribution{
		{Planet: "Jord", Amount: 4},
		{Planet: "Muaat", Amount: 2},
	}, 1)

	// Act & Assert
	assert.Equal(t, 7, spending.Total())
	assert.Equal(t, []string{"Jord", "Muaat"}, spending.PlanetNames())
	assert.Equal(t, 1, spending.TradeGoods())
}

func TestInfluenceSpending_EmptyIsZero(t *testing.T) {
	// Arrange & Act
	spending := economy.NewInfluenceSpending(nil, 0)

	// Assert
	assert.Equal(t, 0, spending.Total())
	assert.Empty(t, spending.PlanetNames())
}
