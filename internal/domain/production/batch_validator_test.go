package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

func TestBatchCostValidator_ItemsShareOneSnapshot(t *testing.T) {
	// Arrange: 9 available; two dreadnoughts would cost 8 combined, but each
	// item is validated against the untouched snapshot.
	validator, _, playerID := newProductionFixture(t, 3)
	batch := production.NewBatchCostValidator(validator)

	// Act
	results, err := batch.ValidateBatchProductionCosts(playerID, []production.ProductionRequest{
		{UnitType: production.UnitDreadnought, Quantity: 1},
		{UnitType: production.UnitDreadnought, Quantity: 1},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Valid)
		assert.Equal(t, 4, result.RequiredResources)
		assert.Equal(t, 9, result.AvailableResources)
	}
}

func TestBatchCostValidator_CapturesPerItemFailures(t *testing.T) {
	// Arrange
	validator, _, playerID := newProductionFixture(t, 3)
	batch := production.NewBatchCostValidator(validator)

	// Act
	results, err := batch.ValidateBatchProductionCosts(playerID, []production.ProductionRequest{
		{UnitType: UnitTypeUnregistered, Quantity: 1},
		{UnitType: production.UnitPDS, Quantity: 1},
		{UnitType: production.UnitCruiser, Quantity: 1},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.False(t, results[0].Valid)
	assert.Contains(t, results[0].ErrorMessage, "no stats registered")

	assert.False(t, results[1].Valid)
	assert.Contains(t, results[1].ErrorMessage, "cannot be produced")

	assert.True(t, results[2].Valid)
	assert.Equal(t, 2, results[2].RequiredResources)
}

func TestBatchCostValidator_ShortfallAgainstSnapshot(t *testing.T) {
	// Arrange
	validator, _, playerID := newProductionFixture(t, 0)
	batch := production.NewBatchCostValidator(validator)

	// Act
	results, err := batch.ValidateBatchProductionCosts(playerID, []production.ProductionRequest{
		{UnitType: production.UnitWarSun, Quantity: 1},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	assert.Equal(t, 12, results[0].RequiredResources)
	assert.Equal(t, 6, results[0].AvailableResources)
	assert.Equal(t, 6, results[0].Shortfall)
	assert.Nil(t, results[0].SuggestedPlan)
}

func TestBatchCostValidator_UnknownPlayer(t *testing.T) {
	// Arrange
	validator, _, _ := newProductionFixture(t, 3)
	batch := production.NewBatchCostValidator(validator)

	// Act
	_, err := batch.ValidateBatchProductionCosts(shared.MustNewPlayerID(9), []production.ProductionRequest{
		{UnitType: production.UnitCruiser, Quantity: 1},
	})

	// Assert
	var notFound *economy.PlayerNotFoundError
	require.ErrorAs(t, err, &notFound)
}

// UnitTypeUnregistered is deliberately absent from every registry fixture
const UnitTypeUnregistered = production.UnitType("MONUMENT")
