package production

import (
	"fmt"
	"math"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/pkg/utils"
)

// CostValidator computes modifier-adjusted unit costs and checks them
// against a player's spendable resources
type CostValidator struct {
	registry *StatsRegistry
	planner  ResourcePlanner
}

// NewCostValidator creates a CostValidator over the given cost table and
// spending engine
func NewCostValidator(registry *StatsRegistry, planner ResourcePlanner) *CostValidator {
	return &CostValidator{
		registry: registry,
		planner:  planner,
	}
}

// UnitCost returns the cost of one unit after faction and technology
// deltas. Deltas are summed, so stacking order never matters. The result is
// clamped at zero; a non-finite result means the modifier table itself is
// broken and surfaces as a CostCalculationError.
func (v *CostValidator) UnitCost(unitType UnitType, faction string, technologies []string) (float64, error) {
	stats, ok := v.registry.BaseStats(unitType)
	if !ok {
		return 0, NewUnknownUnitTypeError(unitType)
	}

	cost := stats.Cost
	if delta, ok := v.registry.FactionModifier(faction, unitType); ok {
		cost += delta
	}
	for _, technology := range technologies {
		if delta, ok := v.registry.TechnologyModifier(technology, unitType); ok {
			cost += delta
		}
	}

	if cost < 0 {
		cost = 0
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, NewCostCalculationError(unitType, cost, faction, technologies)
	}
	return cost, nil
}

// ProductionCost computes the total cost of producing quantity units. Dual
// production applies only to dual-capable types requested in quantity
// exactly two: both units come out for the price of one.
func (v *CostValidator) ProductionCost(unitType UnitType, quantity int, faction string, technologies []string) (*ProductionCost, error) {
	stats, ok := v.registry.BaseStats(unitType)
	if !ok {
		return nil, NewUnknownUnitTypeError(unitType)
	}
	modified, err := v.UnitCost(unitType, faction, technologies)
	if err != nil {
		return nil, err
	}

	dual := unitType.IsDualCapable() && quantity == 2
	unitsProduced := quantity
	totalCost := modified * float64(quantity)
	if dual {
		unitsProduced = 2
		totalCost = modified
	}

	return &ProductionCost{
		UnitType:         unitType,
		BaseCost:         stats.Cost,
		ModifiedCost:     modified,
		Quantity:         quantity,
		UnitsProduced:    unitsProduced,
		TotalCost:        totalCost,
		IsDualProduction: dual,
	}, nil
}

func (v *CostValidator) validate(playerID shared.PlayerID, cost *ProductionCost, exemptZeroCost bool) (*CostValidationResult, error) {
	if cost.TotalCost == 0 && !exemptZeroCost {
		notProducible := NewNotProducibleError(cost.UnitType)
		return &CostValidationResult{
			Valid:        false,
			ErrorMessage: notProducible.Error(),
		}, nil
	}

	required := int(math.Ceil(cost.TotalCost))
	available, err := v.planner.AvailableResources(playerID)
	if err != nil {
		return nil, err
	}

	if available < required {
		shortfall := economy.NewInsufficientSourcesError("resources", required, available)
		return &CostValidationResult{
			Valid:              false,
			RequiredResources:  required,
			AvailableResources: available,
			Shortfall:          required - available,
			ErrorMessage:       shortfall.Error(),
		}, nil
	}

	plan, err := v.planner.CreateSpendingPlan(playerID, required, 0, false)
	if err != nil {
		return nil, err
	}

	return &CostValidationResult{
		Valid:              true,
		RequiredResources:  required,
		AvailableResources: available,
		SuggestedPlan:      plan,
	}, nil
}

// ValidateProductionCost checks a cost against the player's resources.
// Fractional totals round up, since planets and trade goods only come in
// whole units. On success the result carries a suggested spending plan for
// the required amount.
func (v *CostValidator) ValidateProductionCost(playerID shared.PlayerID, cost *ProductionCost) (*CostValidationResult, error) {
	return v.validate(playerID, cost, false)
}

// ValidateProductionCostWithReinforcements additionally checks that enough
// units remain in the player's reinforcements. Both failure messages are
// combined when both checks fail.
func (v *CostValidator) ValidateProductionCostWithReinforcements(
	playerID shared.PlayerID,
	cost *ProductionCost,
	availableReinforcements int,
) (*CostValidationResult, error) {
	result, err := v.validate(playerID, cost, false)
	if err != nil {
		return nil, err
	}

	reinforcementShortfall := utils.Max(0, cost.UnitsProduced-availableReinforcements)
	if reinforcementShortfall == 0 {
		return result, nil
	}

	message := fmt.Sprintf("insufficient reinforcements: need %d, have %d",
		cost.UnitsProduced, availableReinforcements)
	if result.ErrorMessage != "" {
		message = result.ErrorMessage + "; " + message
	}

	result.Valid = false
	result.ReinforcementShortfall = reinforcementShortfall
	result.ErrorMessage = message
	return result, nil
}

// ValidateProductionCostWithConstructionExemption is ValidateProductionCost
// with the zero-cost rejection waived, for effects that place structures
// outside standard production. Non-zero costs go through the normal checks.
func (v *CostValidator) ValidateProductionCostWithConstructionExemption(
	playerID shared.PlayerID,
	cost *ProductionCost,
) (*CostValidationResult, error) {
	return v.validate(playerID, cost, true)
}
