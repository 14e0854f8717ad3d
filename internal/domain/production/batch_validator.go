package production

import (
	"math"

	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ProductionRequest is one entry in a batch validation
type ProductionRequest struct {
	UnitType     UnitType
	Quantity     int
	Faction      string
	Technologies []string
}

// BatchCostValidator validates many production requests against a single
// snapshot of a player's resources. Requests describe alternatives, not a
// sequence: an earlier item's not-yet-committed spending never shrinks what
// a later item is checked against.
type BatchCostValidator struct {
	validator *CostValidator
}

// NewBatchCostValidator creates a batch validator over the given validator
func NewBatchCostValidator(validator *CostValidator) *BatchCostValidator {
	return &BatchCostValidator{validator: validator}
}

// ValidateBatchProductionCosts fetches the player's available resources once
// and validates every request against that fixed amount. A per-item
// computation failure is captured in that item's result; the rest of the
// batch still runs. Batch results carry no suggested plans, since a plan
// built from the snapshot could not see the other items' claims.
func (b *BatchCostValidator) ValidateBatchProductionCosts(
	playerID shared.PlayerID,
	requests []ProductionRequest,
) ([]*CostValidationResult, error) {
	available, err := b.validator.planner.AvailableResources(playerID)
	if err != nil {
		return nil, err
	}

	results := make([]*CostValidationResult, 0, len(requests))
	for _, request := range requests {
		results = append(results, b.validateAgainstSnapshot(request, available))
	}
	return results, nil
}

func (b *BatchCostValidator) validateAgainstSnapshot(request ProductionRequest, available int) *CostValidationResult {
	cost, err := b.validator.ProductionCost(request.UnitType, request.Quantity, request.Faction, request.Technologies)
	if err != nil {
		return &CostValidationResult{
			Valid:        false,
			ErrorMessage: err.Error(),
		}
	}

	if cost.TotalCost == 0 {
		return &CostValidationResult{
			Valid:        false,
			ErrorMessage: NewNotProducibleError(cost.UnitType).Error(),
		}
	}

	required := int(math.Ceil(cost.TotalCost))
	if available < required {
		shortfall := economy.NewInsufficientSourcesError("resources", required, available)
		return &CostValidationResult{
			Valid:              false,
			RequiredResources:  required,
			AvailableResources: available,
			Shortfall:          required - available,
			ErrorMessage:       shortfall.Error(),
		}
	}

	return &CostValidationResult{
		Valid:              true,
		RequiredResources:  required,
		AvailableResources: available,
	}
}
