package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ValidateProductionQuery represents a query that checks whether a player can
// afford a production order without executing it.
//
// Reinforcements, when set, bounds how many units the player's supply can
// actually field. ConstructionExemption waives the zero-cost rejection for
// structures placed by construction effects and takes priority over the
// reinforcement check.
type ValidateProductionQuery struct {
	PlayerID              int
	UnitType              string
	Quantity              int
	Reinforcements        *int
	ConstructionExemption bool
}

// ValidateProductionResponse represents the response for the ValidateProduction query
type ValidateProductionResponse struct {
	Valid                  bool
	UnitType               string
	Quantity               int
	UnitsProduced          int
	TotalCost              float64
	RequiredResources      int
	AvailableResources     int
	Shortfall              int
	ReinforcementShortfall int
	PlanetsToExhaust       []string
	TradeGoodsNeeded       int
	ErrorMessage           string
}

// ValidateProductionHandler handles the ValidateProduction query
type ValidateProductionHandler struct {
	stateRepo galaxy.StateRepository
	registry  *production.StatsRegistry
	clock     shared.Clock
}

// NewValidateProductionHandler creates a new ValidateProductionHandler
func NewValidateProductionHandler(
	stateRepo galaxy.StateRepository,
	registry *production.StatsRegistry,
	clock shared.Clock,
) *ValidateProductionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ValidateProductionHandler{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
	}
}

// Handle executes the ValidateProduction query
func (h *ValidateProductionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ValidateProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ValidateProductionQuery")
	}

	unitType, err := production.ParseUnitType(query.UnitType)
	if err != nil {
		return nil, fmt.Errorf("invalid unit type: %w", err)
	}
	if query.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	playerID, err := shared.NewPlayerID(query.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	player, found := state.Player(playerID)
	if !found {
		return nil, economy.NewPlayerNotFoundError(playerID, "validate_production", h.clock.Now())
	}

	validator := production.NewCostValidator(h.registry, economy.NewResourceManager(state, h.clock))
	cost, err := validator.ProductionCost(unitType, query.Quantity, player.Faction(), player.Technologies())
	if err != nil {
		return nil, err
	}

	var result *production.CostValidationResult
	switch {
	case query.ConstructionExemption:
		result, err = validator.ValidateProductionCostWithConstructionExemption(playerID, cost)
	case query.Reinforcements != nil:
		result, err = validator.ValidateProductionCostWithReinforcements(playerID, cost, *query.Reinforcements)
	default:
		result, err = validator.ValidateProductionCost(playerID, cost)
	}
	if err != nil {
		return nil, err
	}

	response := &ValidateProductionResponse{
		Valid:                  result.Valid,
		UnitType:               cost.UnitType.String(),
		Quantity:               cost.Quantity,
		UnitsProduced:          cost.UnitsProduced,
		TotalCost:              cost.TotalCost,
		RequiredResources:      result.RequiredResources,
		AvailableResources:     result.AvailableResources,
		Shortfall:              result.Shortfall,
		ReinforcementShortfall: result.ReinforcementShortfall,
		ErrorMessage:           result.ErrorMessage,
	}
	if result.SuggestedPlan != nil {
		response.PlanetsToExhaust = result.SuggestedPlan.PlanetsToExhaust()
		response.TradeGoodsNeeded = result.SuggestedPlan.TotalTradeGoods()
	}
	return response, nil
}
