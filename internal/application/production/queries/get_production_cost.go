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

// GetProductionCostQuery represents a query for the cost of producing units,
// with the player's faction and technology discounts applied
type GetProductionCostQuery struct {
	PlayerID int
	UnitType string
	Quantity int
}

// GetProductionCostResponse represents the response for the GetProductionCost query
type GetProductionCostResponse struct {
	UnitType         string
	BaseCost         float64
	ModifiedCost     float64
	Quantity         int
	UnitsProduced    int
	TotalCost        float64
	IsDualProduction bool
}

// GetProductionCostHandler handles the GetProductionCost query
type GetProductionCostHandler struct {
	stateRepo galaxy.StateRepository
	registry  *production.StatsRegistry
	clock     shared.Clock
}

// NewGetProductionCostHandler creates a new GetProductionCostHandler
func NewGetProductionCostHandler(
	stateRepo galaxy.StateRepository,
	registry *production.StatsRegistry,
	clock shared.Clock,
) *GetProductionCostHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GetProductionCostHandler{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
	}
}

// Handle executes the GetProductionCost query
func (h *GetProductionCostHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetProductionCostQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetProductionCostQuery")
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
		return nil, economy.NewPlayerNotFoundError(playerID, "get_production_cost", h.clock.Now())
	}

	validator := production.NewCostValidator(h.registry, economy.NewResourceManager(state, h.clock))
	cost, err := validator.ProductionCost(unitType, query.Quantity, player.Faction(), player.Technologies())
	if err != nil {
		return nil, err
	}

	return &GetProductionCostResponse{
		UnitType:         cost.UnitType.String(),
		BaseCost:         cost.BaseCost,
		ModifiedCost:     cost.ModifiedCost,
		Quantity:         cost.Quantity,
		UnitsProduced:    cost.UnitsProduced,
		TotalCost:        cost.TotalCost,
		IsDualProduction: cost.IsDualProduction,
	}, nil
}
