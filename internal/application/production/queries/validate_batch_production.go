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

// BatchProductionItem is one production order inside a batch validation query
type BatchProductionItem struct {
	UnitType string
	Quantity int
}

// ValidateBatchProductionQuery represents a query that checks several
// production orders against the same resource snapshot
type ValidateBatchProductionQuery struct {
	PlayerID int
	Items    []BatchProductionItem
}

// BatchProductionResult is the outcome for one order in the batch
type BatchProductionResult struct {
	UnitType           string
	Quantity           int
	Valid              bool
	RequiredResources  int
	AvailableResources int
	Shortfall          int
	ErrorMessage       string
}

// ValidateBatchProductionResponse represents the response for the
// ValidateBatchProduction query
type ValidateBatchProductionResponse struct {
	Results []BatchProductionResult
}

// ValidateBatchProductionHandler handles the ValidateBatchProduction query
type ValidateBatchProductionHandler struct {
	stateRepo galaxy.StateRepository
	registry  *production.StatsRegistry
	clock     shared.Clock
}

// NewValidateBatchProductionHandler creates a new ValidateBatchProductionHandler
func NewValidateBatchProductionHandler(
	stateRepo galaxy.StateRepository,
	registry *production.StatsRegistry,
	clock shared.Clock,
) *ValidateBatchProductionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ValidateBatchProductionHandler{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
	}
}

// Handle executes the ValidateBatchProduction query
func (h *ValidateBatchProductionHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ValidateBatchProductionQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ValidateBatchProductionQuery")
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
		return nil, economy.NewPlayerNotFoundError(playerID, "validate_batch_production", h.clock.Now())
	}

	requests := make([]production.ProductionRequest, 0, len(query.Items))
	for _, item := range query.Items {
		unitType, err := production.ParseUnitType(item.UnitType)
		if err != nil {
			return nil, fmt.Errorf("invalid unit type: %w", err)
		}
		requests = append(requests, production.ProductionRequest{
			UnitType:     unitType,
			Quantity:     item.Quantity,
			Faction:      player.Faction(),
			Technologies: player.Technologies(),
		})
	}

	validator := production.NewCostValidator(h.registry, economy.NewResourceManager(state, h.clock))
	batch := production.NewBatchCostValidator(validator)
	results, err := batch.ValidateBatchProductionCosts(playerID, requests)
	if err != nil {
		return nil, err
	}

	response := &ValidateBatchProductionResponse{
		Results: make([]BatchProductionResult, 0, len(results)),
	}
	for i, result := range results {
		response.Results = append(response.Results, BatchProductionResult{
			UnitType:           query.Items[i].UnitType,
			Quantity:           query.Items[i].Quantity,
			Valid:              result.Valid,
			RequiredResources:  result.RequiredResources,
			AvailableResources: result.AvailableResources,
			Shortfall:          result.Shortfall,
			ErrorMessage:       result.ErrorMessage,
		})
	}
	return response, nil
}
