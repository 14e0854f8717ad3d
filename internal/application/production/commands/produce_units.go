package commands

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/adapters/metrics"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ProduceUnitsCommand represents a command to produce units, paying their
// cost by exhausting planets and spending trade goods.
//
// Reinforcements, when set, bounds how many units the player's supply can
// field and fails the order if the run would exceed it.
type ProduceUnitsCommand struct {
	PlayerID       int
	UnitType       string
	Quantity       int
	Reinforcements *int
	Description    string
}

// ProduceUnitsResponse represents the result of producing units
type ProduceUnitsResponse struct {
	Success          bool
	UnitsProduced    int
	TotalCost        float64
	PlanetsExhausted []string
	TradeGoodsSpent  int
	RecordID         string
	ErrorMessage     string
}

// ProduceUnitsHandler handles the ProduceUnits command
type ProduceUnitsHandler struct {
	stateRepo  galaxy.StateRepository
	recordRepo ledger.SpendRecordRepository
	registry   *production.StatsRegistry
	clock      shared.Clock
}

// NewProduceUnitsHandler creates a new ProduceUnitsHandler
func NewProduceUnitsHandler(
	stateRepo galaxy.StateRepository,
	recordRepo ledger.SpendRecordRepository,
	registry *production.StatsRegistry,
	clock shared.Clock,
) *ProduceUnitsHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &ProduceUnitsHandler{
		stateRepo:  stateRepo,
		recordRepo: recordRepo,
		registry:   registry,
		clock:      clock,
	}
}

// Handle executes the ProduceUnits command
func (h *ProduceUnitsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ProduceUnitsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ProduceUnitsCommand")
	}

	unitType, err := production.ParseUnitType(cmd.UnitType)
	if err != nil {
		return nil, fmt.Errorf("invalid unit type: %w", err)
	}
	if cmd.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	playerID, err := shared.NewPlayerID(cmd.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	player, found := state.Player(playerID)
	if !found {
		return nil, economy.NewPlayerNotFoundError(playerID, "produce_units", h.clock.Now())
	}

	manager := economy.NewResourceManager(state, h.clock)
	validator := production.NewCostValidator(h.registry, manager)

	cost, err := validator.ProductionCost(unitType, cmd.Quantity, player.Faction(), player.Technologies())
	if err != nil {
		return nil, err
	}

	var validation *production.CostValidationResult
	if cmd.Reinforcements != nil {
		validation, err = validator.ValidateProductionCostWithReinforcements(playerID, cost, *cmd.Reinforcements)
	} else {
		validation, err = validator.ValidateProductionCost(playerID, cost)
	}
	if err != nil {
		return nil, err
	}

	if !validation.Valid {
		return &ProduceUnitsResponse{
			Success:      false,
			ErrorMessage: validation.ErrorMessage,
		}, nil
	}

	result := manager.ExecuteSpendingPlan(validation.SuggestedPlan)
	if !result.Success {
		return &ProduceUnitsResponse{
			Success:      false,
			ErrorMessage: result.ErrorMessage,
		}, nil
	}

	if err := h.stateRepo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save game state: %w", err)
	}

	description := cmd.Description
	if description == "" {
		description = fmt.Sprintf("produced %d %s", cost.UnitsProduced, unitType)
	}

	record, err := ledger.NewSpendRecord(
		playerID,
		h.clock.Now(),
		ledger.PurposeProduction,
		validation.SuggestedPlan.ResourceSpending().Total(),
		0,
		result.TradeGoodsSpent,
		result.PlanetsExhausted,
		false,
		description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create spend record: %w", err)
	}

	if err := h.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist spend record: %w", err)
	}

	metrics.RecordUnitsProduced(cmd.PlayerID, unitType.String(), cost.UnitsProduced, cost.TotalCost)
	metrics.RecordSpendExecution(
		cmd.PlayerID,
		ledger.PurposeProduction.String(),
		validation.SuggestedPlan.ResourceSpending().Total(),
		0,
		result.TradeGoodsSpent,
	)

	return &ProduceUnitsResponse{
		Success:          true,
		UnitsProduced:    cost.UnitsProduced,
		TotalCost:        cost.TotalCost,
		PlanetsExhausted: result.PlanetsExhausted,
		TradeGoodsSpent:  result.TradeGoodsSpent,
		RecordID:         record.ID().String(),
	}, nil
}
