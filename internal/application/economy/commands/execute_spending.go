package commands

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/adapters/metrics"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ExecuteSpendingCommand represents a command to plan and execute a spend
// against a player's planets and trade goods
type ExecuteSpendingCommand struct {
	PlayerID    int
	Resources   int
	Influence   int
	ForVoting   bool
	Purpose     string
	Description string
}

// ExecuteSpendingResponse represents the result of executing a spend
type ExecuteSpendingResponse struct {
	Success          bool
	PlanetsExhausted []string
	TradeGoodsSpent  int
	RecordID         string
	ErrorMessage     string
}

// ExecuteSpendingHandler handles the ExecuteSpending command
type ExecuteSpendingHandler struct {
	stateRepo  galaxy.StateRepository
	recordRepo ledger.SpendRecordRepository
	clock      shared.Clock
}

// NewExecuteSpendingHandler creates a new ExecuteSpendingHandler
func NewExecuteSpendingHandler(
	stateRepo galaxy.StateRepository,
	recordRepo ledger.SpendRecordRepository,
	clock shared.Clock,
) *ExecuteSpendingHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &ExecuteSpendingHandler{
		stateRepo:  stateRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// Handle executes the ExecuteSpending command
func (h *ExecuteSpendingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ExecuteSpendingCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExecuteSpendingCommand")
	}

	// Parse and validate spend purpose
	purpose, err := ledger.ParsePurpose(cmd.Purpose)
	if err != nil {
		return nil, fmt.Errorf("invalid spend purpose: %w", err)
	}

	// Create player ID
	playerID, err := shared.NewPlayerID(cmd.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	// Load game state
	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	manager := economy.NewResourceManager(state, h.clock)

	plan, err := manager.CreateSpendingPlan(playerID, cmd.Resources, cmd.Influence, cmd.ForVoting)
	if err != nil {
		return nil, err
	}

	result := manager.ExecuteSpendingPlan(plan)
	if !result.Success {
		// Execution rolls the state back on failure, so nothing to persist
		return &ExecuteSpendingResponse{
			Success:      false,
			ErrorMessage: result.ErrorMessage,
		}, nil
	}

	// Persist the mutated game state
	if err := h.stateRepo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save game state: %w", err)
	}

	response := &ExecuteSpendingResponse{
		Success:          true,
		PlanetsExhausted: result.PlanetsExhausted,
		TradeGoodsSpent:  result.TradeGoodsSpent,
	}

	resourcesSpent := plan.ResourceSpending().Total()
	influenceSpent := plan.InfluenceSpending().Total()

	// A zero-amount spend succeeds without touching anything, so there is
	// nothing to put in the ledger
	if resourcesSpent == 0 && influenceSpent == 0 && result.TradeGoodsSpent == 0 && len(result.PlanetsExhausted) == 0 {
		return response, nil
	}

	record, err := ledger.NewSpendRecord(
		playerID,
		h.clock.Now(),
		purpose,
		resourcesSpent,
		influenceSpent,
		result.TradeGoodsSpent,
		result.PlanetsExhausted,
		cmd.ForVoting,
		cmd.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create spend record: %w", err)
	}

	if err := h.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist spend record: %w", err)
	}

	metrics.RecordSpendExecution(
		cmd.PlayerID,
		cmd.Purpose,
		resourcesSpent,
		influenceSpent,
		result.TradeGoodsSpent,
	)

	response.RecordID = record.ID().String()
	return response, nil
}
