package commands

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/adapters/metrics"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ConvertCommoditiesCommand represents a command to wash commodities into
// trade goods one for one
type ConvertCommoditiesCommand struct {
	PlayerID int
	Amount   int
}

// ConvertCommoditiesResponse represents the result of converting commodities
type ConvertCommoditiesResponse struct {
	TradeGoods  int
	Commodities int
}

// ConvertCommoditiesHandler handles the ConvertCommodities command
type ConvertCommoditiesHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewConvertCommoditiesHandler creates a new ConvertCommoditiesHandler
func NewConvertCommoditiesHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *ConvertCommoditiesHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ConvertCommoditiesHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the ConvertCommodities command
func (h *ConvertCommoditiesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ConvertCommoditiesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ConvertCommoditiesCommand")
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
		return nil, economy.NewPlayerNotFoundError(playerID, "convert_commodities", h.clock.Now())
	}

	if err := player.ConvertCommodities(cmd.Amount); err != nil {
		return nil, err
	}

	if err := h.stateRepo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save game state: %w", err)
	}

	metrics.RecordCommodityConversion(cmd.PlayerID, cmd.Amount)

	return &ConvertCommoditiesResponse{
		TradeGoods:  player.TradeGoods(),
		Commodities: player.Commodities(),
	}, nil
}
