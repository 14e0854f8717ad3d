package commands

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/adapters/metrics"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ReadyPlanetsCommand represents a command to ready exhausted planets at the
// start of a round. PlayerID 0 readies every player's planets.
type ReadyPlanetsCommand struct {
	PlayerID int
}

// ReadyPlanetsResponse represents the result of readying planets
type ReadyPlanetsResponse struct {
	PlanetsReadied int
}

// ReadyPlanetsHandler handles the ReadyPlanets command
type ReadyPlanetsHandler struct {
	stateRepo galaxy.StateRepository
}

// NewReadyPlanetsHandler creates a new ReadyPlanetsHandler
func NewReadyPlanetsHandler(stateRepo galaxy.StateRepository) *ReadyPlanetsHandler {
	return &ReadyPlanetsHandler{stateRepo: stateRepo}
}

// Handle executes the ReadyPlanets command
func (h *ReadyPlanetsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ReadyPlanetsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReadyPlanetsCommand")
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	var readied int
	if cmd.PlayerID == 0 {
		readied = state.ReadyAllPlanets()
	} else {
		playerID, err := shared.NewPlayerID(cmd.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("invalid player ID: %w", err)
		}
		readied, err = state.ReadyPlayerPlanets(playerID)
		if err != nil {
			return nil, err
		}
	}

	if err := h.stateRepo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save game state: %w", err)
	}

	metrics.RecordPlanetsReadied(cmd.PlayerID, readied)

	return &ReadyPlanetsResponse{PlanetsReadied: readied}, nil
}
