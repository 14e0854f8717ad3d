package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// CanAffordQuery represents an affordability check without plan construction
type CanAffordQuery struct {
	PlayerID  int
	Resources int
	Influence int
	ForVoting bool
}

// CanAffordResponse represents the affordability check result
type CanAffordResponse struct {
	Affordable         bool
	AvailableResources int
	AvailableInfluence int
}

// CanAffordHandler handles the CanAfford query
type CanAffordHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewCanAffordHandler creates a new CanAffordHandler
func NewCanAffordHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *CanAffordHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CanAffordHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the CanAfford query
func (h *CanAffordHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*CanAffordQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CanAffordQuery")
	}

	playerID, err := shared.NewPlayerID(query.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	manager := economy.NewResourceManager(state, h.clock)

	availableResources, err := manager.AvailableResources(playerID)
	if err != nil {
		return nil, err
	}
	availableInfluence, err := manager.AvailableInfluence(playerID, query.ForVoting)
	if err != nil {
		return nil, err
	}
	affordable, err := manager.CanAffordSpending(playerID, query.Resources, query.Influence, query.ForVoting)
	if err != nil {
		return nil, err
	}

	return &CanAffordResponse{
		Affordable:         affordable,
		AvailableResources: availableResources,
		AvailableInfluence: availableInfluence,
	}, nil
}
