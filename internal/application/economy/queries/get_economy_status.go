package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GetEconomyStatusQuery represents a query for a table-wide economy snapshot
type GetEconomyStatusQuery struct{}

// PlayerEconomyStatus summarizes one player's spending power
type PlayerEconomyStatus struct {
	PlayerID           int
	Name               string
	Faction            string
	TradeGoods         int
	Commodities        int
	AvailableResources int
	AvailableInfluence int
	ReadyPlanets       int
	ExhaustedPlanets   int
}

// GetEconomyStatusResponse represents the response for the GetEconomyStatus query
type GetEconomyStatusResponse struct {
	Players []PlayerEconomyStatus
}

// GetEconomyStatusHandler handles the GetEconomyStatus query
type GetEconomyStatusHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewGetEconomyStatusHandler creates a new GetEconomyStatusHandler
func NewGetEconomyStatusHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *GetEconomyStatusHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GetEconomyStatusHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the GetEconomyStatus query
func (h *GetEconomyStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	_, ok := request.(*GetEconomyStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetEconomyStatusQuery")
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	manager := economy.NewCachedResourceManager(state, h.clock)

	players := state.Players()
	statuses := make([]PlayerEconomyStatus, 0, len(players))
	for _, player := range players {
		resources, err := manager.AvailableResources(player.ID())
		if err != nil {
			return nil, err
		}
		influence, err := manager.AvailableInfluence(player.ID(), false)
		if err != nil {
			return nil, err
		}

		ready, exhausted := 0, 0
		for _, planet := range state.PlayerPlanets(player.ID()) {
			if planet.IsExhausted() {
				exhausted++
			} else {
				ready++
			}
		}

		statuses = append(statuses, PlayerEconomyStatus{
			PlayerID:           player.ID().Value(),
			Name:               player.Name(),
			Faction:            player.Faction(),
			TradeGoods:         player.TradeGoods(),
			Commodities:        player.Commodities(),
			AvailableResources: resources,
			AvailableInfluence: influence,
			ReadyPlanets:       ready,
			ExhaustedPlanets:   exhausted,
		})
	}

	return &GetEconomyStatusResponse{Players: statuses}, nil
}
