package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GetResourceSourcesQuery represents a query for a player's spendable
// resource breakdown
type GetResourceSourcesQuery struct {
	PlayerID int
}

// PlanetSourceData is one planet's contribution in a source breakdown
type PlanetSourceData struct {
	Planet string
	Amount int
}

// GetResourceSourcesResponse represents the resource breakdown result
type GetResourceSourcesResponse struct {
	PlayerID   int
	Planets    []PlanetSourceData
	TradeGoods int
	Total      int
}

// GetResourceSourcesHandler handles the GetResourceSources query
type GetResourceSourcesHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewGetResourceSourcesHandler creates a new GetResourceSourcesHandler
func NewGetResourceSourcesHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *GetResourceSourcesHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GetResourceSourcesHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the GetResourceSources query
func (h *GetResourceSourcesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetResourceSourcesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetResourceSourcesQuery")
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
	sources, err := manager.ResourceSources(playerID)
	if err != nil {
		return nil, err
	}

	planets := make([]PlanetSourceData, 0, len(sources.Planets()))
	for _, contribution := range sources.Planets() {
		planets = append(planets, PlanetSourceData{
			Planet: contribution.Planet,
			Amount: contribution.Amount,
		})
	}

	return &GetResourceSourcesResponse{
		PlayerID:   query.PlayerID,
		Planets:    planets,
		TradeGoods: sources.TradeGoods(),
		Total:      sources.Total(),
	}, nil
}
