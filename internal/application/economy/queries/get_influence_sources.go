package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GetInfluenceSourcesQuery represents a query for a player's spendable
// influence breakdown
type GetInfluenceSourcesQuery struct {
	PlayerID  int
	ForVoting bool
}

// GetInfluenceSourcesResponse represents the influence breakdown result
type GetInfluenceSourcesResponse struct {
	PlayerID   int
	ForVoting  bool
	Planets    []PlanetSourceData
	TradeGoods int
	Total      int
}

// GetInfluenceSourcesHandler handles the GetInfluenceSources query
type GetInfluenceSourcesHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewGetInfluenceSourcesHandler creates a new GetInfluenceSourcesHandler
func NewGetInfluenceSourcesHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *GetInfluenceSourcesHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GetInfluenceSourcesHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the GetInfluenceSources query
func (h *GetInfluenceSourcesHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetInfluenceSourcesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetInfluenceSourcesQuery")
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
	sources, err := manager.InfluenceSources(playerID, query.ForVoting)
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

	return &GetInfluenceSourcesResponse{
		PlayerID:   query.PlayerID,
		ForVoting:  sources.ForVoting(),
		Planets:    planets,
		TradeGoods: sources.TradeGoods(),
		Total:      sources.Total(),
	}, nil
}
