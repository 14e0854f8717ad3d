package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
)

// GetPlayersQuery represents a query to list every player at the table
type GetPlayersQuery struct{}

// PlanetData represents one planet in a player's roster
type PlanetData struct {
	Name      string
	Resources int
	Influence int
	Trait     string
	Exhausted bool
}

// PlayerData represents one player in the roster
type PlayerData struct {
	PlayerID     int
	Name         string
	Faction      string
	TradeGoods   int
	Commodities  int
	Technologies []string
	Planets      []PlanetData
}

// GetPlayersResponse represents the result of listing players
type GetPlayersResponse struct {
	Players []PlayerData
}

// GetPlayersHandler handles the GetPlayers query
type GetPlayersHandler struct {
	stateRepo galaxy.StateRepository
}

// NewGetPlayersHandler creates a new GetPlayersHandler
func NewGetPlayersHandler(stateRepo galaxy.StateRepository) *GetPlayersHandler {
	return &GetPlayersHandler{stateRepo: stateRepo}
}

// Handle executes the GetPlayers query
func (h *GetPlayersHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	_, ok := request.(*GetPlayersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlayersQuery")
	}

	state, err := h.stateRepo.LoadState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	players := state.Players()
	response := &GetPlayersResponse{
		Players: make([]PlayerData, 0, len(players)),
	}
	for _, player := range players {
		planets := state.PlayerPlanets(player.ID())
		planetData := make([]PlanetData, 0, len(planets))
		for _, planet := range planets {
			planetData = append(planetData, PlanetData{
				Name:      planet.Name(),
				Resources: planet.Resources(),
				Influence: planet.Influence(),
				Trait:     string(planet.Trait()),
				Exhausted: planet.IsExhausted(),
			})
		}

		response.Players = append(response.Players, PlayerData{
			PlayerID:     player.ID().Value(),
			Name:         player.Name(),
			Faction:      player.Faction(),
			TradeGoods:   player.TradeGoods(),
			Commodities:  player.Commodities(),
			Technologies: player.Technologies(),
			Planets:      planetData,
		})
	}

	return response, nil
}
