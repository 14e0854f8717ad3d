package queries

import (
	"context"
	"fmt"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// PreviewSpendingPlanQuery represents a query that builds a spending plan
// without executing it
type PreviewSpendingPlanQuery struct {
	PlayerID  int
	Resources int
	Influence int
	ForVoting bool
}

// PreviewSpendingPlanResponse describes the plan the engine would execute
type PreviewSpendingPlanResponse struct {
	PlanID              string
	Valid               bool
	ErrorMessage        string
	ResourcePlanets     []PlanetSourceData
	ResourceTradeGoods  int
	ResourceTotal       int
	InfluencePlanets    []PlanetSourceData
	InfluenceTradeGoods int
	InfluenceTotal      int
	PlanetsToExhaust    []string
	TotalTradeGoods     int
}

// PreviewSpendingPlanHandler handles the PreviewSpendingPlan query
type PreviewSpendingPlanHandler struct {
	stateRepo galaxy.StateRepository
	clock     shared.Clock
}

// NewPreviewSpendingPlanHandler creates a new PreviewSpendingPlanHandler
func NewPreviewSpendingPlanHandler(stateRepo galaxy.StateRepository, clock shared.Clock) *PreviewSpendingPlanHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &PreviewSpendingPlanHandler{
		stateRepo: stateRepo,
		clock:     clock,
	}
}

// Handle executes the PreviewSpendingPlan query
func (h *PreviewSpendingPlanHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*PreviewSpendingPlanQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *PreviewSpendingPlanQuery")
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
	plan, err := manager.CreateSpendingPlan(playerID, query.Resources, query.Influence, query.ForVoting)
	if err != nil {
		return nil, err
	}

	return planToPreview(plan), nil
}

func planToPreview(plan *economy.SpendingPlan) *PreviewSpendingPlanResponse {
	resourcePlanets := make([]PlanetSourceData, 0, len(plan.ResourceSpending().Planets()))
	for _, contribution := range plan.ResourceSpending().Planets() {
		resourcePlanets = append(resourcePlanets, PlanetSourceData{
			Planet: contribution.Planet,
			Amount: contribution.Amount,
		})
	}

	influencePlanets := make([]PlanetSourceData, 0, len(plan.InfluenceSpending().Planets()))
	for _, contribution := range plan.InfluenceSpending().Planets() {
		influencePlanets = append(influencePlanets, PlanetSourceData{
			Planet: contribution.Planet,
			Amount: contribution.Amount,
		})
	}

	return &PreviewSpendingPlanResponse{
		PlanID:              plan.ID().String(),
		Valid:               plan.IsValid(),
		ErrorMessage:        plan.ErrorMessage(),
		ResourcePlanets:     resourcePlanets,
		ResourceTradeGoods:  plan.ResourceSpending().TradeGoods(),
		ResourceTotal:       plan.ResourceSpending().Total(),
		InfluencePlanets:    influencePlanets,
		InfluenceTradeGoods: plan.InfluenceSpending().TradeGoods(),
		InfluenceTotal:      plan.InfluenceSpending().Total(),
		PlanetsToExhaust:    plan.PlanetsToExhaust(),
		TotalTradeGoods:     plan.TotalTradeGoods(),
	}
}
