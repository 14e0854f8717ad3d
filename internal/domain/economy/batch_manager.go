package economy

import (
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// SpendingRequest is one entry in a batch plan build
type SpendingRequest struct {
	Resources int
	Influence int
	ForVoting bool
}

// BatchResourceManager builds several spending plans against a single
// snapshot of a player's sources. Plans in a batch describe alternatives over
// the same state, not a sequence, so an earlier request's allocation never
// shrinks what a later request sees.
type BatchResourceManager struct {
	manager *ResourceManager
}

// NewBatchResourceManager creates a batch planner over the given manager
func NewBatchResourceManager(manager *ResourceManager) *BatchResourceManager {
	return &BatchResourceManager{manager: manager}
}

// CreateBatchSpendingPlans snapshots the player's resource sources and both
// influence variants once, then builds one plan per request from the shared
// snapshots
func (b *BatchResourceManager) CreateBatchSpendingPlans(
	playerID shared.PlayerID,
	requests []SpendingRequest,
) ([]*SpendingPlan, error) {
	resourceSources, err := b.manager.ResourceSources(playerID)
	if err != nil {
		return nil, err
	}
	influenceSources, err := b.manager.InfluenceSources(playerID, false)
	if err != nil {
		return nil, err
	}
	votingSources, err := b.manager.InfluenceSources(playerID, true)
	if err != nil {
		return nil, err
	}

	plans := make([]*SpendingPlan, 0, len(requests))
	for _, request := range requests {
		influence := influenceSources
		if request.ForVoting {
			influence = votingSources
		}
		plans = append(plans, buildSpendingPlan(
			playerID,
			resourceSources,
			influence,
			request.Resources,
			request.Influence,
			request.ForVoting,
			b.manager.clock.Now(),
		))
	}
	return plans, nil
}
