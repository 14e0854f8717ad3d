package production

import (
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// ResourcePlanner is the slice of the spending engine the cost validator
// needs. Both economy.ResourceManager and economy.CachedResourceManager
// satisfy it.
type ResourcePlanner interface {
	// AvailableResources returns the player's total spendable resources
	AvailableResources(playerID shared.PlayerID) (int, error)

	// CreateSpendingPlan builds a plan covering the requested amounts
	CreateSpendingPlan(playerID shared.PlayerID, requestedResources, requestedInfluence int, forVoting bool) (*economy.SpendingPlan, error)
}
