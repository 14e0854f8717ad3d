package production

import (
	"github.com/twilightsim/imperium-go/internal/domain/economy"
)

// ProductionCost describes what producing a batch of one unit type costs
// after faction and technology modifiers and the dual-production rule
type ProductionCost struct {
	UnitType         UnitType
	BaseCost         float64
	ModifiedCost     float64
	Quantity         int
	UnitsProduced    int
	TotalCost        float64
	IsDualProduction bool
}

// CostValidationResult is the outcome of checking a production cost against
// a player's economy. SuggestedPlan is attached when the resource side
// passes, even if a reinforcement check later fails the result as a whole.
type CostValidationResult struct {
	Valid                  bool
	RequiredResources      int
	AvailableResources     int
	Shortfall              int
	ReinforcementShortfall int
	SuggestedPlan          *economy.SpendingPlan
	ErrorMessage           string
}
