package economy

import (
	"strings"
	"time"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// SpendingPlan is a pre-committed claim against a player's economy: which
// planets to exhaust and how many trade goods to consume to satisfy the two
// requested amounts. Validity is computed at construction and never changes:
// a plan is valid exactly when both spending totals cover their requests.
type SpendingPlan struct {
	id                 PlanID
	playerID           shared.PlayerID
	resourceSpending   ResourceSpending
	influenceSpending  InfluenceSpending
	requestedResources int
	requestedInfluence int
	forVoting          bool
	valid              bool
	errorMessage       string
	createdAt          time.Time
}

// NewSpendingPlan creates a plan from two spending records. The validity flag
// and, when invalid, the combined shortfall message are derived here so they
// can never disagree with the spendings they describe.
func NewSpendingPlan(
	playerID shared.PlayerID,
	resourceSpending ResourceSpending,
	influenceSpending InfluenceSpending,
	requestedResources int,
	requestedInfluence int,
	forVoting bool,
	createdAt time.Time,
) *SpendingPlan {
	var failures []string
	if resourceSpending.Total() < requestedResources {
		shortfall := &InsufficientSourcesError{
			Currency:  "resources",
			Required:  requestedResources,
			Available: resourceSpending.Total(),
		}
		failures = append(failures, shortfall.Error())
	}
	if influenceSpending.Total() < requestedInfluence {
		shortfall := &InsufficientSourcesError{
			Currency:  "influence",
			Required:  requestedInfluence,
			Available: influenceSpending.Total(),
		}
		failures = append(failures, shortfall.Error())
	}

	return &SpendingPlan{
		id:                 NewPlanID(),
		playerID:           playerID,
		resourceSpending:   resourceSpending,
		influenceSpending:  influenceSpending,
		requestedResources: requestedResources,
		requestedInfluence: requestedInfluence,
		forVoting:          forVoting,
		valid:              len(failures) == 0,
		errorMessage:       strings.Join(failures, "; "),
		createdAt:          createdAt,
	}
}

// ID returns the plan's identifier
func (p *SpendingPlan) ID() PlanID {
	return p.id
}

// PlayerID returns the plan's owner
func (p *SpendingPlan) PlayerID() shared.PlayerID {
	return p.playerID
}

// ResourceSpending returns the resource half of the plan
func (p *SpendingPlan) ResourceSpending() ResourceSpending {
	return p.resourceSpending
}

// InfluenceSpending returns the influence half of the plan
func (p *SpendingPlan) InfluenceSpending() InfluenceSpending {
	return p.influenceSpending
}

// RequestedResources returns the resource amount the plan was built for
func (p *SpendingPlan) RequestedResources() int {
	return p.requestedResources
}

// RequestedInfluence returns the influence amount the plan was built for
func (p *SpendingPlan) RequestedInfluence() int {
	return p.requestedInfluence
}

// ForVoting reports whether the influence half was built under voting rules
func (p *SpendingPlan) ForVoting() bool {
	return p.forVoting
}

// IsValid reports whether both spending totals cover their requested amounts
func (p *SpendingPlan) IsValid() bool {
	return p.valid
}

// ErrorMessage returns the combined shortfall message for invalid plans
func (p *SpendingPlan) ErrorMessage() string {
	return p.errorMessage
}

// CreatedAt returns when the plan was constructed
func (p *SpendingPlan) CreatedAt() time.Time {
	return p.createdAt
}

// PlanetsToExhaust returns the union of planet names across both halves,
// first appearance order. A planet spent for both resources and influence is
// exhausted once.
func (p *SpendingPlan) PlanetsToExhaust() []string {
	seen := make(map[string]bool)
	var names []string
	for _, contribution := range p.resourceSpending.planets {
		if !seen[contribution.Planet] {
			seen[contribution.Planet] = true
			names = append(names, contribution.Planet)
		}
	}
	for _, contribution := range p.influenceSpending.planets {
		if !seen[contribution.Planet] {
			seen[contribution.Planet] = true
			names = append(names, contribution.Planet)
		}
	}
	return names
}

// TotalTradeGoods returns the trade goods the plan consumes across both
// halves. Each half reserves its own goods, so the combined demand can exceed
// the balance both halves were built against; execution settles that in one
// deduction.
func (p *SpendingPlan) TotalTradeGoods() int {
	return p.resourceSpending.tradeGoods + p.influenceSpending.tradeGoods
}
