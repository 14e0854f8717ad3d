package economy

import (
	"time"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/pkg/utils"
)

// ResourceManager is the spending engine over a game state. It aggregates
// what a player can spend, builds spending plans, and executes them
// atomically against the live planets and trade-good balances. The owning
// simulation serializes all calls, so the manager itself does no locking.
type ResourceManager struct {
	state GameState
	clock shared.Clock
}

// NewResourceManager creates a ResourceManager over the given game state
func NewResourceManager(state GameState, clock shared.Clock) *ResourceManager {
	return &ResourceManager{
		state: state,
		clock: clock,
	}
}

func (m *ResourceManager) getPlayer(playerID shared.PlayerID, operation string) (*galaxy.Player, error) {
	player, ok := m.state.Player(playerID)
	if !ok {
		return nil, NewPlayerNotFoundError(playerID, operation, m.clock.Now())
	}
	return player, nil
}

func (m *ResourceManager) resourceSourcesFor(playerID shared.PlayerID, player *galaxy.Player) ResourceSources {
	var contributions []PlanetContribution
	for _, planet := range m.state.PlayerPlanets(playerID) {
		if planet.CanSpendResources() {
			contributions = append(contributions, PlanetContribution{
				Planet: planet.Name(),
				Amount: planet.Resources(),
			})
		}
	}
	return NewResourceSources(contributions, player.TradeGoods())
}

func (m *ResourceManager) influenceSourcesFor(playerID shared.PlayerID, player *galaxy.Player, forVoting bool) InfluenceSources {
	var contributions []PlanetContribution
	for _, planet := range m.state.PlayerPlanets(playerID) {
		if planet.CanSpendInfluence() {
			contributions = append(contributions, PlanetContribution{
				Planet: planet.Name(),
				Amount: planet.Influence(),
			})
		}
	}
	return NewInfluenceSources(contributions, player.TradeGoods(), forVoting)
}

// AvailableResources returns the total resources the player can spend right
// now: ready planet resources plus the trade-good balance
func (m *ResourceManager) AvailableResources(playerID shared.PlayerID) (int, error) {
	player, err := m.getPlayer(playerID, "available_resources")
	if err != nil {
		return 0, err
	}
	return m.resourceSourcesFor(playerID, player).Total(), nil
}

// AvailableInfluence returns the total influence the player can spend right
// now. Trade goods count unless forVoting is set, because goods may never
// substitute for influence during voting.
func (m *ResourceManager) AvailableInfluence(playerID shared.PlayerID, forVoting bool) (int, error) {
	player, err := m.getPlayer(playerID, "available_influence")
	if err != nil {
		return 0, err
	}
	return m.influenceSourcesFor(playerID, player, forVoting).Total(), nil
}

// ResourceSources returns the per-planet resource breakdown for the player,
// omitting exhausted and zero-value planets
func (m *ResourceManager) ResourceSources(playerID shared.PlayerID) (ResourceSources, error) {
	player, err := m.getPlayer(playerID, "resource_sources")
	if err != nil {
		return ResourceSources{}, err
	}
	return m.resourceSourcesFor(playerID, player), nil
}

// InfluenceSources returns the per-planet influence breakdown for the player,
// omitting exhausted and zero-value planets
func (m *ResourceManager) InfluenceSources(playerID shared.PlayerID, forVoting bool) (InfluenceSources, error) {
	player, err := m.getPlayer(playerID, "influence_sources")
	if err != nil {
		return InfluenceSources{}, err
	}
	return m.influenceSourcesFor(playerID, player, forVoting), nil
}

// allocateSpending picks planet contributions in breakdown order until the
// requested amount is covered, taking each planet's entire value even when
// that overshoots the remainder. Any shortfall left after the planets is
// covered with trade goods up to the amount available.
func allocateSpending(planets []PlanetContribution, tradeGoods, requested int) ([]PlanetContribution, int) {
	if requested <= 0 {
		return nil, 0
	}
	var selected []PlanetContribution
	covered := 0
	for _, contribution := range planets {
		if covered >= requested {
			break
		}
		selected = append(selected, contribution)
		covered += contribution.Amount
	}
	if covered >= requested {
		return selected, 0
	}
	return selected, utils.Min(requested-covered, tradeGoods)
}

// buildSpendingPlan allocates both dimensions independently from the given
// source breakdowns. Each dimension may claim trade goods up to the full
// balance the breakdown was built from; execution reconciles the combined
// demand against the actual balance.
func buildSpendingPlan(
	playerID shared.PlayerID,
	resourceSources ResourceSources,
	influenceSources InfluenceSources,
	requestedResources int,
	requestedInfluence int,
	forVoting bool,
	createdAt time.Time,
) *SpendingPlan {
	resourcePlanets, resourceTradeGoods := allocateSpending(
		resourceSources.Planets(), resourceSources.TradeGoods(), requestedResources)
	influencePlanets, influenceTradeGoods := allocateSpending(
		influenceSources.Planets(), influenceSources.TradeGoods(), requestedInfluence)

	return NewSpendingPlan(
		playerID,
		NewResourceSpending(resourcePlanets, resourceTradeGoods),
		NewInfluenceSpending(influencePlanets, influenceTradeGoods),
		requestedResources,
		requestedInfluence,
		forVoting,
		createdAt,
	)
}

// CreateSpendingPlan builds a plan covering the requested resource and
// influence amounts from the player's current sources. An unsatisfiable
// request still returns a plan; it is marked invalid and carries the combined
// shortfall message. The error return is reserved for an unknown player.
func (m *ResourceManager) CreateSpendingPlan(
	playerID shared.PlayerID,
	requestedResources int,
	requestedInfluence int,
	forVoting bool,
) (*SpendingPlan, error) {
	player, err := m.getPlayer(playerID, "create_spending_plan")
	if err != nil {
		return nil, err
	}

	resourceSources := m.resourceSourcesFor(playerID, player)
	influenceSources := m.influenceSourcesFor(playerID, player, forVoting)

	return buildSpendingPlan(
		playerID,
		resourceSources,
		influenceSources,
		requestedResources,
		requestedInfluence,
		forVoting,
		m.clock.Now(),
	), nil
}

// CanAffordSpending is a cheap affordability check against the aggregate
// totals, without building a plan
func (m *ResourceManager) CanAffordSpending(
	playerID shared.PlayerID,
	resources int,
	influence int,
	forVoting bool,
) (bool, error) {
	availableResources, err := m.AvailableResources(playerID)
	if err != nil {
		return false, err
	}
	availableInfluence, err := m.AvailableInfluence(playerID, forVoting)
	if err != nil {
		return false, err
	}
	return availableResources >= resources && availableInfluence >= influence, nil
}

// ExecuteSpendingPlan applies a plan to the live game state. Planets named by
// either dimension are exhausted first, then the plan's combined trade-good
// demand is deducted in a single operation. Recoverable failures (missing or
// already-exhausted planet, insufficient trade goods) ready every planet
// exhausted during this call and return a failed result, so no partial
// mutation is ever observable. A plan carrying negative requested totals is a
// caller defect and panics with an IntegrityViolationError.
func (m *ResourceManager) ExecuteSpendingPlan(plan *SpendingPlan) *SpendingResult {
	if plan == nil {
		return NewFailedResult("no spending plan provided")
	}
	if !plan.IsValid() {
		return NewFailedResult(plan.ErrorMessage())
	}
	if plan.RequestedResources() < 0 || plan.RequestedInfluence() < 0 {
		panic(NewIntegrityViolationError(plan.ID(), plan.RequestedResources(), plan.RequestedInfluence()))
	}

	player, ok := m.state.Player(plan.PlayerID())
	if !ok {
		notFound := NewPlayerNotFoundError(plan.PlayerID(), "execute_spending_plan", m.clock.Now())
		return NewFailedResult(notFound.Error())
	}

	var exhausted []*galaxy.Planet
	rollback := func() {
		for _, planet := range exhausted {
			planet.Ready()
		}
	}

	var exhaustedNames []string
	for _, name := range plan.PlanetsToExhaust() {
		planet, found := m.state.FindPlanet(plan.PlayerID(), name)
		if !found {
			rollback()
			notFound := NewPlanetNotFoundError(plan.PlayerID(), name, "execute_spending_plan", m.clock.Now())
			return NewFailedResult(notFound.Error())
		}
		if err := planet.Exhaust(); err != nil {
			rollback()
			return NewFailedResult(err.Error())
		}
		exhausted = append(exhausted, planet)
		exhaustedNames = append(exhaustedNames, name)
	}

	tradeGoods := plan.TotalTradeGoods()
	if err := player.SpendTradeGoods(tradeGoods); err != nil {
		rollback()
		return NewFailedResult(err.Error())
	}

	return NewSuccessResult(exhaustedNames, tradeGoods)
}
