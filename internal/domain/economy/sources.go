package economy

// PlanetContribution is one planet's share of an availability breakdown.
// A planet always contributes its entire printed value.
type PlanetContribution struct {
	Planet string
	Amount int
}

// ResourceSources itemizes where a player's spendable resources come from:
// contributing planets in acquisition order, plus the trade-good balance.
type ResourceSources struct {
	planets    []PlanetContribution
	tradeGoods int
}

// NewResourceSources creates a resource breakdown
func NewResourceSources(planets []PlanetContribution, tradeGoods int) ResourceSources {
	copied := make([]PlanetContribution, len(planets))
	copy(copied, planets)
	return ResourceSources{planets: copied, tradeGoods: tradeGoods}
}

// Planets returns the contributing planets in acquisition order
func (s ResourceSources) Planets() []PlanetContribution {
	planets := make([]PlanetContribution, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// TradeGoods returns the trade goods available as resources
func (s ResourceSources) TradeGoods() int {
	return s.tradeGoods
}

// PlanetTotal returns the sum of all planet contributions
func (s ResourceSources) PlanetTotal() int {
	total := 0
	for _, contribution := range s.planets {
		total += contribution.Amount
	}
	return total
}

// Total returns planet contributions plus trade goods
func (s ResourceSources) Total() int {
	return s.PlanetTotal() + s.tradeGoods
}

// InfluenceSources mirrors ResourceSources for the influence side. Breakdowns
// computed for voting always report zero trade goods.
type InfluenceSources struct {
	planets    []PlanetContribution
	tradeGoods int
	forVoting  bool
}

// NewInfluenceSources creates an influence breakdown. When forVoting is true
// the trade-good count is forced to zero regardless of the player's balance.
func NewInfluenceSources(planets []PlanetContribution, tradeGoods int, forVoting bool) InfluenceSources {
	copied := make([]PlanetContribution, len(planets))
	copy(copied, planets)
	if forVoting {
		tradeGoods = 0
	}
	return InfluenceSources{planets: copied, tradeGoods: tradeGoods, forVoting: forVoting}
}

// Planets returns the contributing planets in acquisition order
func (s InfluenceSources) Planets() []PlanetContribution {
	planets := make([]PlanetContribution, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// TradeGoods returns the trade goods available as influence (always zero for
// voting breakdowns)
func (s InfluenceSources) TradeGoods() int {
	return s.tradeGoods
}

// ForVoting reports whether this breakdown was computed under voting rules
func (s InfluenceSources) ForVoting() bool {
	return s.forVoting
}

// PlanetTotal returns the sum of all planet contributions
func (s InfluenceSources) PlanetTotal() int {
	total := 0
	for _, contribution := range s.planets {
		total += contribution.Amount
	}
	return total
}

// Total returns planet contributions plus trade goods
func (s InfluenceSources) Total() int {
	return s.PlanetTotal() + s.tradeGoods
}
