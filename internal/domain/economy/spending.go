package economy

// ResourceSpending is the resource half of a spending plan: the planets chosen
// for exhaustion (each at its full value) and the trade goods to consume.
// The total may exceed what was asked for, since planets cannot be partially
// exhausted.
type ResourceSpending struct {
	planets    []PlanetContribution
	tradeGoods int
}

// NewResourceSpending creates a resource spending record
func NewResourceSpending(planets []PlanetContribution, tradeGoods int) ResourceSpending {
	copied := make([]PlanetContribution, len(planets))
	copy(copied, planets)
	return ResourceSpending{planets: copied, tradeGoods: tradeGoods}
}

// Planets returns the chosen planets in selection order
func (s ResourceSpending) Planets() []PlanetContribution {
	planets := make([]PlanetContribution, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// PlanetNames returns just the names of the chosen planets, in selection order
func (s ResourceSpending) PlanetNames() []string {
	names := make([]string, len(s.planets))
	for i, contribution := range s.planets {
		names[i] = contribution.Planet
	}
	return names
}

// TradeGoods returns the trade goods this spending consumes
func (s ResourceSpending) TradeGoods() int {
	return s.tradeGoods
}

// Total returns the amount this spending yields
func (s ResourceSpending) Total() int {
	total := s.tradeGoods
	for _, contribution := range s.planets {
		total += contribution.Amount
	}
	return total
}

// InfluenceSpending mirrors ResourceSpending for the influence half of a plan
type InfluenceSpending struct {
	planets    []PlanetContribution
	tradeGoods int
}

// NewInfluenceSpending creates an influence spending record
func NewInfluenceSpending(planets []PlanetContribution, tradeGoods int) InfluenceSpending {
	copied := make([]PlanetContribution, len(planets))
	copy(copied, planets)
	return InfluenceSpending{planets: copied, tradeGoods: tradeGoods}
}

// Planets returns the chosen planets in selection order
func (s InfluenceSpending) Planets() []PlanetContribution {
	planets := make([]PlanetContribution, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// PlanetNames returns just the names of the chosen planets, in selection order
func (s InfluenceSpending) PlanetNames() []string {
	names := make([]string, len(s.planets))
	for i, contribution := range s.planets {
		names[i] = contribution.Planet
	}
	return names
}

// TradeGoods returns the trade goods this spending consumes
func (s InfluenceSpending) TradeGoods() int {
	return s.tradeGoods
}

// Total returns the amount this spending yields
func (s InfluenceSpending) Total() int {
	total := s.tradeGoods
	for _, contribution := range s.planets {
		total += contribution.Amount
	}
	return total
}
