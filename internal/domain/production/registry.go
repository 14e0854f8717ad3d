package production

// UnitStats carries the printed stats for a unit type. Only Cost participates
// in spending; the rest ride along for display and future combat rules.
type UnitStats struct {
	Cost     float64
	Combat   int
	Move     int
	Capacity int
}

// StatsRegistry is the cost table: base stats per unit type plus registered
// per-faction and per-technology cost deltas. It is consumed by the cost
// validator and owned by whoever seeds the game.
type StatsRegistry struct {
	base             map[UnitType]UnitStats
	factionModifiers map[UnitType]map[string]float64
	techModifiers    map[UnitType]map[string]float64
}

// NewStatsRegistry creates an empty registry
func NewStatsRegistry() *StatsRegistry {
	return &StatsRegistry{
		base:             make(map[UnitType]UnitStats),
		factionModifiers: make(map[UnitType]map[string]float64),
		techModifiers:    make(map[UnitType]map[string]float64),
	}
}

// RegisterUnit sets the base stats for a unit type, replacing any previous
// registration
func (r *StatsRegistry) RegisterUnit(unitType UnitType, stats UnitStats) {
	r.base[unitType] = stats
}

// RegisterFactionModifier adds a cost delta applied when the producing
// player belongs to the faction
func (r *StatsRegistry) RegisterFactionModifier(faction string, unitType UnitType, delta float64) {
	if r.factionModifiers[unitType] == nil {
		r.factionModifiers[unitType] = make(map[string]float64)
	}
	r.factionModifiers[unitType][faction] = delta
}

// RegisterTechnologyModifier adds a cost delta applied when the producing
// player owns the technology
func (r *StatsRegistry) RegisterTechnologyModifier(technology string, unitType UnitType, delta float64) {
	if r.techModifiers[unitType] == nil {
		r.techModifiers[unitType] = make(map[string]float64)
	}
	r.techModifiers[unitType][technology] = delta
}

// BaseStats returns the registered stats for a unit type
func (r *StatsRegistry) BaseStats(unitType UnitType) (UnitStats, bool) {
	stats, ok := r.base[unitType]
	return stats, ok
}

// FactionModifier returns the cost delta registered for (faction, unit type)
func (r *StatsRegistry) FactionModifier(faction string, unitType UnitType) (float64, bool) {
	delta, ok := r.factionModifiers[unitType][faction]
	return delta, ok
}

// TechnologyModifier returns the cost delta registered for
// (technology, unit type)
func (r *StatsRegistry) TechnologyModifier(technology string, unitType UnitType) (float64, bool) {
	delta, ok := r.techModifiers[unitType][technology]
	return delta, ok
}

// UnitTypes returns every registered unit type in a fixed catalog order
func (r *StatsRegistry) UnitTypes() []UnitType {
	ordered := []UnitType{
		UnitCarrier, UnitCruiser, UnitDestroyer, UnitDreadnought, UnitFighter,
		UnitFlagship, UnitInfantry, UnitMech, UnitPDS, UnitSpaceDock, UnitWarSun,
	}
	var registered []UnitType
	for _, unitType := range ordered {
		if _, ok := r.base[unitType]; ok {
			registered = append(registered, unitType)
		}
	}
	return registered
}

// DefaultStatsRegistry returns a registry seeded with the standard unit
// roster. Fighters and infantry cost one per pair; structures cost nothing
// and are placed through construction effects rather than standard
// production.
func DefaultStatsRegistry() *StatsRegistry {
	registry := NewStatsRegistry()

	registry.RegisterUnit(UnitCarrier, UnitStats{Cost: 3, Combat: 9, Move: 1, Capacity: 4})
	registry.RegisterUnit(UnitCruiser, UnitStats{Cost: 2, Combat: 7, Move: 2})
	registry.RegisterUnit(UnitDestroyer, UnitStats{Cost: 1, Combat: 9, Move: 2})
	registry.RegisterUnit(UnitDreadnought, UnitStats{Cost: 4, Combat: 5, Move: 1, Capacity: 1})
	registry.RegisterUnit(UnitFighter, UnitStats{Cost: 1, Combat: 9})
	registry.RegisterUnit(UnitFlagship, UnitStats{Cost: 8, Combat: 7, Move: 1, Capacity: 3})
	registry.RegisterUnit(UnitInfantry, UnitStats{Cost: 1, Combat: 8})
	registry.RegisterUnit(UnitMech, UnitStats{Cost: 2, Combat: 6})
	registry.RegisterUnit(UnitPDS, UnitStats{Cost: 0})
	registry.RegisterUnit(UnitSpaceDock, UnitStats{Cost: 0})
	registry.RegisterUnit(UnitWarSun, UnitStats{Cost: 12, Combat: 3, Move: 2, Capacity: 6})

	registry.RegisterTechnologyModifier("PROTOTYPE_WAR_SUN_II", UnitWarSun, -2)

	return registry
}
