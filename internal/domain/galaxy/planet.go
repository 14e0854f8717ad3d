package galaxy

import (
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// PlanetTrait classifies a planet for exploration and objective scoring.
// Traits do not affect spending; the economy only reads values and exhaustion.
type PlanetTrait string

const (
	TraitCultural   PlanetTrait = "CULTURAL"
	TraitHazardous  PlanetTrait = "HAZARDOUS"
	TraitIndustrial PlanetTrait = "INDUSTRIAL"
	TraitNone       PlanetTrait = "NONE"
)

// Planet is a card on a player's side of the table: it yields its printed
// resources or influence once, then sits exhausted until readied
type Planet struct {
	name      string
	resources int
	influence int
	trait     PlanetTrait
	exhausted bool
}

// NewPlanet creates a ready planet with the given printed values
func NewPlanet(name string, resources, influence int) (*Planet, error) {
	return NewPlanetWithTrait(name, resources, influence, TraitNone)
}

// NewPlanetWithTrait creates a ready planet carrying an exploration trait
func NewPlanetWithTrait(name string, resources, influence int, trait PlanetTrait) (*Planet, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	if resources < 0 {
		return nil, shared.NewValidationError("resources", "cannot be negative")
	}
	if influence < 0 {
		return nil, shared.NewValidationError("influence", "cannot be negative")
	}
	if trait == "" {
		trait = TraitNone
	}
	return &Planet{
		name:      name,
		resources: resources,
		influence: influence,
		trait:     trait,
	}, nil
}

// ReconstructPlanet restores a planet from persistence without validation
func ReconstructPlanet(name string, resources, influence int, trait PlanetTrait, exhausted bool) *Planet {
	return &Planet{
		name:      name,
		resources: resources,
		influence: influence,
		trait:     trait,
		exhausted: exhausted,
	}
}

// Name returns the planet's name
func (p *Planet) Name() string {
	return p.name
}

// Resources returns the planet's printed resource value
func (p *Planet) Resources() int {
	return p.resources
}

// Influence returns the planet's printed influence value
func (p *Planet) Influence() int {
	return p.influence
}

// Trait returns the planet's exploration trait
func (p *Planet) Trait() PlanetTrait {
	return p.trait
}

// IsExhausted reports whether the planet is currently face down
func (p *Planet) IsExhausted() bool {
	return p.exhausted
}

// CanSpendResources reports whether exhausting this planet yields resources
func (p *Planet) CanSpendResources() bool {
	return !p.exhausted && p.resources > 0
}

// CanSpendInfluence reports whether exhausting this planet yields influence
func (p *Planet) CanSpendInfluence() bool {
	return !p.exhausted && p.influence > 0
}

// Exhaust flips the planet face down. Exhausting an already exhausted planet
// is an error so callers can detect conflicting spends.
func (p *Planet) Exhaust() error {
	if p.exhausted {
		return NewPlanetAlreadyExhaustedError(p.name)
	}
	p.exhausted = true
	return nil
}

// Ready flips the planet face up again
func (p *Planet) Ready() {
	p.exhausted = false
}
