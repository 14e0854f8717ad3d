package galaxy

import (
	"fmt"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// PlanetAlreadyExhaustedError signals a conflicting spend: the plan expected
// the planet to be ready but it was already face down
type PlanetAlreadyExhaustedError struct {
	Planet string
}

func (e *PlanetAlreadyExhaustedError) Error() string {
	return fmt.Sprintf("planet %s is already exhausted", e.Planet)
}

func NewPlanetAlreadyExhaustedError(planet string) *PlanetAlreadyExhaustedError {
	return &PlanetAlreadyExhaustedError{Planet: planet}
}

// InsufficientTradeGoodsError signals a deduction larger than the balance
type InsufficientTradeGoodsError struct {
	PlayerID  shared.PlayerID
	Required  int
	Available int
}

func (e *InsufficientTradeGoodsError) Error() string {
	return fmt.Sprintf("insufficient trade goods: need %d, have %d", e.Required, e.Available)
}

func NewInsufficientTradeGoodsError(playerID shared.PlayerID, required, available int) *InsufficientTradeGoodsError {
	return &InsufficientTradeGoodsError{
		PlayerID:  playerID,
		Required:  required,
		Available: available,
	}
}

// InsufficientCommoditiesError signals a conversion larger than the balance
type InsufficientCommoditiesError struct {
	PlayerID  shared.PlayerID
	Required  int
	Available int
}

func (e *InsufficientCommoditiesError) Error() string {
	return fmt.Sprintf("insufficient commodities: need %d, have %d", e.Required, e.Available)
}

func NewInsufficientCommoditiesError(playerID shared.PlayerID, required, available int) *InsufficientCommoditiesError {
	return &InsufficientCommoditiesError{
		PlayerID:  playerID,
		Required:  required,
		Available: available,
	}
}

// UnknownPlayerError signals an operation against a player id the state has
// never seen
type UnknownPlayerError struct {
	PlayerID shared.PlayerID
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player %s is not in the galaxy state", e.PlayerID)
}

func NewUnknownPlayerError(id shared.PlayerID) *UnknownPlayerError {
	return &UnknownPlayerError{PlayerID: id}
}

// UnknownPlanetError signals a lookup of a planet the player does not control
type UnknownPlanetError struct {
	PlayerID shared.PlayerID
	Planet   string
}

func (e *UnknownPlanetError) Error() string {
	return fmt.Sprintf("player %s does not control planet %s", e.PlayerID, e.Planet)
}

func NewUnknownPlanetError(id shared.PlayerID, planet string) *UnknownPlanetError {
	return &UnknownPlanetError{PlayerID: id, Planet: planet}
}

// DuplicatePlayerError signals a second registration of the same player id
type DuplicatePlayerError struct {
	PlayerID shared.PlayerID
}

func (e *DuplicatePlayerError) Error() string {
	return fmt.Sprintf("player %s is already in the galaxy state", e.PlayerID)
}

func NewDuplicatePlayerError(id shared.PlayerID) *DuplicatePlayerError {
	return &DuplicatePlayerError{PlayerID: id}
}

// DuplicatePlanetError signals a planet added twice to the same player
type DuplicatePlanetError struct {
	PlayerID shared.PlayerID
	Planet   string
}

func (e *DuplicatePlanetError) Error() string {
	return fmt.Sprintf("player %s already controls planet %s", e.PlayerID, e.Planet)
}

func NewDuplicatePlanetError(id shared.PlayerID, planet string) *DuplicatePlanetError {
	return &DuplicatePlanetError{PlayerID: id, Planet: planet}
}
