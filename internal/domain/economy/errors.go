package economy

import (
	"fmt"
	"time"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// PlayerNotFoundError is returned when an economy operation references a
// player the game state does not contain
type PlayerNotFoundError struct {
	PlayerID  shared.PlayerID
	Operation string
	Timestamp time.Time
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %d not found during %s", e.PlayerID.Value(), e.Operation)
}

// NewPlayerNotFoundError creates a PlayerNotFoundError stamped with the
// operation that failed
func NewPlayerNotFoundError(playerID shared.PlayerID, operation string, timestamp time.Time) *PlayerNotFoundError {
	return &PlayerNotFoundError{
		PlayerID:  playerID,
		Operation: operation,
		Timestamp: timestamp,
	}
}

// PlanetNotFoundError is returned when an economy operation references a
// planet the player does not own
type PlanetNotFoundError struct {
	PlayerID  shared.PlayerID
	Planet    string
	Operation string
	Timestamp time.Time
}

func (e *PlanetNotFoundError) Error() string {
	return fmt.Sprintf("planet %s not found for player %d during %s", e.Planet, e.PlayerID.Value(), e.Operation)
}

// NewPlanetNotFoundError creates a PlanetNotFoundError stamped with the
// operation that failed
func NewPlanetNotFoundError(playerID shared.PlayerID, planet, operation string, timestamp time.Time) *PlanetNotFoundError {
	return &PlanetNotFoundError{
		PlayerID:  playerID,
		Planet:    planet,
		Operation: operation,
		Timestamp: timestamp,
	}
}

// InsufficientSourcesError reports that a player's combined sources cannot
// cover a requested amount in one currency
type InsufficientSourcesError struct {
	Currency  string
	Required  int
	Available int
}

func (e *InsufficientSourcesError) Error() string {
	return fmt.Sprintf("insufficient %s: required %d, available %d (short %d)",
		e.Currency, e.Required, e.Available, e.Required-e.Available)
}

// NewInsufficientSourcesError creates an InsufficientSourcesError
func NewInsufficientSourcesError(currency string, required, available int) *InsufficientSourcesError {
	return &InsufficientSourcesError{
		Currency:  currency,
		Required:  required,
		Available: available,
	}
}

// IntegrityViolationError marks a plan whose requested amounts are negative.
// Plans are only built by the resource manager, so a negative request means
// corrupted state rather than a recoverable caller mistake, and execution
// panics with this error instead of returning it.
type IntegrityViolationError struct {
	PlanID             PlanID
	RequestedResources int
	RequestedInfluence int
}

func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("spending plan %s carries negative requested amounts (resources=%d, influence=%d)",
		e.PlanID, e.RequestedResources, e.RequestedInfluence)
}

// NewIntegrityViolationError creates an IntegrityViolationError
func NewIntegrityViolationError(planID PlanID, requestedResources, requestedInfluence int) *IntegrityViolationError {
	return &IntegrityViolationError{
		PlanID:             planID,
		RequestedResources: requestedResources,
		RequestedInfluence: requestedInfluence,
	}
}
