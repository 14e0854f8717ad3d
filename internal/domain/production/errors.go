package production

import (
	"fmt"
)

// UnknownUnitTypeError is returned when a cost is requested for a unit type
// the registry has no stats for
type UnknownUnitTypeError struct {
	UnitType UnitType
}

func (e *UnknownUnitTypeError) Error() string {
	return fmt.Sprintf("no stats registered for unit type %s", e.UnitType)
}

// NewUnknownUnitTypeError creates an UnknownUnitTypeError
func NewUnknownUnitTypeError(unitType UnitType) *UnknownUnitTypeError {
	return &UnknownUnitTypeError{UnitType: unitType}
}

// CostCalculationError is raised when modifier stacking produces a cost that
// is not a finite number. It carries the full context because the defect
// lives in the registered modifier table, not in the caller's request.
type CostCalculationError struct {
	UnitType     UnitType
	RawValue     float64
	Faction      string
	Technologies []string
}

func (e *CostCalculationError) Error() string {
	return fmt.Sprintf("cost calculation for %s produced invalid value %v (faction=%q, technologies=%v)",
		e.UnitType, e.RawValue, e.Faction, e.Technologies)
}

// NewCostCalculationError creates a CostCalculationError
func NewCostCalculationError(unitType UnitType, rawValue float64, faction string, technologies []string) *CostCalculationError {
	return &CostCalculationError{
		UnitType:     unitType,
		RawValue:     rawValue,
		Faction:      faction,
		Technologies: technologies,
	}
}

// NotProducibleError marks a unit whose total cost is zero, which standard
// production rejects. Construction effects waive this through the exemption
// path.
type NotProducibleError struct {
	UnitType UnitType
}

func (e *NotProducibleError) Error() string {
	return fmt.Sprintf("unit type %s cannot be produced through standard production", e.UnitType)
}

// NewNotProducibleError creates a NotProducibleError
func NewNotProducibleError(unitType UnitType) *NotProducibleError {
	return &NotProducibleError{UnitType: unitType}
}
