package production

import (
	"fmt"
	"strings"
)

// UnitType identifies a produceable unit class
type UnitType string

const (
	UnitCarrier     UnitType = "CARRIER"
	UnitCruiser     UnitType = "CRUISER"
	UnitDestroyer   UnitType = "DESTROYER"
	UnitDreadnought UnitType = "DREADNOUGHT"
	UnitFighter     UnitType = "FIGHTER"
	UnitFlagship    UnitType = "FLAGSHIP"
	UnitInfantry    UnitType = "INFANTRY"
	UnitMech        UnitType = "MECH"
	UnitPDS         UnitType = "PDS"
	UnitSpaceDock   UnitType = "SPACE_DOCK"
	UnitWarSun      UnitType = "WAR_SUN"
)

// dualCapable lists the unit types produced two at a time for the price of
// one when exactly two are requested
var dualCapable = map[UnitType]bool{
	UnitFighter:  true,
	UnitInfantry: true,
}

// IsDualCapable reports whether the type participates in dual production
func (u UnitType) IsDualCapable() bool {
	return dualCapable[u]
}

// String returns the wire name of the unit type
func (u UnitType) String() string {
	return string(u)
}

// ParseUnitType converts a user-supplied name into a UnitType
func ParseUnitType(name string) (UnitType, error) {
	normalized := UnitType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")))
	switch normalized {
	case UnitCarrier, UnitCruiser, UnitDestroyer, UnitDreadnought, UnitFighter,
		UnitFlagship, UnitInfantry, UnitMech, UnitPDS, UnitSpaceDock, UnitWarSun:
		return normalized, nil
	}
	return "", fmt.Errorf("unknown unit type: %s", name)
}
