package economy

import (
	"fmt"

	"github.com/google/uuid"
)

// PlanID is a value object identifying a spending plan
type PlanID struct {
	value string
}

// NewPlanID creates a new PlanID with a generated UUID
func NewPlanID() PlanID {
	return PlanID{value: uuid.New().String()}
}

// NewPlanIDFromString creates a PlanID from an existing UUID string
func NewPlanIDFromString(id string) (PlanID, error) {
	if id == "" {
		return PlanID{}, fmt.Errorf("plan_id cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return PlanID{}, fmt.Errorf("invalid plan_id format: %w", err)
	}
	return PlanID{value: id}, nil
}

// Value returns the string value of the PlanID
func (p PlanID) Value() string {
	return p.value
}

// String returns a string representation of the PlanID
func (p PlanID) String() string {
	return p.value
}

// Equals checks if two PlanIDs are equal
func (p PlanID) Equals(other PlanID) bool {
	return p.value == other.value
}

// IsZero checks if the PlanID is the zero value (uninitialized)
func (p PlanID) IsZero() bool {
	return p.value == ""
}
