package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// RecordID is a value object representing a spend record's unique identifier
type RecordID struct {
	value string
}

// NewRecordID creates a new RecordID with a generated UUID
func NewRecordID() RecordID {
	return RecordID{value: uuid.New().String()}
}

// NewRecordIDFromString creates a RecordID from an existing UUID string
func NewRecordIDFromString(id string) (RecordID, error) {
	if id == "" {
		return RecordID{}, fmt.Errorf("record_id cannot be empty")
	}

	// Validate UUID format
	_, err := uuid.Parse(id)
	if err != nil {
		return RecordID{}, fmt.Errorf("invalid record_id format: %w", err)
	}

	return RecordID{value: id}, nil
}

// MustNewRecordIDFromString creates a RecordID from a string, panicking if invalid
// Use this only when you're certain the ID is valid (e.g., from database)
func MustNewRecordIDFromString(id string) RecordID {
	rid, err := NewRecordIDFromString(id)
	if err != nil {
		panic(err)
	}
	return rid
}

// Value returns the string value of the RecordID
func (r RecordID) Value() string {
	return r.value
}

// String returns a string representation of the RecordID
func (r RecordID) String() string {
	return r.value
}

// Equals checks if two RecordIDs are equal
func (r RecordID) Equals(other RecordID) bool {
	return r.value == other.value
}

// IsZero checks if the RecordID is the zero value (uninitialized)
func (r RecordID) IsZero() bool {
	return r.value == ""
}
