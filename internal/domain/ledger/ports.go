package ledger

import (
	"context"
	"time"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// SpendRecordRepository defines persistence operations for spend records
type SpendRecordRepository interface {
	// Create persists a new spend record
	Create(ctx context.Context, record *SpendRecord) error

	// FindByID retrieves a spend record by its ID
	FindByID(ctx context.Context, id RecordID, playerID shared.PlayerID) (*SpendRecord, error)

	// FindByPlayer retrieves spend records for a player with optional filtering
	FindByPlayer(ctx context.Context, playerID shared.PlayerID, opts QueryOptions) ([]*SpendRecord, error)

	// CountByPlayer returns the count of records matching the criteria
	CountByPlayer(ctx context.Context, playerID shared.PlayerID, opts QueryOptions) (int, error)
}

// QueryOptions defines filtering and pagination options for spend queries
type QueryOptions struct {
	// Date range filtering
	StartDate *time.Time
	EndDate   *time.Time

	// Purpose filtering
	Purpose *Purpose

	// Phase filtering
	Phase *Phase

	// Voting filtering
	ForVoting *bool

	// Pagination
	Limit  int
	Offset int

	// Sorting
	OrderBy string // "timestamp ASC" or "timestamp DESC" (default DESC)
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		Offset:  0,
		OrderBy: "timestamp DESC",
	}
}
