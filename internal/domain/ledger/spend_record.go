package ledger

import (
	"fmt"
	"time"

	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// SpendRecord is the aggregate root representing one executed spending.
// Records are immutable once created and follow strict invariants.
type SpendRecord struct {
	id               RecordID
	playerID         shared.PlayerID
	timestamp        time.Time
	purpose          Purpose
	phase            Phase
	resourcesSpent   int
	influenceSpent   int
	tradeGoodsSpent  int
	planetsExhausted []string
	forVoting        bool
	description      string
}

// NewSpendRecord creates a new spend record with validation
func NewSpendRecord(
	playerID shared.PlayerID,
	timestamp time.Time,
	purpose Purpose,
	resourcesSpent int,
	influenceSpent int,
	tradeGoodsSpent int,
	planetsExhausted []string,
	forVoting bool,
	description string,
) (*SpendRecord, error) {
	id := NewRecordID()

	if playerID.IsZero() {
		return nil, &ErrInvalidRecord{
			Field:  "player_id",
			Reason: "player_id cannot be zero",
		}
	}

	if !purpose.IsValid() {
		return nil, &ErrInvalidRecord{
			Field:  "purpose",
			Reason: fmt.Sprintf("invalid purpose: %s", purpose),
		}
	}

	phase, err := purpose.ToPhase()
	if err != nil {
		return nil, &ErrInvalidRecord{
			Field:  "phase",
			Reason: err.Error(),
		}
	}

	record := &SpendRecord{
		id:               id,
		playerID:         playerID,
		timestamp:        timestamp,
		purpose:          purpose,
		phase:            phase,
		resourcesSpent:   resourcesSpent,
		influenceSpent:   influenceSpent,
		tradeGoodsSpent:  tradeGoodsSpent,
		planetsExhausted: append([]string(nil), planetsExhausted...),
		forVoting:        forVoting,
		description:      description,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// ReconstructSpendRecord reconstructs a spend record from persistence
// This bypasses some validations and is used by the repository
func ReconstructSpendRecord(
	id RecordID,
	playerID shared.PlayerID,
	timestamp time.Time,
	purpose Purpose,
	phase Phase,
	resourcesSpent int,
	influenceSpent int,
	tradeGoodsSpent int,
	planetsExhausted []string,
	forVoting bool,
	description string,
) *SpendRecord {
	return &SpendRecord{
		id:               id,
		playerID:         playerID,
		timestamp:        timestamp,
		purpose:          purpose,
		phase:            phase,
		resourcesSpent:   resourcesSpent,
		influenceSpent:   influenceSpent,
		tradeGoodsSpent:  tradeGoodsSpent,
		planetsExhausted: append([]string(nil), planetsExhausted...),
		forVoting:        forVoting,
		description:      description,
	}
}

// Validate checks that the record satisfies all invariants
func (r *SpendRecord) Validate() error {
	if r.resourcesSpent < 0 {
		return &ErrInvalidRecord{
			Field:  "resources_spent",
			Reason: "cannot be negative",
		}
	}
	if r.influenceSpent < 0 {
		return &ErrInvalidRecord{
			Field:  "influence_spent",
			Reason: "cannot be negative",
		}
	}
	if r.tradeGoodsSpent < 0 {
		return &ErrInvalidRecord{
			Field:  "trade_goods_spent",
			Reason: "cannot be negative",
		}
	}

	// A record must capture an actual spend
	if r.resourcesSpent == 0 && r.influenceSpent == 0 && r.tradeGoodsSpent == 0 && len(r.planetsExhausted) == 0 {
		return &ErrInvalidRecord{
			Field:  "amounts",
			Reason: "record must capture at least one exhausted planet or spent trade good",
		}
	}

	// Trade goods only count when applied toward one of the two totals
	if r.tradeGoodsSpent > r.resourcesSpent+r.influenceSpent {
		return &ErrSpendInvariantViolation{
			TradeGoods: r.tradeGoodsSpent,
			Resources:  r.resourcesSpent,
			Influence:  r.influenceSpent,
		}
	}

	// Voting influence never includes trade goods, so any goods in a voting
	// record must be attributable to the resource side
	if r.forVoting && r.tradeGoodsSpent > r.resourcesSpent {
		return &ErrInvalidRecord{
			Field:  "trade_goods_spent",
			Reason: "voting influence cannot include trade goods",
		}
	}

	// Timestamp cannot be in the future (allow 1 minute buffer for clock skew)
	now := time.Now().Add(1 * time.Minute)
	if r.timestamp.After(now) {
		return &ErrInvalidRecord{
			Field:  "timestamp",
			Reason: fmt.Sprintf("timestamp cannot be in the future: %s", r.timestamp),
		}
	}

	return nil
}

// Getters (all fields are immutable)

func (r *SpendRecord) ID() RecordID {
	return r.id
}

func (r *SpendRecord) PlayerID() shared.PlayerID {
	return r.playerID
}

func (r *SpendRecord) Timestamp() time.Time {
	return r.timestamp
}

func (r *SpendRecord) Purpose() Purpose {
	return r.purpose
}

func (r *SpendRecord) Phase() Phase {
	return r.phase
}

func (r *SpendRecord) ResourcesSpent() int {
	return r.resourcesSpent
}

func (r *SpendRecord) InfluenceSpent() int {
	return r.influenceSpent
}

func (r *SpendRecord) TradeGoodsSpent() int {
	return r.tradeGoodsSpent
}

func (r *SpendRecord) PlanetsExhausted() []string {
	return append([]string(nil), r.planetsExhausted...)
}

func (r *SpendRecord) ForVoting() bool {
	return r.forVoting
}

func (r *SpendRecord) Description() string {
	return r.description
}

// PlanetCount returns how many planets the spend exhausted
func (r *SpendRecord) PlanetCount() int {
	return len(r.planetsExhausted)
}

// TotalSpent returns the combined currency total the record captures
func (r *SpendRecord) TotalSpent() int {
	return r.resourcesSpent + r.influenceSpent
}

// String provides a human-readable representation
func (r *SpendRecord) String() string {
	return fmt.Sprintf("SpendRecord[%s, purpose=%s, resources=%d, influence=%d, trade_goods=%d, planets=%d]",
		r.id.String(), r.purpose, r.resourcesSpent, r.influenceSpent, r.tradeGoodsSpent, len(r.planetsExhausted))
}
