package ledger

import "fmt"

// ErrInvalidRecord represents validation errors for spend records
type ErrInvalidRecord struct {
	Field  string
	Reason string
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid spend record: %s - %s", e.Field, e.Reason)
}

// ErrSpendInvariantViolation represents errors when the recorded amounts
// cannot have come from a real execution
type ErrSpendInvariantViolation struct {
	TradeGoods int
	Resources  int
	Influence  int
}

func (e *ErrSpendInvariantViolation) Error() string {
	return fmt.Sprintf("spend invariant violated: trade_goods=%d exceeds combined totals resources=%d + influence=%d",
		e.TradeGoods, e.Resources, e.Influence)
}

// ErrRecordNotFound represents errors when a spend record cannot be found
type ErrRecordNotFound struct {
	ID       string
	PlayerID int
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("spend record not found: id=%s, player_id=%d", e.ID, e.PlayerID)
}
