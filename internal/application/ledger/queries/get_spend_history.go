package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GetSpendHistoryQuery represents a query to retrieve spend records
type GetSpendHistoryQuery struct {
	PlayerID  int
	StartDate *time.Time
	EndDate   *time.Time
	Purpose   *string
	Phase     *string
	ForVoting *bool
	Limit     int
	Offset    int
	OrderBy   string
}

// GetSpendHistoryResponse represents the result of the query
type GetSpendHistoryResponse struct {
	Records []*SpendRecordDTO
	Total   int
}

// SpendRecordDTO represents a spend record data transfer object
type SpendRecordDTO struct {
	ID               string
	PlayerID         int
	Timestamp        time.Time
	Purpose          string
	Phase            string
	ResourcesSpent   int
	InfluenceSpent   int
	TradeGoodsSpent  int
	TotalSpent       int
	PlanetsExhausted []string
	ForVoting        bool
	Description      string
}

// GetSpendHistoryHandler handles the GetSpendHistory query
type GetSpendHistoryHandler struct {
	recordRepo ledger.SpendRecordRepository
}

// NewGetSpendHistoryHandler creates a new GetSpendHistoryHandler
func NewGetSpendHistoryHandler(recordRepo ledger.SpendRecordRepository) *GetSpendHistoryHandler {
	return &GetSpendHistoryHandler{
		recordRepo: recordRepo,
	}
}

// Handle executes the GetSpendHistory query
func (h *GetSpendHistoryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetSpendHistoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetSpendHistoryQuery")
	}

	playerID, err := shared.NewPlayerID(query.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	opts, err := h.buildQueryOptions(query)
	if err != nil {
		return nil, err
	}

	records, err := h.recordRepo.FindByPlayer(ctx, playerID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query spend records: %w", err)
	}

	total, err := h.recordRepo.CountByPlayer(ctx, playerID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to count spend records: %w", err)
	}

	dtos := make([]*SpendRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = h.toDTO(record)
	}

	return &GetSpendHistoryResponse{
		Records: dtos,
		Total:   total,
	}, nil
}

func (h *GetSpendHistoryHandler) buildQueryOptions(query *GetSpendHistoryQuery) (ledger.QueryOptions, error) {
	opts := ledger.DefaultQueryOptions()

	// Date range
	if query.StartDate != nil {
		opts.StartDate = query.StartDate
	}
	if query.EndDate != nil {
		opts.EndDate = query.EndDate
	}

	// Purpose filter
	if query.Purpose != nil {
		purpose, err := ledger.ParsePurpose(*query.Purpose)
		if err != nil {
			return opts, fmt.Errorf("invalid purpose: %w", err)
		}
		opts.Purpose = &purpose
	}

	// Phase filter
	if query.Phase != nil {
		phase, err := ledger.ParsePhase(*query.Phase)
		if err != nil {
			return opts, fmt.Errorf("invalid phase: %w", err)
		}
		opts.Phase = &phase
	}

	// Voting filter
	if query.ForVoting != nil {
		opts.ForVoting = query.ForVoting
	}

	// Pagination
	if query.Limit > 0 {
		opts.Limit = query.Limit
	}
	opts.Offset = query.Offset

	// Sorting
	if query.OrderBy != "" {
		opts.OrderBy = query.OrderBy
	}

	return opts, nil
}

func (h *GetSpendHistoryHandler) toDTO(record *ledger.SpendRecord) *SpendRecordDTO {
	return &SpendRecordDTO{
		ID:               record.ID().String(),
		PlayerID:         record.PlayerID().Value(),
		Timestamp:        record.Timestamp(),
		Purpose:          record.Purpose().String(),
		Phase:            record.Phase().String(),
		ResourcesSpent:   record.ResourcesSpent(),
		InfluenceSpent:   record.InfluenceSpent(),
		TradeGoodsSpent:  record.TradeGoodsSpent(),
		TotalSpent:       record.TotalSpent(),
		PlanetsExhausted: record.PlanetsExhausted(),
		ForVoting:        record.ForVoting(),
		Description:      record.Description(),
	}
}
