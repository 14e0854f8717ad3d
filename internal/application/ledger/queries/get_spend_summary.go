package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/twilightsim/imperium-go/internal/application/mediator"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GetSpendSummaryQuery represents a query to aggregate spending over a period
type GetSpendSummaryQuery struct {
	PlayerID  int
	StartDate time.Time
	EndDate   time.Time
	GroupBy   string // "purpose" or "phase"
}

// GetSpendSummaryResponse represents the aggregated spending result
type GetSpendSummaryResponse struct {
	Period string
	Groups []*SpendGroupSummary
}

// SpendGroupSummary represents spending totals for one purpose or phase
type SpendGroupSummary struct {
	Group            string
	ResourcesSpent   int
	InfluenceSpent   int
	TradeGoodsSpent  int
	TotalSpent       int
	PlanetsExhausted int
	Records          int
}

// GetSpendSummaryHandler handles the GetSpendSummary query
type GetSpendSummaryHandler struct {
	recordRepo ledger.SpendRecordRepository
}

// NewGetSpendSummaryHandler creates a new GetSpendSummaryHandler
func NewGetSpendSummaryHandler(recordRepo ledger.SpendRecordRepository) *GetSpendSummaryHandler {
	return &GetSpendSummaryHandler{
		recordRepo: recordRepo,
	}
}

// Handle executes the GetSpendSummary query
func (h *GetSpendSummaryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetSpendSummaryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetSpendSummaryQuery")
	}

	// Validate group by
	if query.GroupBy == "" {
		query.GroupBy = "purpose"
	}
	if query.GroupBy != "purpose" && query.GroupBy != "phase" {
		return nil, fmt.Errorf("unsupported grouping: %s (use 'purpose' or 'phase')", query.GroupBy)
	}

	// Resolve player ID
	playerID, err := shared.NewPlayerID(query.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID: %w", err)
	}

	// Query all records in date range
	opts := ledger.QueryOptions{
		StartDate: &query.StartDate,
		EndDate:   &query.EndDate,
		Limit:     0, // No limit - get all records
	}

	records, err := h.recordRepo.FindByPlayer(ctx, playerID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query spend records: %w", err)
	}

	return h.calculateSummary(query, records), nil
}

func (h *GetSpendSummaryHandler) calculateSummary(
	query *GetSpendSummaryQuery,
	records []*ledger.SpendRecord,
) *GetSpendSummaryResponse {
	groupMap := make(map[string]*SpendGroupSummary)

	// Initialize all groups so ordering is stable even with sparse data
	groupOrder := make([]string, 0)
	if query.GroupBy == "phase" {
		for _, phase := range ledger.AllPhases() {
			groupMap[phase.String()] = &SpendGroupSummary{Group: phase.String()}
			groupOrder = append(groupOrder, phase.String())
		}
	} else {
		for _, purpose := range ledger.AllPurposes() {
			groupMap[purpose.String()] = &SpendGroupSummary{Group: purpose.String()}
			groupOrder = append(groupOrder, purpose.String())
		}
	}

	// Aggregate records into their group
	for _, record := range records {
		key := record.Purpose().String()
		if query.GroupBy == "phase" {
			key = record.Phase().String()
		}

		group, exists := groupMap[key]
		if !exists {
			group = &SpendGroupSummary{Group: key}
			groupMap[key] = group
			groupOrder = append(groupOrder, key)
		}

		group.Records++
		group.ResourcesSpent += record.ResourcesSpent()
		group.InfluenceSpent += record.InfluenceSpent()
		group.TradeGoodsSpent += record.TradeGoodsSpent()
		group.TotalSpent += record.TotalSpent()
		group.PlanetsExhausted += record.PlanetCount()
	}

	// Keep only groups that saw spending
	groups := make([]*SpendGroupSummary, 0)
	for _, key := range groupOrder {
		if group := groupMap[key]; group.Records > 0 {
			groups = append(groups, group)
		}
	}

	// Format period string
	period := fmt.Sprintf("%s to %s",
		query.StartDate.Format("2006-01-02"),
		query.EndDate.Format("2006-01-02"))

	return &GetSpendSummaryResponse{
		Period: period,
		Groups: groups,
	}
}
