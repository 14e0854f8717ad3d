package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GormSpendRecordRepository implements SpendRecordRepository using GORM
type GormSpendRecordRepository struct {
	db *gorm.DB
}

// NewGormSpendRecordRepository creates a new GORM spend record repository
func NewGormSpendRecordRepository(db *gorm.DB) *GormSpendRecordRepository {
	return &GormSpendRecordRepository{db: db}
}

// Create persists a new spend record
func (r *GormSpendRecordRepository) Create(ctx context.Context, record *ledger.SpendRecord) error {
	model, err := r.recordToModel(record)
	if err != nil {
		return fmt.Errorf("failed to convert spend record to model: %w", err)
	}

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return fmt.Errorf("failed to create spend record: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a spend record by its ID
func (r *GormSpendRecordRepository) FindByID(ctx context.Context, id ledger.RecordID, playerID shared.PlayerID) (*ledger.SpendRecord, error) {
	var model SpendRecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND player_id = ?", id.String(), playerID.Value()).
		First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, &ledger.ErrRecordNotFound{
				ID:       id.String(),
				PlayerID: playerID.Value(),
			}
		}
		return nil, fmt.Errorf("failed to find spend record: %w", result.Error)
	}

	return r.modelToRecord(&model)
}

// FindByPlayer retrieves spend records for a player with optional filtering
func (r *GormSpendRecordRepository) FindByPlayer(ctx context.Context, playerID shared.PlayerID, opts ledger.QueryOptions) ([]*ledger.SpendRecord, error) {
	query := r.db.WithContext(ctx).Where("player_id = ?", playerID.Value())

	// Apply filters
	query = r.applyFilters(query, opts)

	// Apply sorting
	orderBy := "timestamp DESC"
	if opts.OrderBy != "" {
		orderBy = opts.OrderBy
	}
	query = query.Order(orderBy)

	// Apply pagination
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var models []SpendRecordModel
	result := query.Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find spend records: %w", result.Error)
	}

	// Convert models to domain entities
	records := make([]*ledger.SpendRecord, len(models))
	for i, model := range models {
		record, err := r.modelToRecord(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert spend record model: %w", err)
		}
		records[i] = record
	}

	return records, nil
}

// CountByPlayer returns the count of records matching the criteria
func (r *GormSpendRecordRepository) CountByPlayer(ctx context.Context, playerID shared.PlayerID, opts ledger.QueryOptions) (int, error) {
	query := r.db.WithContext(ctx).Model(&SpendRecordModel{}).Where("player_id = ?", playerID.Value())

	// Apply filters
	query = r.applyFilters(query, opts)

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count spend records: %w", result.Error)
	}

	return int(count), nil
}

// applyFilters applies query options to a GORM query
func (r *GormSpendRecordRepository) applyFilters(query *gorm.DB, opts ledger.QueryOptions) *gorm.DB {
	// Date range filtering
	if opts.StartDate != nil {
		query = query.Where("timestamp >= ?", *opts.StartDate)
	}
	if opts.EndDate != nil {
		query = query.Where("timestamp <= ?", *opts.EndDate)
	}

	// Purpose filtering
	if opts.Purpose != nil {
		query = query.Where("purpose = ?", opts.Purpose.String())
	}

	// Phase filtering
	if opts.Phase != nil {
		query = query.Where("phase = ?", opts.Phase.String())
	}

	// Voting filtering
	if opts.ForVoting != nil {
		forVoting := 0
		if *opts.ForVoting {
			forVoting = 1
		}
		query = query.Where("for_voting = ?", forVoting)
	}

	return query
}

// modelToRecord converts database model to domain entity
func (r *GormSpendRecordRepository) modelToRecord(model *SpendRecordModel) (*ledger.SpendRecord, error) {
	// Parse record ID
	id, err := ledger.NewRecordIDFromString(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid record ID in database: %w", err)
	}

	// Parse player ID
	playerID, err := shared.NewPlayerID(model.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID in database: %w", err)
	}

	// Parse purpose
	purpose, err := ledger.ParsePurpose(model.Purpose)
	if err != nil {
		return nil, fmt.Errorf("invalid purpose in database: %w", err)
	}

	// Parse phase
	phase, err := ledger.ParsePhase(model.Phase)
	if err != nil {
		return nil, fmt.Errorf("invalid phase in database: %w", err)
	}

	// Parse exhausted planet list
	var planetsExhausted []string
	if model.PlanetsExhausted != "" {
		if err := json.Unmarshal([]byte(model.PlanetsExhausted), &planetsExhausted); err != nil {
			// If unmarshal fails, leave the list as nil
			planetsExhausted = nil
		}
	}

	// Reconstruct spend record entity
	return ledger.ReconstructSpendRecord(
		id,
		playerID,
		model.Timestamp,
		purpose,
		phase,
		model.ResourcesSpent,
		model.InfluenceSpent,
		model.TradeGoodsSpent,
		planetsExhausted,
		model.ForVoting == 1,
		model.Description,
	), nil
}

// recordToModel converts domain entity to database model
func (r *GormSpendRecordRepository) recordToModel(record *ledger.SpendRecord) (*SpendRecordModel, error) {
	// Marshal exhausted planet list to JSON
	var planetsJSON string
	if len(record.PlanetsExhausted()) > 0 {
		bytes, err := json.Marshal(record.PlanetsExhausted())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal planet list: %w", err)
		}
		planetsJSON = string(bytes)
	}

	forVoting := 0
	if record.ForVoting() {
		forVoting = 1
	}

	return &SpendRecordModel{
		ID:               record.ID().String(),
		PlayerID:         record.PlayerID().Value(),
		Timestamp:        record.Timestamp(),
		Purpose:          record.Purpose().String(),
		Phase:            record.Phase().String(),
		ResourcesSpent:   record.ResourcesSpent(),
		InfluenceSpent:   record.InfluenceSpent(),
		TradeGoodsSpent:  record.TradeGoodsSpent(),
		PlanetsExhausted: planetsJSON,
		ForVoting:        forVoting,
		Description:      record.Description(),
	}, nil
}
