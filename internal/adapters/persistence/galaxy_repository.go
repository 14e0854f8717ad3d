package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// GormStateRepository implements galaxy.StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GORM state repository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// LoadState reconstructs the full galaxy state from storage
func (r *GormStateRepository) LoadState(ctx context.Context) (*galaxy.State, error) {
	var playerModels []PlayerModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&playerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	var planetModels []PlanetModel
	if err := r.db.WithContext(ctx).Order("player_id ASC, position ASC").Find(&planetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load planets: %w", err)
	}

	state := galaxy.NewState()
	for _, model := range playerModels {
		player, err := r.modelToPlayer(&model)
		if err != nil {
			return nil, err
		}
		if err := state.AddPlayer(player); err != nil {
			return nil, fmt.Errorf("failed to restore player %d: %w", model.ID, err)
		}
	}

	for _, model := range planetModels {
		owner, err := shared.NewPlayerID(model.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("invalid player ID in database: %w", err)
		}
		if err := state.AddPlanet(owner, r.modelToPlanet(&model)); err != nil {
			return nil, fmt.Errorf("failed to restore planet %s: %w", model.Name, err)
		}
	}

	return state, nil
}

// SaveState persists every player and planet, preserving acquisition order.
// Players are upserted and planets rewritten as a snapshot so ownership
// transfers and exhaustion flips land atomically.
func (r *GormStateRepository) SaveState(ctx context.Context, state *galaxy.State) error {
	players := state.Players()
	if len(players) == 0 {
		return nil
	}

	playerRows := make([]PlayerModel, 0, len(players))
	planetRows := make([]PlanetModel, 0)
	playerIDs := make([]int, 0, len(players))

	for _, player := range players {
		row, err := r.playerToModel(player)
		if err != nil {
			return err
		}
		playerRows = append(playerRows, *row)
		playerIDs = append(playerIDs, player.ID().Value())

		for position, planet := range state.PlayerPlanets(player.ID()) {
			planetRows = append(planetRows, *r.planetToModel(player.ID(), position, planet))
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "faction", "trade_goods", "commodities", "technologies", "updated_at"}),
		}).Create(&playerRows).Error; err != nil {
			return fmt.Errorf("failed to save players: %w", err)
		}

		if err := tx.Where("player_id IN ?", playerIDs).Delete(&PlanetModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear planets: %w", err)
		}

		if len(planetRows) > 0 {
			if err := tx.Create(&planetRows).Error; err != nil {
				return fmt.Errorf("failed to save planets: %w", err)
			}
		}

		return nil
	})
}

// DeleteAllGameData removes every player, planet and spend record. Used when
// reseeding over an existing game.
func DeleteAllGameData(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&SpendRecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear spend records: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&PlanetModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear planets: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&PlayerModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear players: %w", err)
		}
		return nil
	})
}

// modelToPlayer converts database model to domain entity
func (r *GormStateRepository) modelToPlayer(model *PlayerModel) (*galaxy.Player, error) {
	playerID, err := shared.NewPlayerID(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid player ID in database: %w", err)
	}

	// Parse technologies
	var technologies []string
	if model.Technologies != "" {
		if err := json.Unmarshal([]byte(model.Technologies), &technologies); err != nil {
			// If unmarshal fails, leave technologies as nil
			technologies = nil
		}
	}

	return galaxy.ReconstructPlayer(
		playerID,
		model.Name,
		model.Faction,
		model.TradeGoods,
		model.Commodities,
		technologies,
	), nil
}

// playerToModel converts domain entity to database model
func (r *GormStateRepository) playerToModel(player *galaxy.Player) (*PlayerModel, error) {
	// Marshal technologies to JSON
	var technologiesJSON string
	if len(player.Technologies()) > 0 {
		bytes, err := json.Marshal(player.Technologies())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal technologies: %w", err)
		}
		technologiesJSON = string(bytes)
	}

	return &PlayerModel{
		ID:           player.ID().Value(),
		Name:         player.Name(),
		Faction:      player.Faction(),
		TradeGoods:   player.TradeGoods(),
		Commodities:  player.Commodities(),
		Technologies: technologiesJSON,
	}, nil
}

func (r *GormStateRepository) modelToPlanet(model *PlanetModel) *galaxy.Planet {
	trait := galaxy.PlanetTrait(model.Trait)
	if model.Trait == "" {
		trait = galaxy.TraitNone
	}
	return galaxy.ReconstructPlanet(
		model.Name,
		model.Resources,
		model.Influence,
		trait,
		model.Exhausted == 1,
	)
}

func (r *GormStateRepository) planetToModel(owner shared.PlayerID, position int, planet *galaxy.Planet) *PlanetModel {
	exhausted := 0
	if planet.IsExhausted() {
		exhausted = 1
	}
	return &PlanetModel{
		Name:      planet.Name(),
		PlayerID:  owner.Value(),
		Position:  position,
		Resources: planet.Resources(),
		Influence: planet.Influence(),
		Trait:     string(planet.Trait()),
		Exhausted: exhausted,
	}
}
