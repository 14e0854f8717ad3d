package persistence

import (
	"time"
)

// PlayerModel represents the players table
// The ID is the player's table seat, assigned at game setup, so rows are
// created with explicit IDs rather than auto-increment.
type PlayerModel struct {
	ID           int       `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name;unique;not null"`
	Faction      string    `gorm:"column:faction;not null"`
	TradeGoods   int       `gorm:"column:trade_goods;not null;default:0"`
	Commodities  int       `gorm:"column:commodities;not null;default:0"`
	Technologies string    `gorm:"column:technologies;type:text"` // JSON array as text
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// PlanetModel represents the planets table
// Position preserves per-player acquisition order so loads rebuild planet
// lists exactly as they were saved.
type PlanetModel struct {
	Name      string       `gorm:"column:name;primaryKey;not null"`
	PlayerID  int          `gorm:"column:player_id;not null;index"`
	Player    *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Position  int          `gorm:"column:position;not null"`
	Resources int          `gorm:"column:resources;not null"`
	Influence int          `gorm:"column:influence;not null"`
	Trait     string       `gorm:"column:trait;not null;default:'NONE'"`
	Exhausted int          `gorm:"column:exhausted;not null;default:0"` // 0 or 1 (SQLite compatible)
}

func (PlanetModel) TableName() string {
	return "planets"
}

// SpendRecordModel represents the spend_records table
type SpendRecordModel struct {
	ID               string       `gorm:"column:id;primaryKey;not null"`
	PlayerID         int          `gorm:"column:player_id;index;not null"`
	Player           *PlayerModel `gorm:"foreignKey:PlayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Timestamp        time.Time    `gorm:"column:timestamp;index;not null"`
	Purpose          string       `gorm:"column:purpose;not null"`
	Phase            string       `gorm:"column:phase;not null"`
	ResourcesSpent   int          `gorm:"column:resources_spent;not null;default:0"`
	InfluenceSpent   int          `gorm:"column:influence_spent;not null;default:0"`
	TradeGoodsSpent  int          `gorm:"column:trade_goods_spent;not null;default:0"`
	PlanetsExhausted string       `gorm:"column:planets_exhausted;type:text"` // JSON array as text
	ForVoting        int          `gorm:"column:for_voting;not null;default:0"` // 0 or 1 (SQLite compatible)
	Description      string       `gorm:"column:description;type:text"`
}

func (SpendRecordModel) TableName() string {
	return "spend_records"
}
