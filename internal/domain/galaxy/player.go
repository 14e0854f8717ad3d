package galaxy

import (
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// Player holds the per-player economic state: trade goods, commodities,
// faction and researched technologies. Planets are held by State, not here,
// so ownership transfers never touch the player record.
type Player struct {
	id           shared.PlayerID
	name         string
	faction      string
	tradeGoods   int
	commodities  int
	technologies []string
}

// NewPlayer creates a player with empty balances
func NewPlayer(id shared.PlayerID, name, faction string) (*Player, error) {
	if id.IsZero() {
		return nil, shared.NewValidationError("player_id", "cannot be zero")
	}
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	return &Player{
		id:      id,
		name:    name,
		faction: faction,
	}, nil
}

// ReconstructPlayer restores a player from persistence without validation
func ReconstructPlayer(id shared.PlayerID, name, faction string, tradeGoods, commodities int, technologies []string) *Player {
	techs := make([]string, len(technologies))
	copy(techs, technologies)
	return &Player{
		id:           id,
		name:         name,
		faction:      faction,
		tradeGoods:   tradeGoods,
		commodities:  commodities,
		technologies: techs,
	}
}

// ID returns the player's identifier
func (p *Player) ID() shared.PlayerID {
	return p.id
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Faction returns the player's faction name (may be empty)
func (p *Player) Faction() string {
	return p.faction
}

// TradeGoods returns the player's current trade-good balance
func (p *Player) TradeGoods() int {
	return p.tradeGoods
}

// Commodities returns the player's current commodity balance.
// Commodities are worthless to their owner until converted to trade goods.
func (p *Player) Commodities() int {
	return p.commodities
}

// Technologies returns a copy of the player's researched technologies
func (p *Player) Technologies() []string {
	techs := make([]string, len(p.technologies))
	copy(techs, p.technologies)
	return techs
}

// HasTechnology reports whether the player has researched the named technology
func (p *Player) HasTechnology(name string) bool {
	for _, tech := range p.technologies {
		if tech == name {
			return true
		}
	}
	return false
}

// GainTechnology records a researched technology (idempotent)
func (p *Player) GainTechnology(name string) {
	if name == "" || p.HasTechnology(name) {
		return
	}
	p.technologies = append(p.technologies, name)
}

// SpendTradeGoods deducts trade goods in a single operation.
// The whole amount is deducted or none of it.
func (p *Player) SpendTradeGoods(amount int) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	if amount > p.tradeGoods {
		return NewInsufficientTradeGoodsError(p.id, amount, p.tradeGoods)
	}
	p.tradeGoods -= amount
	return nil
}

// GainTradeGoods adds trade goods to the player's balance
func (p *Player) GainTradeGoods(amount int) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	p.tradeGoods += amount
	return nil
}

// GainCommodities adds commodities to the player's balance
func (p *Player) GainCommodities(amount int) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	p.commodities += amount
	return nil
}

// ConvertCommodities turns commodities into trade goods one for one
func (p *Player) ConvertCommodities(amount int) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	if amount > p.commodities {
		return NewInsufficientCommoditiesError(p.id, amount, p.commodities)
	}
	p.commodities -= amount
	p.tradeGoods += amount
	return nil
}
