package galaxy

import (
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// State is the authoritative galaxy ledger: every player and the planets they
// control. Planet lists keep the order control was gained, so spending-plan
// construction iterates planets deterministically.
type State struct {
	players     []*Player
	playersByID map[int]*Player
	planets     map[int][]*Planet
}

// NewState creates an empty galaxy state
func NewState() *State {
	return &State{
		playersByID: make(map[int]*Player),
		planets:     make(map[int][]*Planet),
	}
}

// AddPlayer registers a player at the table
func (s *State) AddPlayer(player *Player) error {
	if player == nil {
		return shared.NewValidationError("player", "cannot be nil")
	}
	if _, exists := s.playersByID[player.ID().Value()]; exists {
		return NewDuplicatePlayerError(player.ID())
	}
	s.players = append(s.players, player)
	s.playersByID[player.ID().Value()] = player
	return nil
}

// Player looks up a player by id
func (s *State) Player(id shared.PlayerID) (*Player, bool) {
	player, ok := s.playersByID[id.Value()]
	return player, ok
}

// PlayerByName looks up a player by display name
func (s *State) PlayerByName(name string) (*Player, bool) {
	for _, player := range s.players {
		if player.Name() == name {
			return player, true
		}
	}
	return nil, false
}

// Players returns all players in seating order
func (s *State) Players() []*Player {
	players := make([]*Player, len(s.players))
	copy(players, s.players)
	return players
}

// AddPlanet places a planet under a player's control.
// Planets are appended, preserving acquisition order.
func (s *State) AddPlanet(owner shared.PlayerID, planet *Planet) error {
	if planet == nil {
		return shared.NewValidationError("planet", "cannot be nil")
	}
	if _, ok := s.playersByID[owner.Value()]; !ok {
		return NewUnknownPlayerError(owner)
	}
	for _, existing := range s.planets[owner.Value()] {
		if existing.Name() == planet.Name() {
			return NewDuplicatePlanetError(owner, planet.Name())
		}
	}
	s.planets[owner.Value()] = append(s.planets[owner.Value()], planet)
	return nil
}

// PlayerPlanets returns the planets a player controls, in acquisition order
func (s *State) PlayerPlanets(id shared.PlayerID) []*Planet {
	planets := make([]*Planet, len(s.planets[id.Value()]))
	copy(planets, s.planets[id.Value()])
	return planets
}

// FindPlanet looks up one of a player's planets by name
func (s *State) FindPlanet(owner shared.PlayerID, name string) (*Planet, bool) {
	for _, planet := range s.planets[owner.Value()] {
		if planet.Name() == name {
			return planet, true
		}
	}
	return nil, false
}

// TransferPlanet moves a planet between players, preserving its exhaustion
// state. The planet joins the end of the new owner's holdings.
func (s *State) TransferPlanet(name string, from, to shared.PlayerID) error {
	if _, ok := s.playersByID[to.Value()]; !ok {
		return NewUnknownPlayerError(to)
	}
	owned := s.planets[from.Value()]
	for i, planet := range owned {
		if planet.Name() == name {
			s.planets[from.Value()] = append(owned[:i:i], owned[i+1:]...)
			s.planets[to.Value()] = append(s.planets[to.Value()], planet)
			return nil
		}
	}
	return NewUnknownPlanetError(from, name)
}

// ReadyPlayerPlanets readies every planet a player controls, returning how
// many were exhausted. Called at the start of a new round.
func (s *State) ReadyPlayerPlanets(id shared.PlayerID) (int, error) {
	if _, ok := s.playersByID[id.Value()]; !ok {
		return 0, NewUnknownPlayerError(id)
	}
	readied := 0
	for _, planet := range s.planets[id.Value()] {
		if planet.IsExhausted() {
			planet.Ready()
			readied++
		}
	}
	return readied, nil
}

// ReadyAllPlanets readies every exhausted planet in the galaxy
func (s *State) ReadyAllPlanets() int {
	readied := 0
	for _, player := range s.players {
		for _, planet := range s.planets[player.ID().Value()] {
			if planet.IsExhausted() {
				planet.Ready()
				readied++
			}
		}
	}
	return readied
}
