package cli

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/application/player"
	"github.com/twilightsim/imperium-go/internal/infrastructure/config"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// connect loads the effective configuration and opens the game database.
// Callers are responsible for closing the returned connection.
func connect() (*gorm.DB, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, cfg, nil
}

// requirePlayerID binds the player for player-scoped commands. A numeric
// --player-id wins; otherwise --player resolves a name against the saved
// galaxy and fills playerID in for the rest of the command.
func requirePlayerID() error {
	if playerID > 0 {
		return nil
	}
	if playerName == "" {
		return fmt.Errorf("--player-id or --player flag is required")
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	resolver := player.NewResolver(persistence.NewGormStateRepository(db))
	resolved, err := resolver.ResolveByName(context.Background(), playerName)
	if err != nil {
		return err
	}
	playerID = resolved.Value()
	return nil
}

// formatCost renders a unit cost without trailing zeros (4 not 4.00, but 4.5)
func formatCost(cost float64) string {
	formatted := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", cost), "0"), ".")
	if formatted == "" {
		return "0"
	}
	return formatted
}

// formatPlanetList renders planet names as a comma-separated list
func formatPlanetList(planets []string) string {
	if len(planets) == 0 {
		return "-"
	}
	return strings.Join(planets, ", ")
}

// yesNo renders a boolean the way status tables expect
func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
