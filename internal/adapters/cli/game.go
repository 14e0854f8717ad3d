package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	playerQueries "github.com/twilightsim/imperium-go/internal/application/player/queries"
	"github.com/twilightsim/imperium-go/internal/application/setup"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewGameCommand creates the game command with subcommands
func NewGameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game setup and inspection",
		Long: `Seed and inspect the galaxy ledger.

Examples:
  imperium game seed
  imperium game seed --force
  imperium game show`,
	}

	cmd.AddCommand(newGameSeedCommand())
	cmd.AddCommand(newGameShowCommand())

	return cmd
}

// newGameSeedCommand creates the game seed subcommand
func newGameSeedCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the demo galaxy",
		Long: `Seed the database with the deterministic demo galaxy: three players,
each with a home system, trade goods and a small planet roster.

Refuses to overwrite an existing game unless --force is given.

Example:
  imperium game seed --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGameSeed(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing game")

	return cmd
}

// newGameShowCommand creates the game show subcommand
func newGameShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current galaxy",
		Long: `Display every player with their balances, technologies and planet roster.

Example:
  imperium game show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGameShow()
		},
	}
}

// runGameSeed executes the game seed command
func runGameSeed(force bool) error {
	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	ctx := context.Background()

	existing, err := stateRepo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect existing game: %w", err)
	}
	if len(existing.Players()) > 0 {
		if !force {
			return fmt.Errorf("a game with %d players already exists; use --force to replace it",
				len(existing.Players()))
		}
		if err := persistence.DeleteAllGameData(ctx, db); err != nil {
			return fmt.Errorf("failed to clear existing game: %w", err)
		}
	}

	state, err := setup.SeedDemoGalaxy()
	if err != nil {
		return fmt.Errorf("failed to build demo galaxy: %w", err)
	}

	if err := stateRepo.SaveState(ctx, state); err != nil {
		return fmt.Errorf("failed to persist demo galaxy: %w", err)
	}

	planets := 0
	for _, player := range state.Players() {
		planets += len(state.PlayerPlanets(player.ID()))
	}
	fmt.Printf("Seeded demo galaxy: %d players, %d planets\n", len(state.Players()), planets)
	return nil
}

// runGameShow executes the game show command
func runGameShow() error {
	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := playerQueries.NewGetPlayersHandler(stateRepo)

	result, err := handler.Handle(context.Background(), &playerQueries.GetPlayersQuery{})
	if err != nil {
		return fmt.Errorf("failed to query players: %w", err)
	}
	response := result.(*playerQueries.GetPlayersResponse)

	displayPlayers(response)
	return nil
}

// displayPlayers renders the player roster
func displayPlayers(response *playerQueries.GetPlayersResponse) {
	if len(response.Players) == 0 {
		fmt.Println("No players found - run 'imperium game seed' first")
		return
	}

	for _, player := range response.Players {
		fmt.Printf("\nPLAYER %d: %s (%s)\n", player.PlayerID, player.Name, player.Faction)
		fmt.Printf("  Trade goods: %d  Commodities: %d\n", player.TradeGoods, player.Commodities)
		if len(player.Technologies) > 0 {
			fmt.Printf("  Technologies: %s\n", strings.Join(player.Technologies, ", "))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Planet\tResources\tInfluence\tTrait\tState")
		fmt.Fprintln(w, "  ──────\t─────────\t─────────\t─────\t─────")
		for _, planet := range player.Planets {
			state := "ready"
			if planet.Exhausted {
				state = "exhausted"
			}
			fmt.Fprintf(w, "  %s\t%d\t%d\t%s\t%s\n",
				planet.Name, planet.Resources, planet.Influence, planet.Trait, state)
		}
		w.Flush()
	}
}
