package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	economyCommands "github.com/twilightsim/imperium-go/internal/application/economy/commands"
	economyQueries "github.com/twilightsim/imperium-go/internal/application/economy/queries"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewEconomyCommand creates the economy command with subcommands
func NewEconomyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "economy",
		Short: "Resource and influence operations",
		Long: `Inspect and spend a player's resources and influence.

Resources and influence come from ready planets (exhausted when spent)
and from the player's trade-good balance. Trade goods never count as
influence during agenda voting.

Examples:
  imperium economy status
  imperium economy sources --player-id 1
  imperium economy sources --player-id 1 --influence --for-voting
  imperium economy plan --player-id 1 --resources 5 --influence 3
  imperium economy spend --player-id 1 --resources 4 --purpose PRODUCTION
  imperium economy ready --player-id 1
  imperium economy convert --player-id 2 --amount 3`,
	}

	cmd.AddCommand(newEconomyStatusCommand())
	cmd.AddCommand(newEconomySourcesCommand())
	cmd.AddCommand(newEconomyPlanCommand())
	cmd.AddCommand(newEconomyAffordCommand())
	cmd.AddCommand(newEconomySpendCommand())
	cmd.AddCommand(newEconomyReadyCommand())
	cmd.AddCommand(newEconomyConvertCommand())

	return cmd
}

// newEconomyStatusCommand creates the economy status subcommand
func newEconomyStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show every player's spending power",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomyStatus()
		},
	}
}

// newEconomySourcesCommand creates the economy sources subcommand
func newEconomySourcesCommand() *cobra.Command {
	var (
		influence bool
		forVoting bool
	)

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Show where a player's spendable currency comes from",
		Long: `Show the per-planet breakdown of a player's spendable resources,
or influence with --influence. Exhausted and zero-value planets are omitted.

Examples:
  imperium economy sources --player-id 1
  imperium economy sources --player-id 1 --influence --for-voting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomySources(influence, forVoting)
		},
	}

	cmd.Flags().BoolVar(&influence, "influence", false, "Show influence sources instead of resources")
	cmd.Flags().BoolVar(&forVoting, "for-voting", false, "Apply voting rules (trade goods excluded)")

	return cmd
}

// newEconomyPlanCommand creates the economy plan subcommand
func newEconomyPlanCommand() *cobra.Command {
	var (
		resources int
		influence int
		forVoting bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview a spending plan without executing it",
		Long: `Build and display the spending plan for the requested amounts.

The plan shows which planets would be exhausted and how many trade goods
consumed. Planets are claimed whole, so the plan total may exceed the
request. Nothing is mutated.

Example:
  imperium economy plan --player-id 1 --resources 5 --influence 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomyPlan(resources, influence, forVoting)
		},
	}

	cmd.Flags().IntVar(&resources, "resources", 0, "Resources to cover")
	cmd.Flags().IntVar(&influence, "influence", 0, "Influence to cover")
	cmd.Flags().BoolVar(&forVoting, "for-voting", false, "Apply voting rules (trade goods excluded from influence)")

	return cmd
}

// newEconomyAffordCommand creates the economy afford subcommand
func newEconomyAffordCommand() *cobra.Command {
	var (
		resources int
		influence int
		forVoting bool
	)

	cmd := &cobra.Command{
		Use:   "afford",
		Short: "Check whether a player can afford a spend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomyAfford(resources, influence, forVoting)
		},
	}

	cmd.Flags().IntVar(&resources, "resources", 0, "Resources required")
	cmd.Flags().IntVar(&influence, "influence", 0, "Influence required")
	cmd.Flags().BoolVar(&forVoting, "for-voting", false, "Apply voting rules")

	return cmd
}

// newEconomySpendCommand creates the economy spend subcommand
func newEconomySpendCommand() *cobra.Command {
	var (
		resources   int
		influence   int
		forVoting   bool
		purpose     string
		description string
	)

	cmd := &cobra.Command{
		Use:   "spend",
		Short: "Execute a spend, exhausting planets and consuming trade goods",
		Long: `Build a spending plan for the requested amounts and execute it
atomically. On any failure the ledger is left untouched.

Purposes: PRODUCTION, CONSTRUCTION, RESEARCH, LEADERSHIP, AGENDA

Examples:
  imperium economy spend --player-id 1 --resources 4 --purpose RESEARCH
  imperium economy spend --player-id 3 --influence 6 --for-voting --purpose AGENDA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomySpend(resources, influence, forVoting, purpose, description)
		},
	}

	cmd.Flags().IntVar(&resources, "resources", 0, "Resources to spend")
	cmd.Flags().IntVar(&influence, "influence", 0, "Influence to spend")
	cmd.Flags().BoolVar(&forVoting, "for-voting", false, "Apply voting rules")
	cmd.Flags().StringVar(&purpose, "purpose", string(ledger.PurposeLeadership), "Spend purpose")
	cmd.Flags().StringVar(&description, "description", "", "Free-form note recorded in the ledger")

	return cmd
}

// newEconomyReadyCommand creates the economy ready subcommand
func newEconomyReadyCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ready",
		Short: "Ready exhausted planets for a new round",
		Long: `Ready every exhausted planet a player controls, or every planet in
the galaxy with --all.

Examples:
  imperium economy ready --player-id 1
  imperium economy ready --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomyReady(all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Ready every player's planets")

	return cmd
}

// newEconomyConvertCommand creates the economy convert subcommand
func newEconomyConvertCommand() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert commodities into trade goods",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEconomyConvert(amount)
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Commodities to convert [required]")
	cmd.MarkFlagRequired("amount")

	return cmd
}

// runEconomyStatus executes the economy status command
func runEconomyStatus() error {
	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := economyQueries.NewGetEconomyStatusHandler(stateRepo, nil)

	result, err := handler.Handle(context.Background(), &economyQueries.GetEconomyStatusQuery{})
	if err != nil {
		return fmt.Errorf("failed to query economy status: %w", err)
	}
	response := result.(*economyQueries.GetEconomyStatusResponse)

	if len(response.Players) == 0 {
		fmt.Println("No players found - run 'imperium game seed' first")
		return nil
	}

	fmt.Println("\nECONOMY STATUS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPlayer\tFaction\tResources\tInfluence\tTrade Goods\tCommodities\tPlanets (ready/exhausted)")
	fmt.Fprintln(w, "──\t──────\t───────\t─────────\t─────────\t───────────\t───────────\t─────────────────────────")
	for _, player := range response.Players {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d/%d\n",
			player.PlayerID, player.Name, player.Faction,
			player.AvailableResources, player.AvailableInfluence,
			player.TradeGoods, player.Commodities,
			player.ReadyPlanets, player.ExhaustedPlanets)
	}
	w.Flush()

	return nil
}

// runEconomySources executes the economy sources command
func runEconomySources(influence, forVoting bool) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	ctx := context.Background()

	if influence {
		handler := economyQueries.NewGetInfluenceSourcesHandler(stateRepo, nil)
		result, err := handler.Handle(ctx, &economyQueries.GetInfluenceSourcesQuery{
			PlayerID:  playerID,
			ForVoting: forVoting,
		})
		if err != nil {
			return fmt.Errorf("failed to query influence sources: %w", err)
		}
		response := result.(*economyQueries.GetInfluenceSourcesResponse)
		title := "INFLUENCE SOURCES"
		if response.ForVoting {
			title = "INFLUENCE SOURCES (voting - trade goods excluded)"
		}
		displaySources(title, response.Planets, response.TradeGoods, response.Total)
		return nil
	}

	handler := economyQueries.NewGetResourceSourcesHandler(stateRepo, nil)
	result, err := handler.Handle(ctx, &economyQueries.GetResourceSourcesQuery{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to query resource sources: %w", err)
	}
	response := result.(*economyQueries.GetResourceSourcesResponse)
	displaySources("RESOURCE SOURCES", response.Planets, response.TradeGoods, response.Total)
	return nil
}

// runEconomyPlan executes the economy plan command
func runEconomyPlan(resources, influence int, forVoting bool) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := economyQueries.NewPreviewSpendingPlanHandler(stateRepo, nil)

	result, err := handler.Handle(context.Background(), &economyQueries.PreviewSpendingPlanQuery{
		PlayerID:  playerID,
		Resources: resources,
		Influence: influence,
		ForVoting: forVoting,
	})
	if err != nil {
		return fmt.Errorf("failed to build spending plan: %w", err)
	}
	response := result.(*economyQueries.PreviewSpendingPlanResponse)

	displaySpendingPlan(resources, influence, response)
	return nil
}

// runEconomyAfford executes the economy afford command
func runEconomyAfford(resources, influence int, forVoting bool) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := economyQueries.NewCanAffordHandler(stateRepo, nil)

	result, err := handler.Handle(context.Background(), &economyQueries.CanAffordQuery{
		PlayerID:  playerID,
		Resources: resources,
		Influence: influence,
		ForVoting: forVoting,
	})
	if err != nil {
		return fmt.Errorf("failed to check affordability: %w", err)
	}
	response := result.(*economyQueries.CanAffordResponse)

	fmt.Printf("Affordable: %s (available: %d resources, %d influence)\n",
		yesNo(response.Affordable), response.AvailableResources, response.AvailableInfluence)
	return nil
}

// runEconomySpend executes the economy spend command
func runEconomySpend(resources, influence int, forVoting bool, purpose, description string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	recordRepo := persistence.NewGormSpendRecordRepository(db)
	handler := economyCommands.NewExecuteSpendingHandler(stateRepo, recordRepo, nil)

	result, err := handler.Handle(context.Background(), &economyCommands.ExecuteSpendingCommand{
		PlayerID:    playerID,
		Resources:   resources,
		Influence:   influence,
		ForVoting:   forVoting,
		Purpose:     purpose,
		Description: description,
	})
	if err != nil {
		return fmt.Errorf("failed to execute spend: %w", err)
	}
	response := result.(*economyCommands.ExecuteSpendingResponse)

	if !response.Success {
		return fmt.Errorf("spend failed: %s", response.ErrorMessage)
	}

	fmt.Printf("Spend executed\n")
	fmt.Printf("  Planets exhausted: %s\n", formatPlanetList(response.PlanetsExhausted))
	fmt.Printf("  Trade goods spent: %d\n", response.TradeGoodsSpent)
	if response.RecordID != "" {
		fmt.Printf("  Ledger record:     %s\n", response.RecordID)
	}
	return nil
}

// runEconomyReady executes the economy ready command
func runEconomyReady(all bool) error {
	if !all {
		if err := requirePlayerID(); err != nil {
			return fmt.Errorf("--player-id or --all is required")
		}
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := economyCommands.NewReadyPlanetsHandler(stateRepo)

	target := playerID
	if all {
		target = 0
	}

	result, err := handler.Handle(context.Background(), &economyCommands.ReadyPlanetsCommand{PlayerID: target})
	if err != nil {
		return fmt.Errorf("failed to ready planets: %w", err)
	}
	response := result.(*economyCommands.ReadyPlanetsResponse)

	fmt.Printf("Readied %d planets\n", response.PlanetsReadied)
	return nil
}

// runEconomyConvert executes the economy convert command
func runEconomyConvert(amount int) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := economyCommands.NewConvertCommoditiesHandler(stateRepo, nil)

	result, err := handler.Handle(context.Background(), &economyCommands.ConvertCommoditiesCommand{
		PlayerID: playerID,
		Amount:   amount,
	})
	if err != nil {
		return fmt.Errorf("failed to convert commodities: %w", err)
	}
	response := result.(*economyCommands.ConvertCommoditiesResponse)

	fmt.Printf("Converted %d commodities - balance now %d trade goods, %d commodities\n",
		amount, response.TradeGoods, response.Commodities)
	return nil
}

// displaySources renders a source breakdown table
func displaySources(title string, planets []economyQueries.PlanetSourceData, tradeGoods, total int) {
	fmt.Printf("\n%s (player %d)\n", title, playerID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Source\tAmount")
	fmt.Fprintln(w, "──────\t──────")
	for _, planet := range planets {
		fmt.Fprintf(w, "%s\t%d\n", planet.Planet, planet.Amount)
	}
	fmt.Fprintf(w, "Trade goods\t%d\n", tradeGoods)
	fmt.Fprintf(w, "Total\t%d\n", total)
	w.Flush()
}

// displaySpendingPlan renders a plan preview
func displaySpendingPlan(requestedResources, requestedInfluence int, response *economyQueries.PreviewSpendingPlanResponse) {
	fmt.Printf("\nSPENDING PLAN (player %d, requested %d resources / %d influence)\n",
		playerID, requestedResources, requestedInfluence)
	fmt.Printf("Valid: %s\n", yesNo(response.Valid))
	if !response.Valid {
		fmt.Printf("Reason: %s\n", response.ErrorMessage)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Currency\tPlanets\tTrade Goods\tDelivers")
	fmt.Fprintln(w, "────────\t───────\t───────────\t────────")
	fmt.Fprintf(w, "Resources\t%s\t%d\t%d\n",
		formatContributions(response.ResourcePlanets), response.ResourceTradeGoods, response.ResourceTotal)
	fmt.Fprintf(w, "Influence\t%s\t%d\t%d\n",
		formatContributions(response.InfluencePlanets), response.InfluenceTradeGoods, response.InfluenceTotal)
	w.Flush()

	fmt.Printf("Planets to exhaust: %s\n", formatPlanetList(response.PlanetsToExhaust))
	fmt.Printf("Trade goods total:  %d\n", response.TotalTradeGoods)
}

// formatContributions renders planet contributions as "Jord(4), Muaat(2)"
func formatContributions(planets []economyQueries.PlanetSourceData) string {
	if len(planets) == 0 {
		return "-"
	}
	parts := make([]string, len(planets))
	for i, planet := range planets {
		parts[i] = fmt.Sprintf("%s(%d)", planet.Planet, planet.Amount)
	}
	return strings.Join(parts, ", ")
}
