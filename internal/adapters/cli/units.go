package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	productionCommands "github.com/twilightsim/imperium-go/internal/application/production/commands"
	productionQueries "github.com/twilightsim/imperium-go/internal/application/production/queries"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewUnitsCommand creates the units command with subcommands
func NewUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Unit catalog, cost quotes and production",
		Long: `Inspect the unit catalog and produce units.

Costs start from the printed catalog value, adjusted by the player's
faction and researched technologies, and never drop below zero.
Fighters and infantry are produced two at a time for the price of one
when exactly two are ordered.

Examples:
  imperium units list
  imperium units cost --player-id 2 --type WAR_SUN
  imperium units validate --player-id 1 --type DREADNOUGHT --quantity 2
  imperium units produce --player-id 1 --type FIGHTER --quantity 2`,
	}

	cmd.AddCommand(newUnitsListCommand())
	cmd.AddCommand(newUnitsCostCommand())
	cmd.AddCommand(newUnitsValidateCommand())
	cmd.AddCommand(newUnitsProduceCommand())

	return cmd
}

// newUnitsListCommand creates the units list subcommand
func newUnitsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the unit catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnitsList()
		},
	}
}

// newUnitsCostCommand creates the units cost subcommand
func newUnitsCostCommand() *cobra.Command {
	var (
		unitType string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "cost",
		Short: "Quote the cost of producing units",
		Long: `Quote the production cost for a unit type under the player's faction
and technology modifiers, without checking affordability.

Example:
  imperium units cost --player-id 2 --type WAR_SUN --quantity 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnitsCost(unitType, quantity)
		},
	}

	cmd.Flags().StringVar(&unitType, "type", "", "Unit type [required]")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units requested")
	cmd.MarkFlagRequired("type")

	return cmd
}

// newUnitsValidateCommand creates the units validate subcommand
func newUnitsValidateCommand() *cobra.Command {
	var (
		unitType       string
		quantity       int
		reinforcements int
		exemption      bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a production order can be afforded",
		Long: `Validate a production order against the player's available resources
without executing it. A suggested spending plan is shown when the order
is affordable.

--reinforcements bounds the order by the player's unplaced-unit supply.
--construction-exemption waives the zero-cost rejection for structures
placed through construction effects.

Examples:
  imperium units validate --player-id 1 --type DREADNOUGHT --quantity 2
  imperium units validate --player-id 1 --type INFANTRY --quantity 2 --reinforcements 1
  imperium units validate --player-id 1 --type SPACE_DOCK --quantity 1 --construction-exemption`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reinforcementsPtr *int
			if cmd.Flags().Changed("reinforcements") {
				reinforcementsPtr = &reinforcements
			}
			return runUnitsValidate(unitType, quantity, reinforcementsPtr, exemption)
		},
	}

	cmd.Flags().StringVar(&unitType, "type", "", "Unit type [required]")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units requested")
	cmd.Flags().IntVar(&reinforcements, "reinforcements", 0, "Available reinforcements")
	cmd.Flags().BoolVar(&exemption, "construction-exemption", false, "Waive the zero-cost rejection")
	cmd.MarkFlagRequired("type")

	return cmd
}

// newUnitsProduceCommand creates the units produce subcommand
func newUnitsProduceCommand() *cobra.Command {
	var (
		unitType       string
		quantity       int
		reinforcements int
		description    string
	)

	cmd := &cobra.Command{
		Use:   "produce",
		Short: "Produce units, paying their cost",
		Long: `Validate and execute a production order: plan the spend, exhaust the
chosen planets, deduct trade goods and append a ledger record. On any
failure nothing is mutated.

Example:
  imperium units produce --player-id 1 --type FIGHTER --quantity 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reinforcementsPtr *int
			if cmd.Flags().Changed("reinforcements") {
				reinforcementsPtr = &reinforcements
			}
			return runUnitsProduce(unitType, quantity, reinforcementsPtr, description)
		},
	}

	cmd.Flags().StringVar(&unitType, "type", "", "Unit type [required]")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units to produce")
	cmd.Flags().IntVar(&reinforcements, "reinforcements", 0, "Available reinforcements")
	cmd.Flags().StringVar(&description, "description", "", "Free-form note recorded in the ledger")
	cmd.MarkFlagRequired("type")

	return cmd
}

// runUnitsList executes the units list command
func runUnitsList() error {
	registry := production.DefaultStatsRegistry()

	fmt.Println("\nUNIT CATALOG")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Unit\tCost\tCombat\tMove\tCapacity\tDual Production")
	fmt.Fprintln(w, "────\t────\t──────\t────\t────────\t───────────────")
	for _, unitType := range registry.UnitTypes() {
		stats, _ := registry.BaseStats(unitType)
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			unitType, formatCost(stats.Cost), stats.Combat, stats.Move, stats.Capacity,
			yesNo(unitType.IsDualCapable()))
	}
	w.Flush()

	return nil
}

// runUnitsCost executes the units cost command
func runUnitsCost(unitType string, quantity int) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := productionQueries.NewGetProductionCostHandler(stateRepo, production.DefaultStatsRegistry(), nil)

	result, err := handler.Handle(context.Background(), &productionQueries.GetProductionCostQuery{
		PlayerID: playerID,
		UnitType: unitType,
		Quantity: quantity,
	})
	if err != nil {
		return fmt.Errorf("failed to quote production cost: %w", err)
	}
	response := result.(*productionQueries.GetProductionCostResponse)

	fmt.Printf("\nPRODUCTION COST: %s x%d\n", response.UnitType, response.Quantity)
	fmt.Printf("  Base cost:      %s\n", formatCost(response.BaseCost))
	fmt.Printf("  Modified cost:  %s\n", formatCost(response.ModifiedCost))
	fmt.Printf("  Units produced: %d\n", response.UnitsProduced)
	fmt.Printf("  Total cost:     %s\n", formatCost(response.TotalCost))
	if response.IsDualProduction {
		fmt.Println("  Dual production: two units for the price of one")
	}
	return nil
}

// runUnitsValidate executes the units validate command
func runUnitsValidate(unitType string, quantity int, reinforcements *int, exemption bool) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	handler := productionQueries.NewValidateProductionHandler(stateRepo, production.DefaultStatsRegistry(), nil)

	result, err := handler.Handle(context.Background(), &productionQueries.ValidateProductionQuery{
		PlayerID:              playerID,
		UnitType:              unitType,
		Quantity:              quantity,
		Reinforcements:        reinforcements,
		ConstructionExemption: exemption,
	})
	if err != nil {
		return fmt.Errorf("failed to validate production: %w", err)
	}
	response := result.(*productionQueries.ValidateProductionResponse)

	fmt.Printf("\nPRODUCTION VALIDATION: %s x%d\n", response.UnitType, response.Quantity)
	fmt.Printf("  Valid:     %s\n", yesNo(response.Valid))
	fmt.Printf("  Required:  %d resources (total cost %s)\n", response.RequiredResources, formatCost(response.TotalCost))
	fmt.Printf("  Available: %d resources\n", response.AvailableResources)
	if response.Shortfall > 0 {
		fmt.Printf("  Shortfall: %d resources\n", response.Shortfall)
	}
	if response.ReinforcementShortfall > 0 {
		fmt.Printf("  Reinforcement shortfall: %d units\n", response.ReinforcementShortfall)
	}
	if response.ErrorMessage != "" {
		fmt.Printf("  Reason:    %s\n", response.ErrorMessage)
	}
	if response.Valid {
		fmt.Printf("  Suggested plan: exhaust %s, spend %d trade goods\n",
			formatPlanetList(response.PlanetsToExhaust), response.TradeGoodsNeeded)
	}
	return nil
}

// runUnitsProduce executes the units produce command
func runUnitsProduce(unitType string, quantity int, reinforcements *int, description string) error {
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
	handler := productionCommands.NewProduceUnitsHandler(stateRepo, recordRepo, production.DefaultStatsRegistry(), nil)

	result, err := handler.Handle(context.Background(), &productionCommands.ProduceUnitsCommand{
		PlayerID:       playerID,
		UnitType:       unitType,
		Quantity:       quantity,
		Reinforcements: reinforcements,
		Description:    description,
	})
	if err != nil {
		return fmt.Errorf("failed to produce units: %w", err)
	}
	response := result.(*productionCommands.ProduceUnitsResponse)

	if !response.Success {
		return fmt.Errorf("production failed: %s", response.ErrorMessage)
	}

	fmt.Printf("Produced %d %s for %s resources\n",
		response.UnitsProduced, unitType, formatCost(response.TotalCost))
	fmt.Printf("  Planets exhausted: %s\n", formatPlanetList(response.PlanetsExhausted))
	fmt.Printf("  Trade goods spent: %d\n", response.TradeGoodsSpent)
	if response.RecordID != "" {
		fmt.Printf("  Ledger record:     %s\n", response.RecordID)
	}
	return nil
}
