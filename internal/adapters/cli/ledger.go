package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	ledgerQueries "github.com/twilightsim/imperium-go/internal/application/ledger/queries"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewLedgerCommand creates the ledger command with subcommands
func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Spend ledger operations",
		Long: `View and analyze executed spends.

Every executed spending plan is appended to the ledger with its purpose,
the planets exhausted and the trade goods consumed. Use these commands
to view spend history and per-purpose totals.

Purposes:
  PRODUCTION    - Unit production
  CONSTRUCTION  - Structures placed by construction effects
  RESEARCH      - Technology research costs
  LEADERSHIP    - Command token purchases
  AGENDA        - Votes and riders

Examples:
  imperium ledger list --player-id 1
  imperium ledger list --player-id 1 --purpose PRODUCTION --limit 20
  imperium ledger summary --player-id 1 --start-date 2026-08-01 --end-date 2026-08-31`,
	}

	cmd.AddCommand(newLedgerListCommand())
	cmd.AddCommand(newLedgerSummaryCommand())

	return cmd
}

// newLedgerListCommand creates the ledger list subcommand
func newLedgerListCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
		purpose   string
		phase     string
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spend records",
		Long: `List spend records with optional filtering.

Records can be filtered by date range, purpose and phase. Results are
ordered by timestamp descending (newest first) by default.

Examples:
  imperium ledger list --player-id 1 --limit 10
  imperium ledger list --player-id 1 --purpose AGENDA
  imperium ledger list --player-id 1 --start-date 2026-08-15 --end-date 2026-08-22`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerList(startDate, endDate, purpose, phase, limit, offset, orderBy)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "Filter by purpose")
	cmd.Flags().StringVar(&phase, "phase", "", "Filter by phase")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of records to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of records to skip")
	cmd.Flags().StringVar(&orderBy, "order-by", "timestamp DESC", "Sort order")

	return cmd
}

// newLedgerSummaryCommand creates the ledger summary subcommand
func newLedgerSummaryCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
		groupBy   string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize spending by purpose or phase",
		Long: `Aggregate a player's spending over a date range.

The summary shows resources, influence and trade goods consumed per
purpose (or per phase with --group-by phase), plus how many planets
were exhausted.

Example:
  imperium ledger summary --player-id 1 \
    --start-date 2026-08-01 --end-date 2026-08-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLedgerSummary(startDate, endDate, groupBy)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD) [required]")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD) [required]")
	cmd.Flags().StringVar(&groupBy, "group-by", "purpose", "Group by (purpose or phase)")
	cmd.MarkFlagRequired("start-date")
	cmd.MarkFlagRequired("end-date")

	return cmd
}

// runLedgerList executes the ledger list command
func runLedgerList(startDate, endDate, purpose, phase string, limit, offset int, orderBy string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	recordRepo := persistence.NewGormSpendRecordRepository(db)
	handler := ledgerQueries.NewGetSpendHistoryHandler(recordRepo)

	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return err
	}

	query := &ledgerQueries.GetSpendHistoryQuery{
		PlayerID:  playerID,
		StartDate: start,
		EndDate:   end,
		Limit:     limit,
		Offset:    offset,
		OrderBy:   orderBy,
	}
	if purpose != "" {
		query.Purpose = &purpose
	}
	if phase != "" {
		query.Phase = &phase
	}

	result, err := handler.Handle(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to query spend history: %w", err)
	}
	response := result.(*ledgerQueries.GetSpendHistoryResponse)

	displaySpendHistory(response)
	return nil
}

// runLedgerSummary executes the ledger summary command
func runLedgerSummary(startDate, endDate, groupBy string) error {
	if err := requirePlayerID(); err != nil {
		return err
	}

	db, _, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	recordRepo := persistence.NewGormSpendRecordRepository(db)
	handler := ledgerQueries.NewGetSpendSummaryHandler(recordRepo)

	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return fmt.Errorf("invalid start date format: %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return fmt.Errorf("invalid end date format: %w", err)
	}
	end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	result, err := handler.Handle(context.Background(), &ledgerQueries.GetSpendSummaryQuery{
		PlayerID:  playerID,
		StartDate: start,
		EndDate:   end,
		GroupBy:   groupBy,
	})
	if err != nil {
		return fmt.Errorf("failed to build spend summary: %w", err)
	}
	response := result.(*ledgerQueries.GetSpendSummaryResponse)

	displaySpendSummary(response)
	return nil
}

// parseDateRange parses optional YYYY-MM-DD bounds; end dates cover the whole day
func parseDateRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid start date format: %w", err)
		}
		start = &parsed
	}
	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid end date format: %w", err)
		}
		endOfDay := parsed.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		end = &endOfDay
	}
	return start, end, nil
}

// displaySpendHistory renders the spend record list
func displaySpendHistory(response *ledgerQueries.GetSpendHistoryResponse) {
	if len(response.Records) == 0 {
		fmt.Println("No spend records found")
		return
	}

	fmt.Printf("\nSPEND RECORDS (Showing %d of %d total)\n", len(response.Records), response.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Timestamp\tPurpose\tResources\tInfluence\tTrade Goods\tPlanets")
	fmt.Fprintln(w, "─────────\t───────\t─────────\t─────────\t───────────\t───────")
	for _, record := range response.Records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
			record.Timestamp.Format("2006-01-02 15:04:05"),
			record.Purpose,
			record.ResourcesSpent,
			record.InfluenceSpent,
			record.TradeGoodsSpent,
			formatPlanetList(record.PlanetsExhausted))
	}
	w.Flush()
}

// displaySpendSummary renders the per-group totals
func displaySpendSummary(response *ledgerQueries.GetSpendSummaryResponse) {
	fmt.Printf("\nSPEND SUMMARY\n")
	fmt.Printf("Period: %s\n", response.Period)

	if len(response.Groups) == 0 {
		fmt.Println("No spending in period")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Group\tRecords\tResources\tInfluence\tTrade Goods\tPlanets Exhausted")
	fmt.Fprintln(w, "─────\t───────\t─────────\t─────────\t───────────\t─────────────────")
	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			group.Group,
			group.Records,
			group.ResourcesSpent,
			group.InfluenceSpent,
			group.TradeGoodsSpent,
			group.PlanetsExhausted)
	}
	w.Flush()
}
