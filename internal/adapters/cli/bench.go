package cli

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/domain/economy"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewBenchCommand creates the bench command
func NewBenchCommand() *cobra.Command {
	var (
		operations int
		opsRate    float64
		burst      int
		workers    int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a rate-limited load test against the spending engine",
		Long: `Replay a randomized mix of availability queries, plan previews and
batch validations against the seeded galaxy, throttled by a token
bucket. Each worker runs on its own in-memory copy of the game state,
so the database is never mutated.

Reports throughput and the cache hit rate of the memoized resource
manager. Flags default to the [bench] section of the config file.

Examples:
  imperium bench --operations 5000 --rate 500
  imperium bench --workers 4 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, operations, opsRate, burst, workers, seed)
		},
	}

	cmd.Flags().IntVar(&operations, "operations", 0, "Total operations to run")
	cmd.Flags().Float64Var(&opsRate, "rate", 0, "Maximum operations per second")
	cmd.Flags().IntVar(&burst, "burst", 0, "Token bucket burst size")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Request generator seed (0 picks a random one)")

	return cmd
}

// benchStats aggregates one worker's run
type benchStats struct {
	operations int
	failures   int
	cache      economy.CacheStats
}

// runBench executes the bench command
func runBench(cmd *cobra.Command, operations int, opsRate float64, burst, workers int, seed int64) error {
	db, cfg, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	// Flags beat config, config beats defaults
	if !cmd.Flags().Changed("operations") {
		operations = cfg.Bench.Operations
	}
	if !cmd.Flags().Changed("rate") {
		opsRate = cfg.Bench.Rate
	}
	if !cmd.Flags().Changed("burst") {
		burst = cfg.Bench.Burst
	}
	if !cmd.Flags().Changed("workers") {
		workers = cfg.Bench.Workers
	}
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Bench.Seed
	}
	if operations <= 0 {
		operations = 1000
	}
	if opsRate <= 0 {
		opsRate = 200
	}
	if burst <= 0 {
		burst = int(opsRate)
	}
	if workers <= 0 {
		workers = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stateRepo := persistence.NewGormStateRepository(db)
	ctx := context.Background()

	probe, err := stateRepo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load game state: %w", err)
	}
	players := probe.Players()
	if len(players) == 0 {
		return fmt.Errorf("no players found - run 'imperium game seed' first")
	}

	fmt.Printf("Running %d operations at %.0f ops/s (burst %d) across %d workers, seed %d\n",
		operations, opsRate, burst, workers, seed)

	limiter := rate.NewLimiter(rate.Limit(opsRate), burst)
	results := make([]benchStats, workers)

	perWorker := operations / workers
	remainder := operations % workers

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		count := perWorker
		if i < remainder {
			count++
		}

		// Each worker mutates its own copy of the state; the engine does
		// no locking and the database stays untouched.
		state, err := stateRepo.LoadState(ctx)
		if err != nil {
			return fmt.Errorf("failed to load game state for worker %d: %w", i, err)
		}

		wg.Add(1)
		go func(idx, count int, state *galaxy.State) {
			defer wg.Done()
			results[idx] = benchWorker(ctx, limiter, state, rand.New(rand.NewSource(seed+int64(idx))), count)
		}(i, count, state)
	}
	wg.Wait()
	elapsed := time.Since(start)

	total := benchStats{}
	for _, r := range results {
		total.operations += r.operations
		total.failures += r.failures
		total.cache.Hits += r.cache.Hits
		total.cache.Misses += r.cache.Misses
	}

	fmt.Printf("\nBENCH RESULTS\n")
	fmt.Printf("  Operations: %d (%d failed)\n", total.operations, total.failures)
	fmt.Printf("  Elapsed:    %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Throughput: %.0f ops/s\n", float64(total.operations)/elapsed.Seconds())
	lookups := total.cache.Hits + total.cache.Misses
	if lookups > 0 {
		fmt.Printf("  Cache:      %d hits / %d misses (%.1f%% hit rate)\n",
			total.cache.Hits, total.cache.Misses, 100*float64(total.cache.Hits)/float64(lookups))
	}
	return nil
}

// benchWorker drives one worker's share of the operation mix
func benchWorker(ctx context.Context, limiter *rate.Limiter, state *galaxy.State, rng *rand.Rand, count int) benchStats {
	clock := shared.NewRealClock()
	manager := economy.NewCachedResourceManager(state, clock)
	batchPlanner := economy.NewBatchResourceManager(economy.NewResourceManager(state, clock))
	registry := production.DefaultStatsRegistry()
	validator := production.NewCostValidator(registry, manager)
	batchValidator := production.NewBatchCostValidator(validator)
	unitTypes := registry.UnitTypes()
	players := state.Players()

	stats := benchStats{}
	for i := 0; i < count; i++ {
		if err := limiter.Wait(ctx); err != nil {
			break
		}

		player := players[rng.Intn(len(players))]
		var err error
		switch rng.Intn(7) {
		case 0:
			_, err = manager.AvailableResources(player.ID())
		case 1:
			_, err = manager.AvailableInfluence(player.ID(), rng.Intn(2) == 0)
		case 2:
			_, err = manager.CreateSpendingPlan(player.ID(), rng.Intn(8), rng.Intn(8), false)
		case 3:
			_, err = manager.CanAffordSpending(player.ID(), rng.Intn(8), rng.Intn(8), rng.Intn(2) == 0)
		case 4:
			unitType := unitTypes[rng.Intn(len(unitTypes))]
			cost, costErr := validator.ProductionCost(unitType, 1+rng.Intn(3), player.Faction(), player.Technologies())
			if costErr == nil {
				_, err = validator.ValidateProductionCost(player.ID(), cost)
			} else {
				err = costErr
			}
		case 5:
			requests := make([]production.ProductionRequest, 1+rng.Intn(3))
			for j := range requests {
				requests[j] = production.ProductionRequest{
					UnitType:     unitTypes[rng.Intn(len(unitTypes))],
					Quantity:     1 + rng.Intn(3),
					Faction:      player.Faction(),
					Technologies: player.Technologies(),
				}
			}
			_, err = batchValidator.ValidateBatchProductionCosts(player.ID(), requests)
		case 6:
			requests := make([]economy.SpendingRequest, 1+rng.Intn(3))
			for j := range requests {
				requests[j] = economy.SpendingRequest{
					Resources: rng.Intn(8),
					Influence: rng.Intn(8),
					ForVoting: rng.Intn(2) == 0,
				}
			}
			_, err = batchPlanner.CreateBatchSpendingPlans(player.ID(), requests)
		}

		stats.operations++
		if err != nil {
			stats.failures++
		}
	}

	stats.cache = manager.Stats()
	return stats
}
