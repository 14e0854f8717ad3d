package metrics

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	economyQueries "github.com/twilightsim/imperium-go/internal/application/economy/queries"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
)

// EconomyMetricsCollector handles all economy metrics (spending, production, balances)
type EconomyMetricsCollector struct {
	// Dependencies
	mediator mediator.Mediator

	// Spend event metrics
	spendsTotal          *prometheus.CounterVec
	spendResources       *prometheus.HistogramVec
	spendInfluence       *prometheus.HistogramVec
	tradeGoodsSpentTotal *prometheus.CounterVec

	// Production metrics
	unitsProducedTotal *prometheus.CounterVec
	productionCost     *prometheus.HistogramVec

	// Upkeep metrics
	planetsReadiedTotal       *prometheus.CounterVec
	commoditiesConvertedTotal *prometheus.CounterVec

	// Balance gauges (polled)
	availableResources *prometheus.GaugeVec
	availableInfluence *prometheus.GaugeVec
	tradeGoodsBalance  *prometheus.GaugeVec
	readyPlanets       *prometheus.GaugeVec

	// Lifecycle
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewEconomyMetricsCollector creates a new economy metrics collector
func NewEconomyMetricsCollector(m mediator.Mediator) *EconomyMetricsCollector {
	return &EconomyMetricsCollector{
		mediator: m,

		// Spend count by purpose
		spendsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "spends_total",
				Help:      "Total number of executed spending plans by purpose",
			},
			[]string{"player_id", "purpose"},
		),

		// Resource spend distribution
		spendResources: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "spend_resources",
				Help:      "Resources delivered per executed spending plan",
				Buckets:   []float64{1, 2, 3, 5, 8, 12, 20},
			},
			[]string{"player_id", "purpose"},
		),

		// Influence spend distribution
		spendInfluence: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "spend_influence",
				Help:      "Influence delivered per executed spending plan",
				Buckets:   []float64{1, 2, 3, 5, 8, 12, 20},
			},
			[]string{"player_id", "purpose"},
		),

		// Trade goods burned by spending
		tradeGoodsSpentTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_goods_spent_total",
				Help:      "Total trade goods consumed by executed spending plans",
			},
			[]string{"player_id"},
		),

		// Units produced by type
		unitsProducedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "units_produced_total",
				Help:      "Total units produced by unit type",
			},
			[]string{"player_id", "unit_type"},
		),

		// Production cost distribution
		productionCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "production_cost",
				Help:      "Total cost distribution of production orders",
				Buckets:   []float64{0.5, 1, 2, 3, 4, 6, 8, 12},
			},
			[]string{"player_id", "unit_type"},
		),

		// Planets readied during upkeep
		planetsReadiedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "planets_readied_total",
				Help:      "Total planets readied during upkeep steps",
			},
			[]string{"player_id"},
		),

		// Commodities washed into trade goods
		commoditiesConvertedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commodities_converted_total",
				Help:      "Total commodities converted into trade goods",
			},
			[]string{"player_id"},
		),

		// Current available resources gauge
		availableResources: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "available_resources",
				Help:      "Current spendable resources for each player",
			},
			[]string{"player_id", "player"},
		),

		// Current available influence gauge
		availableInfluence: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "available_influence",
				Help:      "Current spendable influence for each player",
			},
			[]string{"player_id", "player"},
		),

		// Current trade goods balance gauge
		tradeGoodsBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "trade_goods_balance",
				Help:      "Current trade goods balance for each player",
			},
			[]string{"player_id", "player"},
		),

		// Ready planet count gauge
		readyPlanets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "ready_planets",
				Help:      "Current count of ready planets for each player",
			},
			[]string{"player_id", "player"},
		),
	}
}

// Register registers all metrics with the global registry
func (c *EconomyMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.spendsTotal,
		c.spendResources,
		c.spendInfluence,
		c.tradeGoodsSpentTotal,
		c.unitsProducedTotal,
		c.productionCost,
		c.planetsReadiedTotal,
		c.commoditiesConvertedTotal,
		c.availableResources,
		c.availableInfluence,
		c.tradeGoodsBalance,
		c.readyPlanets,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// Start begins the balance polling goroutine
func (c *EconomyMetricsCollector) Start(ctx context.Context) {
	c.ctx, c.cancelFunc = context.WithCancel(ctx)

	// Start balance polling (every 30 seconds)
	c.wg.Add(1)
	go c.pollBalances(30 * time.Second)
}

// Stop gracefully stops the economy metrics collector
func (c *EconomyMetricsCollector) Stop() {
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
	c.wg.Wait()
}

// pollBalances polls table balances periodically
func (c *EconomyMetricsCollector) pollBalances(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Do initial poll immediately
	c.updateBalances()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.updateBalances()
		}
	}
}

// updateBalances fetches and updates the per-player balance gauges
func (c *EconomyMetricsCollector) updateBalances() {
	if c.mediator == nil {
		return
	}

	response, err := c.mediator.Send(context.Background(), &economyQueries.GetEconomyStatusQuery{})
	if err != nil {
		log.Printf("Failed to fetch economy status for metrics: %v", err)
		return
	}

	status, ok := response.(*economyQueries.GetEconomyStatusResponse)
	if !ok {
		log.Printf("Unexpected response type for economy status query: %T", response)
		return
	}

	for _, player := range status.Players {
		playerIDStr := strconv.Itoa(player.PlayerID)
		c.availableResources.WithLabelValues(playerIDStr, player.Name).Set(float64(player.AvailableResources))
		c.availableInfluence.WithLabelValues(playerIDStr, player.Name).Set(float64(player.AvailableInfluence))
		c.tradeGoodsBalance.WithLabelValues(playerIDStr, player.Name).Set(float64(player.TradeGoods))
		c.readyPlanets.WithLabelValues(playerIDStr, player.Name).Set(float64(player.ReadyPlanets))
	}
}

// RecordSpendExecution records an executed spending plan
func (c *EconomyMetricsCollector) RecordSpendExecution(
	playerID int,
	purpose string,
	resources int,
	influence int,
	tradeGoods int,
) {
	playerIDStr := strconv.Itoa(playerID)

	c.spendsTotal.WithLabelValues(playerIDStr, purpose).Inc()
	if resources > 0 {
		c.spendResources.WithLabelValues(playerIDStr, purpose).Observe(float64(resources))
	}
	if influence > 0 {
		c.spendInfluence.WithLabelValues(playerIDStr, purpose).Observe(float64(influence))
	}
	if tradeGoods > 0 {
		c.tradeGoodsSpentTotal.WithLabelValues(playerIDStr).Add(float64(tradeGoods))
	}
}

// RecordUnitsProduced records a completed production order
func (c *EconomyMetricsCollector) RecordUnitsProduced(
	playerID int,
	unitType string,
	units int,
	totalCost float64,
) {
	if units <= 0 {
		return // Invalid data
	}

	playerIDStr := strconv.Itoa(playerID)

	c.unitsProducedTotal.WithLabelValues(playerIDStr, unitType).Add(float64(units))
	c.productionCost.WithLabelValues(playerIDStr, unitType).Observe(totalCost)
}

// RecordPlanetsReadied records an upkeep ready step
func (c *EconomyMetricsCollector) RecordPlanetsReadied(playerID int, count int) {
	if count <= 0 {
		return
	}
	c.planetsReadiedTotal.WithLabelValues(strconv.Itoa(playerID)).Add(float64(count))
}

// RecordCommodityConversion records a commodity wash
func (c *EconomyMetricsCollector) RecordCommodityConversion(playerID int, amount int) {
	if amount <= 0 {
		return
	}
	c.commoditiesConvertedTotal.WithLabelValues(strconv.Itoa(playerID)).Add(float64(amount))
}
