package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "imperium"
	// Subsystem for economy engine metrics
	subsystem = "economy"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalEconomyCollector is the singleton economy metrics collector
	// Set by SetGlobalEconomyCollector() when metrics are enabled
	globalEconomyCollector EconomyMetricsRecorder
)

// EconomyMetricsRecorder defines the interface for recording economy metrics
// This interface is used by application code to record metrics events
type EconomyMetricsRecorder interface {
	RecordSpendExecution(playerID int, purpose string, resources int, influence int, tradeGoods int)
	RecordUnitsProduced(playerID int, unitType string, units int, totalCost float64)
	RecordPlanetsReadied(playerID int, count int)
	RecordCommodityConversion(playerID int, amount int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalEconomyCollector sets the global economy metrics collector
// This should be called after the collector is created and started
func SetGlobalEconomyCollector(collector EconomyMetricsRecorder) {
	globalEconomyCollector = collector
}

// RecordSpendExecution records an executed spending plan globally
func RecordSpendExecution(playerID int, purpose string, resources int, influence int, tradeGoods int) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordSpendExecution(playerID, purpose, resources, influence, tradeGoods)
	}
}

// RecordUnitsProduced records a completed production order globally
func RecordUnitsProduced(playerID int, unitType string, units int, totalCost float64) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordUnitsProduced(playerID, unitType, units, totalCost)
	}
}

// RecordPlanetsReadied records a planet ready step globally
func RecordPlanetsReadied(playerID int, count int) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordPlanetsReadied(playerID, count)
	}
}

// RecordCommodityConversion records a commodity wash globally
func RecordCommodityConversion(playerID int, amount int) {
	if globalEconomyCollector != nil {
		globalEconomyCollector.RecordCommodityConversion(playerID, amount)
	}
}
