package setup

import (
	"reflect"

	economyCommands "github.com/twilightsim/imperium-go/internal/application/economy/commands"
	economyQueries "github.com/twilightsim/imperium-go/internal/application/economy/queries"
	ledgerQueries "github.com/twilightsim/imperium-go/internal/application/ledger/queries"
	"github.com/twilightsim/imperium-go/internal/application/mediator"
	playerQueries "github.com/twilightsim/imperium-go/internal/application/player/queries"
	productionCommands "github.com/twilightsim/imperium-go/internal/application/production/commands"
	productionQueries "github.com/twilightsim/imperium-go/internal/application/production/queries"
	"github.com/twilightsim/imperium-go/internal/domain/galaxy"
	"github.com/twilightsim/imperium-go/internal/domain/ledger"
	"github.com/twilightsim/imperium-go/internal/domain/production"
	"github.com/twilightsim/imperium-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	stateRepo     galaxy.StateRepository
	recordRepo    ledger.SpendRecordRepository
	statsRegistry *production.StatsRegistry
	clock         shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	stateRepo galaxy.StateRepository,
	recordRepo ledger.SpendRecordRepository,
	statsRegistry *production.StatsRegistry,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}
	// Default to the standard unit roster if not provided
	if statsRegistry == nil {
		statsRegistry = production.DefaultStatsRegistry()
	}

	return &HandlerRegistry{
		stateRepo:     stateRepo,
		recordRepo:    recordRepo,
		statsRegistry: statsRegistry,
		clock:         clock,
	}
}

// RegisterEconomyHandlers registers all economy command and query handlers
// with the mediator
//
// This method registers:
//   - ExecuteSpendingCommand → ExecuteSpendingHandler (plan, execute, record)
//   - ReadyPlanetsCommand → ReadyPlanetsHandler (round upkeep)
//   - ConvertCommoditiesCommand → ConvertCommoditiesHandler (commodity wash)
//   - GetResourceSourcesQuery → GetResourceSourcesHandler
//   - GetInfluenceSourcesQuery → GetInfluenceSourcesHandler
//   - CanAffordQuery → CanAffordHandler
//   - PreviewSpendingPlanQuery → PreviewSpendingPlanHandler
//   - GetEconomyStatusQuery → GetEconomyStatusHandler
func (r *HandlerRegistry) RegisterEconomyHandlers(m mediator.Mediator) error {
	executeHandler := economyCommands.NewExecuteSpendingHandler(r.stateRepo, r.recordRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyCommands.ExecuteSpendingCommand{}),
		executeHandler,
	); err != nil {
		return err
	}

	readyHandler := economyCommands.NewReadyPlanetsHandler(r.stateRepo)
	if err := m.Register(
		reflect.TypeOf(&economyCommands.ReadyPlanetsCommand{}),
		readyHandler,
	); err != nil {
		return err
	}

	convertHandler := economyCommands.NewConvertCommoditiesHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyCommands.ConvertCommoditiesCommand{}),
		convertHandler,
	); err != nil {
		return err
	}

	resourceSourcesHandler := economyQueries.NewGetResourceSourcesHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyQueries.GetResourceSourcesQuery{}),
		resourceSourcesHandler,
	); err != nil {
		return err
	}

	influenceSourcesHandler := economyQueries.NewGetInfluenceSourcesHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyQueries.GetInfluenceSourcesQuery{}),
		influenceSourcesHandler,
	); err != nil {
		return err
	}

	canAffordHandler := economyQueries.NewCanAffordHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyQueries.CanAffordQuery{}),
		canAffordHandler,
	); err != nil {
		return err
	}

	previewHandler := economyQueries.NewPreviewSpendingPlanHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyQueries.PreviewSpendingPlanQuery{}),
		previewHandler,
	); err != nil {
		return err
	}

	statusHandler := economyQueries.NewGetEconomyStatusHandler(r.stateRepo, r.clock)
	if err := m.Register(
		reflect.TypeOf(&economyQueries.GetEconomyStatusQuery{}),
		statusHandler,
	); err != nil {
		return err
	}

	return nil
}

// RegisterProductionHandlers registers all production command and query
// handlers with the mediator
//
// This method registers:
//   - ProduceUnitsCommand → ProduceUnitsHandler (validate, spend, record)
//   - GetProductionCostQuery → GetProductionCostHandler
//   - ValidateProductionQuery → ValidateProductionHandler
//   - ValidateBatchProductionQuery → ValidateBatchProductionHandler
func (r *HandlerRegistry) RegisterProductionHandlers(m mediator.Mediator) error {
	produceHandler := productionCommands.NewProduceUnitsHandler(r.stateRepo, r.recordRepo, r.statsRegistry, r.clock)
	if err := m.Register(
		reflect.TypeOf(&productionCommands.ProduceUnitsCommand{}),
		produceHandler,
	); err != nil {
		return err
	}

	costHandler := productionQueries.NewGetProductionCostHandler(r.stateRepo, r.statsRegistry, r.clock)
	if err := m.Register(
		reflect.TypeOf(&productionQueries.GetProductionCostQuery{}),
		costHandler,
	); err != nil {
		return err
	}

	validateHandler := productionQueries.NewValidateProductionHandler(r.stateRepo, r.statsRegistry, r.clock)
	if err := m.Register(
		reflect.TypeOf(&productionQueries.ValidateProductionQuery{}),
		validateHandler,
	); err != nil {
		return err
	}

	batchHandler := productionQueries.NewValidateBatchProductionHandler(r.stateRepo, r.statsRegistry, r.clock)
	if err := m.Register(
		reflect.TypeOf(&productionQueries.ValidateBatchProductionQuery{}),
		batchHandler,
	); err != nil {
		return err
	}

	return nil
}

// RegisterLedgerHandlers registers all ledger query handlers with the mediator
//
// This method registers:
//   - GetSpendHistoryQuery → GetSpendHistoryHandler (for record queries)
//   - GetSpendSummaryQuery → GetSpendSummaryHandler (for aggregate reports)
func (r *HandlerRegistry) RegisterLedgerHandlers(m mediator.Mediator) error {
	historyHandler := ledgerQueries.NewGetSpendHistoryHandler(r.recordRepo)
	if err := m.Register(
		reflect.TypeOf(&ledgerQueries.GetSpendHistoryQuery{}),
		historyHandler,
	); err != nil {
		return err
	}

	summaryHandler := ledgerQueries.NewGetSpendSummaryHandler(r.recordRepo)
	if err := m.Register(
		reflect.TypeOf(&ledgerQueries.GetSpendSummaryQuery{}),
		summaryHandler,
	); err != nil {
		return err
	}

	return nil
}

// RegisterPlayerHandlers registers all player query handlers with the mediator
func (r *HandlerRegistry) RegisterPlayerHandlers(m mediator.Mediator) error {
	playersHandler := playerQueries.NewGetPlayersHandler(r.stateRepo)
	return m.Register(
		reflect.TypeOf(&playerQueries.GetPlayersQuery{}),
		playersHandler,
	)
}

// CreateConfiguredMediator creates a new mediator with every handler registered
//
// Use this when you need a fully configured mediator for application use.
func (r *HandlerRegistry) CreateConfiguredMediator() (mediator.Mediator, error) {
	m := mediator.NewMediator()

	if err := r.RegisterEconomyHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterProductionHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterLedgerHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterPlayerHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
