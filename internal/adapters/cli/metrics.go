package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/adapters/metrics"
	"github.com/twilightsim/imperium-go/internal/adapters/persistence"
	"github.com/twilightsim/imperium-go/internal/application/setup"
	"github.com/twilightsim/imperium-go/internal/infrastructure/database"
)

// NewMetricsCommand creates the metrics command with subcommands
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Prometheus metrics server",
	}

	cmd.AddCommand(newMetricsServeCommand())

	return cmd
}

// newMetricsServeCommand creates the metrics serve subcommand
func newMetricsServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve economy metrics over HTTP",
		Long: `Expose the economy metrics (spends, production, per-player balances)
on the Prometheus endpoint configured in the [metrics] section.

Balances are polled from the game database; spend and production
counters fill as commands execute in this process. Runs until
interrupted.

Example:
  imperium metrics serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetricsServe()
		},
	}
}

// runMetricsServe executes the metrics serve command
func runMetricsServe() error {
	db, cfg, err := connect()
	if err != nil {
		return err
	}
	defer database.Close(db)

	stateRepo := persistence.NewGormStateRepository(db)
	recordRepo := persistence.NewGormSpendRecordRepository(db)
	registry := setup.NewHandlerRegistry(stateRepo, recordRepo, nil, nil)

	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return fmt.Errorf("failed to configure mediator: %w", err)
	}

	metrics.InitRegistry()
	collector := metrics.NewEconomyMetricsCollector(m)
	if err := collector.Register(); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	metrics.SetGlobalEconomyCollector(collector)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	collector.Start(ctx)
	defer collector.Stop()

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	addr := fmt.Sprintf("%s:%d", cfg.Metrics.Host, cfg.Metrics.Port)
	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving metrics on http://%s%s", addr, cfg.Metrics.Path)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server failed: %w", err)
	case sig := <-sigCh:
		log.Printf("Received %s, shutting down", sig)
		return server.Shutdown(context.Background())
	}
}
