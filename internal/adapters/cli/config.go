package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twilightsim/imperium-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration inspection",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Display the configuration after merging defaults, the config file and
IMPERIUM_-prefixed environment variables.

Example:
  imperium config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}
}

// runConfigShow executes the config show command
func runConfigShow() error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("DATABASE")
	fmt.Printf("  type:    %s\n", cfg.Database.Type)
	if cfg.Database.Type == "sqlite" {
		fmt.Printf("  path:    %s\n", cfg.Database.Path)
	} else {
		if cfg.Database.URL != "" {
			fmt.Printf("  url:     (set)\n")
		} else {
			fmt.Printf("  host:    %s:%d\n", cfg.Database.Host, cfg.Database.Port)
			fmt.Printf("  name:    %s\n", cfg.Database.Name)
			fmt.Printf("  sslmode: %s\n", cfg.Database.SSLMode)
		}
		fmt.Printf("  pool:    %d open / %d idle, lifetime %s\n",
			cfg.Database.Pool.MaxOpen, cfg.Database.Pool.MaxIdle, cfg.Database.Pool.MaxLifetime)
	}

	fmt.Println("LOGGING")
	fmt.Printf("  level:   %s\n", cfg.Logging.Level)
	fmt.Printf("  format:  %s\n", cfg.Logging.Format)
	fmt.Printf("  output:  %s\n", cfg.Logging.Output)

	fmt.Println("METRICS")
	fmt.Printf("  enabled: %t\n", cfg.Metrics.Enabled)
	fmt.Printf("  address: %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

	fmt.Println("BENCH")
	fmt.Printf("  rate:       %.0f ops/s (burst %d)\n", cfg.Bench.Rate, cfg.Bench.Burst)
	fmt.Printf("  operations: %d across %d workers\n", cfg.Bench.Operations, cfg.Bench.Workers)

	return nil
}
