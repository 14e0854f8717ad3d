package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	playerID   int
	playerName string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imperium",
		Short: "Imperium CLI - resource ledger and spending engine for the galaxy",
		Long: `Imperium manages the economy of a turn-based galactic strategy game:
per-player planets, trade goods, spending plans and unit production costs.

Examples:
  imperium game seed
  imperium economy sources --player-id 1
  imperium economy plan --player-id 1 --resources 5
  imperium economy spend --player-id 1 --resources 5 --purpose PRODUCTION
  imperium units cost --player-id 2 --type WAR_SUN --quantity 1
  imperium units produce --player-id 1 --type FIGHTER --quantity 2
  imperium ledger list --player-id 1
  imperium bench --operations 1000 --rate 200`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, /etc/imperium)")
	rootCmd.PersistentFlags().IntVar(&playerID, "player-id", 0,
		"Player ID for player-scoped commands")
	rootCmd.PersistentFlags().StringVar(&playerName, "player", "",
		"Player name for player-scoped commands (alternative to --player-id)")

	// Add command groups
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewGameCommand())
	rootCmd.AddCommand(NewEconomyCommand())
	rootCmd.AddCommand(NewUnitsCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewBenchCommand())
	rootCmd.AddCommand(NewMetricsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
