package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bakeplan",
		Short: "Bakeplan - backward production scheduling for bakeries",
		Long: `Bakeplan schedules bakery production orders backward from their
delivery deadline, allocating ovens, mixers, benches and staff so that every
activity finishes as late as feasibility allows.

Examples:
  bakeplan schedule run --product 1001 --quantity 200 --end "2026-09-01 09:00"
  bakeplan recipe show --product 1001 --quantity 200
  bakeplan agenda --order 1 --request 1
  bakeplan stock set --item 2001 --level 5000
  bakeplan stock get --item 2001`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/bakeplan)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewScheduleCommand())
	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewAgendaCommand())
	rootCmd.AddCommand(NewStockCommand())

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
