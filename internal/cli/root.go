// Package cli provides the invopt command-line interface.
package cli

import (
	"os"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the invopt command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "invopt",
		Short: "Plan reorders of medical supplies at minimum cost.",
		Long: `invopt computes the reorder plan that minimises ordering, storage and ` +
			`shortage cost over a daily consumption forecast. It can also generate ` +
			`synthetic consumption, browse supply journals and run the HTTP API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			level, _ := cmd.Flags().GetString("log-level")
			logger.InitWithWriter(cmd.ErrOrStderr(), level, true)
			return nil
		},
	}
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading configuration")
	root.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newSolveCommand(),
		newGenerateCommand(),
		newJournalCommand(),
		newServeCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
