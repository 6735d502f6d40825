// Package cli implements the reibun command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/config/file"
	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

var (
	cfgPath     string
	verboseFlag bool

	// cfg is loaded once in the persistent pre-run and read by every
	// subcommand.
	cfg file.Config
)

var rootCmd = &cobra.Command{
	Use:   "reibun",
	Short: "Enrich Notion vocabulary tables and export flashcards",
	Long: `Reibun crawls a Notion page tree of vocabulary tables or databases,
generates missing usage examples through a text-generation backend,
writes accepted examples back to Notion, and exports the full set as
a Front/Back/Tags CSV for flashcard import.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := file.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = c
		logger.SetVerbose(verboseFlag)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.reibun/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
