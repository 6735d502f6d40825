package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kotoba-labs/reibun-cli/internal/core/services"
)

var cleanSource string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Deduplicate and trim populated example fields",
	Long: `Runs a curation pass over rows whose example field is already
populated: duplicate examples are removed and at most the two longest
are kept. The text itself is never reworded. Accepted results are
written back under the same rate-limit discipline as sync.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVar(&cleanSource, "source", "tables", "store representation to read: tables or databases")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	source, err := sourceKind(cleanSource)
	if err != nil {
		return err
	}

	ctx := context.Background()

	store, err := buildStore()
	if err != nil {
		return err
	}
	generator, err := buildGenerator(ctx)
	if err != nil {
		return err
	}

	traverser := services.NewTraverser(store, notesFilter())
	curator := services.NewCurator(
		traverser,
		services.NewEnricher(generator),
		services.NewWriteBack(store, writeLimiter()),
		cfg.Notion.ParentPageID,
	)

	stats, err := curator.Run(ctx, source)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	cmd.Printf("%d pages, %d rows checked, %d updated\n", stats.Pages, stats.Checked, stats.Updated)
	return nil
}
