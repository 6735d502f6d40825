package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/export/csvfile"
	"github.com/kotoba-labs/reibun-cli/internal/core/services"
)

var (
	syncForce     bool
	syncSource    string
	syncOut       string
	syncSeed      int64
	syncThreshold float64
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Crawl vocabulary, generate missing examples and export flashcards",
	Long: `Walks every page under the configured parent, generates example
sentences for rows whose example field is empty, writes accepted results
back to Notion, and exports the full row set as a CSV.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "regenerate rows whose example is already populated")
	syncCmd.Flags().StringVar(&syncSource, "source", "tables", "store representation to read: tables or databases")
	syncCmd.Flags().StringVarP(&syncOut, "out", "o", "", "CSV output path (default from config)")
	syncCmd.Flags().Int64Var(&syncSeed, "seed", 0, "random seed for mode/style selection (0 = time-based)")
	syncCmd.Flags().Float64Var(&syncThreshold, "style-threshold", 0, "formal/conversational split point (default from config)")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	source, err := sourceKind(syncSource)
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

	seed := syncSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	threshold := syncThreshold
	if threshold <= 0 {
		threshold = cfg.Generation.StyleThreshold
	}

	traverser := services.NewTraverser(store, notesFilter())
	aggregator := services.NewAggregator(
		traverser,
		services.NewPolicy(rand.NewSource(seed), threshold),
		services.NewEnricher(generator),
		services.NewWriteBack(store, writeLimiter()),
		cfg.Notion.ParentPageID,
	)

	cards, stats, err := aggregator.Run(ctx, services.RunOptions{Force: syncForce, Source: source})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	out := syncOut
	if out == "" {
		out = cfg.Pipeline.Output
	}
	exporter := csvfile.New(out)
	if err := exporter.Export(cards); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("run %s: %d pages, %d rows, %d generated, %d updated, %d skipped\n",
		stats.RunID, stats.Pages, stats.Rows, stats.Generated, stats.Updated, stats.Skipped)
	cmd.Printf("exported %d cards to %s\n", len(cards), out)
	return nil
}
