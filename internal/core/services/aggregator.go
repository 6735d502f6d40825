package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

// RunOptions configure a single aggregation run.
type RunOptions struct {
	// Force regenerates rows whose example field is already populated.
	Force bool

	// Source selects the store representation to read. Defaults to
	// SourceTables.
	Source SourceKind
}

// RunStats summarise one aggregation run.
type RunStats struct {
	RunID     string
	Pages     int
	Rows      int
	Generated int
	Updated   int
	Skipped   int
}

// Aggregator drives the full traversal and the per-row pipeline:
// policy, generation, write-back, card accumulation. Rows are
// processed strictly sequentially in source order so the tag-per-page
// grouping of the export stays meaningful.
type Aggregator struct {
	traverser *Traverser
	policy    *Policy
	enricher  *Enricher
	writeback *WriteBack
	parentID  string
}

// NewAggregator wires the pipeline over its collaborators.
func NewAggregator(traverser *Traverser, policy *Policy, enricher *Enricher, writeback *WriteBack, parentID string) *Aggregator {
	return &Aggregator{
		traverser: traverser,
		policy:    policy,
		enricher:  enricher,
		writeback: writeback,
		parentID:  parentID,
	}
}

// Run walks every page under the parent container and emits the export
// sequence. Traversal failures abort the run; row-local generation and
// write-back failures are absorbed and processing continues.
func (a *Aggregator) Run(ctx context.Context, opts RunOptions) ([]domain.Card, RunStats, error) {
	stats := RunStats{RunID: uuid.NewString()}

	byPage, err := a.traverser.RowsByPage(ctx, a.parentID, opts.Source)
	if err != nil {
		return nil, stats, err
	}

	var cards []domain.Card
	for _, page := range byPage {
		logger.Section(page.Title)
		stats.Pages++
		tag := domain.PageTag(page.Title)

		for _, row := range page.Rows {
			if !row.Eligible() {
				continue
			}
			stats.Rows++
			row = a.process(ctx, row, opts.Force, &stats)
			cards = append(cards, domain.Card{Front: row.Kanji, Back: row.Back(), Tag: tag})
		}
		logger.Info("finished page %q (%d rows)", page.Title, len(page.Rows))
	}
	return cards, stats, nil
}

// process runs the per-row pipeline and returns the row reflecting
// whatever value is actually persisted.
func (a *Aggregator) process(ctx context.Context, row domain.Row, force bool, stats *RunStats) domain.Row {
	decision := a.policy.Decide(row, force)
	if !decision.Generate {
		stats.Skipped++
		logger.Debug("example for %q already exists, skipping", row.Kanji)
		return row
	}

	logger.Info("generating example for %q (%s %s)", row.Kanji, decision.Mode, decision.Style)
	stats.Generated++

	text := a.enricher.Generate(ctx, row, decision)
	before := row.Example
	row = a.writeback.Apply(ctx, row, text)
	if row.Example != before {
		stats.Updated++
	}
	return row
}
