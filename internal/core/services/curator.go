package services

import (
	"context"
	"unicode/utf8"

	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

// minCurateLength is the shortest example field worth a curation pass.
// Anything shorter is either empty or a stub the generation pass owns.
const minCurateLength = 5

// CurateStats summarise one curation run.
type CurateStats struct {
	Pages   int
	Checked int
	Updated int
}

// Curator runs the cleanup pass over rows with populated examples:
// deduplication and keep-two-longest through the generation backend,
// under the same sanitation and write-back discipline as enrichment.
type Curator struct {
	traverser *Traverser
	enricher  *Enricher
	writeback *WriteBack
	parentID  string
}

// NewCurator wires the curation pass over its collaborators.
func NewCurator(traverser *Traverser, enricher *Enricher, writeback *WriteBack, parentID string) *Curator {
	return &Curator{
		traverser: traverser,
		enricher:  enricher,
		writeback: writeback,
		parentID:  parentID,
	}
}

// Run curates every populated row under the parent container.
// Traversal failures abort the run; row-local failures are absorbed.
func (c *Curator) Run(ctx context.Context, source SourceKind) (CurateStats, error) {
	var stats CurateStats

	byPage, err := c.traverser.RowsByPage(ctx, c.parentID, source)
	if err != nil {
		return stats, err
	}

	for _, page := range byPage {
		logger.Section(page.Title)
		stats.Pages++

		for _, row := range page.Rows {
			if !row.Eligible() || utf8.RuneCountInString(row.Example) <= minCurateLength {
				continue
			}
			stats.Checked++
			logger.Info("curating %q", row.Kanji)

			text := c.enricher.Curate(ctx, row)
			if text == "" || text == row.Example {
				logger.Debug("already optimal: %q", row.Kanji)
				continue
			}
			updated := c.writeback.Apply(ctx, row, text)
			if updated.Example != row.Example {
				stats.Updated++
			}
		}
	}
	return stats, nil
}
