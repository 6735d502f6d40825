package services

import (
	"context"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

// Enricher drives one generation exchange and normalises the result.
// Backend failures never escape this boundary: they are logged and
// surface as an empty result, which downstream reads as "no update".
type Enricher struct {
	gen driven.ExampleGenerator
}

// NewEnricher creates an enricher over the given generation backend.
func NewEnricher(gen driven.ExampleGenerator) *Enricher {
	return &Enricher{gen: gen}
}

// Generate requests example text for row under the decided variant,
// then sanitises and validates it against the three-line grammar.
// Returns "" when the backend fails or the result is malformed.
func (e *Enricher) Generate(ctx context.Context, row domain.Row, d Decision) string {
	raw, err := e.gen.GenerateExample(ctx, domain.GenerationRequest{
		Term:           row.Kanji,
		Romaji:         row.Romaji,
		Meaning:        row.Meaning,
		CurrentExample: row.Example,
		Mode:           d.Mode,
		Style:          d.Style,
	})
	if err != nil {
		logger.Warn("generation failed for %q: %v", row.Kanji, err)
		return ""
	}
	return e.accept(row, raw)
}

// Curate requests a cleanup pass over row's populated example field.
// Returns "" when the backend fails or the result is malformed.
func (e *Enricher) Curate(ctx context.Context, row domain.Row) string {
	raw, err := e.gen.CurateExamples(ctx, domain.CurationRequest{
		Term:    row.Kanji,
		Romaji:  row.Romaji,
		Meaning: row.Meaning,
		Example: row.Example,
	})
	if err != nil {
		logger.Warn("curation failed for %q: %v", row.Kanji, err)
		return ""
	}
	return e.accept(row, raw)
}

func (e *Enricher) accept(row domain.Row, raw string) string {
	out, err := domain.NormaliseGenerated(raw)
	if err != nil {
		logger.Warn("discarding malformed result for %q: %v", row.Kanji, err)
		return ""
	}
	return out
}
