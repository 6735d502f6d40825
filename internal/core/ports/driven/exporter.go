package driven

import "github.com/kotoba-labs/reibun-cli/internal/core/domain"

// CardExporter consumes the aggregated export sequence. The sequence
// is ordered (page order, then table order, then row order) and the
// exporter must preserve it.
type CardExporter interface {
	Export(cards []domain.Card) error
}
