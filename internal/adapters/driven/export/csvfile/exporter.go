// Package csvfile writes the export sequence as a Front/Back/Tags CSV
// consumable by flashcard importers.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// Ensure Exporter implements the interface.
var _ driven.CardExporter = (*Exporter)(nil)

// header is the column set the flashcard importer expects.
var header = []string{"Front", "Back", "Tags"}

// Exporter writes cards to a CSV file, preserving sequence order.
type Exporter struct {
	path string
}

// New creates an exporter writing to path.
func New(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the output file path.
func (e *Exporter) Path() string {
	return e.path
}

// Export writes the full card sequence, replacing any existing file.
func (e *Exporter) Export(cards []domain.Card) error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", e.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, card := range cards {
		if err := w.Write([]string{card.Front, card.Back, card.Tag}); err != nil {
			return fmt.Errorf("write card %q: %w", card.Front, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", e.path, err)
	}
	return f.Close()
}
