package domain

import "strings"

// RowSource identifies which store representation produced a Row.
// It determines the write-back strategy.
type RowSource string

const (
	// SourceTable rows originate from embedded-table rows. Updates
	// replace the full cell set of the row block.
	SourceTable RowSource = "table"

	// SourceDatabase rows originate from structured-collection records.
	// Updates replace a single named property.
	SourceDatabase RowSource = "database"
)

// Row is the unified vocabulary record both schema adapters produce.
// It is a snapshot at fetch time: no row is re-fetched mid-run, and
// only the Example field is ever mutated (once, by write-back).
type Row struct {
	// ID is the store identifier of the underlying table-row block or
	// collection record. All mutations target this ID.
	ID string

	// Kanji is the primary term. A row without it is ineligible.
	Kanji string

	Romaji  string
	Meaning string

	// Example is empty or well-formed under the three-line grammar.
	Example string

	Source RowSource

	// Headers and Cells are populated for table-sourced rows only.
	// Write-back replaces the whole cell set, so the row carries it.
	Headers []string
	Cells   []string

	// Columns locates the logical fields within Cells.
	Columns Columns
}

// Eligible reports whether the row can be processed at all.
func (r Row) Eligible() bool {
	return r.Kanji != ""
}

// Back renders the labelled card back: every non-id field as
// "Header: value", joined with BackSeparator, in source order.
func (r Row) Back() string {
	if r.Source == SourceTable {
		parts := make([]string, len(r.Cells))
		for i, cell := range r.Cells {
			label := ""
			if i < len(r.Headers) {
				label = r.Headers[i]
			}
			parts[i] = label + ": " + cell
		}
		return strings.Join(parts, BackSeparator)
	}

	// Database rows use the conventional upstream field order.
	pairs := []struct{ label, value string }{
		{"Kanji", r.Kanji},
		{"Romaji", r.Romaji},
		{"Meaning", r.Meaning},
		{"Example", r.Example},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.label+": "+p.value)
	}
	return strings.Join(parts, BackSeparator)
}
