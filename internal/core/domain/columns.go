package domain

import "strings"

// ColumnRef locates one logical column inside a table, if it was resolved.
// The zero value means "not found".
type ColumnRef struct {
	Index int
	OK    bool
}

// Columns maps the logical vocabulary fields to cell positions.
// Column order is schema-free and discovered per table from header texts.
type Columns struct {
	Term    ColumnRef
	Romaji  ColumnRef
	Meaning ColumnRef
	Example ColumnRef
}

// Usable reports whether the table can feed the pipeline at all.
// A table without a term column or an example column is legitimately
// not a vocabulary table and is skipped, not an error.
func (c Columns) Usable() bool {
	return c.Term.OK && c.Example.OK
}

// ResolveColumns matches header texts to column roles using
// case-insensitive substring and equality rules. Each role is resolved
// independently, so one header may satisfy several roles.
func ResolveColumns(headers []string) Columns {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return Columns{
		Term: findColumn(lower, func(h string) bool {
			return strings.Contains(h, "kanji") || strings.Contains(h, "front") || h == "word"
		}),
		Romaji: findColumn(lower, func(h string) bool {
			return strings.Contains(h, "romaji") || strings.Contains(h, "reading")
		}),
		Meaning: findColumn(lower, func(h string) bool {
			return strings.Contains(h, "meaning") || strings.Contains(h, "english")
		}),
		Example: findColumn(lower, func(h string) bool {
			return strings.Contains(h, "example")
		}),
	}
}

// findColumn returns the first header matching the predicate.
func findColumn(headers []string, match func(string) bool) ColumnRef {
	for i, h := range headers {
		if match(h) {
			return ColumnRef{Index: i, OK: true}
		}
	}
	return ColumnRef{}
}
