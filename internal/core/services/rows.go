package services

import "github.com/kotoba-labs/reibun-cli/internal/core/domain"

// RowsFromTable converts a table container's children into unified
// rows. The first table row is the header; column roles are resolved
// from the header texts. Returns nil when the table has no data rows
// or when the term or example column cannot be resolved; such tables
// are legitimately not vocabulary tables.
func RowsFromTable(children []domain.Container) []domain.Row {
	var tableRows []domain.Container
	for _, c := range children {
		if c.Kind == domain.KindTableRow {
			tableRows = append(tableRows, c)
		}
	}
	if len(tableRows) < 2 {
		return nil
	}

	headers := tableRows[0].Cells
	cols := domain.ResolveColumns(headers)
	if !cols.Usable() {
		return nil
	}

	rows := make([]domain.Row, 0, len(tableRows)-1)
	for _, tr := range tableRows[1:] {
		rows = append(rows, rowFromCells(tr.ID, headers, cols, tr.Cells))
	}
	return rows
}

func rowFromCells(id string, headers []string, cols domain.Columns, cells []string) domain.Row {
	return domain.Row{
		ID:      id,
		Kanji:   cellAt(cells, cols.Term),
		Romaji:  cellAt(cells, cols.Romaji),
		Meaning: cellAt(cells, cols.Meaning),
		Example: cellAt(cells, cols.Example),
		Source:  domain.SourceTable,
		Headers: headers,
		Cells:   append([]string(nil), cells...),
		Columns: cols,
	}
}

// cellAt returns the cell at ref, or "" when the column was not
// resolved or the row is short.
func cellAt(cells []string, ref domain.ColumnRef) string {
	if !ref.OK || ref.Index >= len(cells) {
		return ""
	}
	return cells[ref.Index]
}

// RowFromRecord converts a flattened structured record into a unified
// row. Field names follow the upstream schema convention.
func RowFromRecord(rec domain.Record) domain.Row {
	return domain.Row{
		ID:      rec.ID,
		Kanji:   rec.Fields["Kanji"],
		Romaji:  rec.Fields["Romaji"],
		Meaning: rec.Fields["Meaning"],
		Example: rec.Fields["Example"],
		Source:  domain.SourceDatabase,
	}
}
