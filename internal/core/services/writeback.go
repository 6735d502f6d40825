package services

import (
	"context"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
	"github.com/kotoba-labs/reibun-cli/internal/logger"
)

// exampleField is the property name of the example field on
// database-sourced rows, by upstream schema convention.
const exampleField = "Example"

// WriteBack persists accepted example values to the originating row.
// A write either replaces the whole field or does not happen; the
// returned row always reflects what is actually persisted.
type WriteBack struct {
	store   driven.ContentStore
	limiter driven.Limiter
}

// NewWriteBack creates a write-back over store, pacing successful
// writes through limiter. A nil limiter disables pacing.
func NewWriteBack(store driven.ContentStore, limiter driven.Limiter) *WriteBack {
	if limiter == nil {
		limiter = driven.NopLimiter{}
	}
	return &WriteBack{store: store, limiter: limiter}
}

// Apply writes value into row's example field. No-op when value is
// empty or equals the current field: no network call, no pacing.
// On write failure the row is returned with its original value so
// aggregation reflects the pre-write state.
func (w *WriteBack) Apply(ctx context.Context, row domain.Row, value string) domain.Row {
	if value == "" || value == row.Example {
		return row
	}

	switch row.Source {
	case domain.SourceTable:
		if !row.Columns.Example.OK || row.Columns.Example.Index >= len(row.Cells) {
			logger.Warn("row %s has no writable example cell", row.ID)
			return row
		}
		cells := append([]string(nil), row.Cells...)
		cells[row.Columns.Example.Index] = value
		if err := w.store.UpdateTableRow(ctx, row.ID, cells); err != nil {
			logger.Warn("update failed for %q, keeping original value: %v", row.Kanji, err)
			return row
		}
		row.Cells = cells
	case domain.SourceDatabase:
		if err := w.store.UpdateRecordField(ctx, row.ID, exampleField, value); err != nil {
			logger.Warn("update failed for %q, keeping original value: %v", row.Kanji, err)
			return row
		}
	default:
		logger.Warn("row %s: %v", row.ID, domain.ErrUnsupportedSource)
		return row
	}

	row.Example = value

	// The upstream API rate limit is paid only on an actual write.
	if err := w.limiter.Wait(ctx); err != nil {
		logger.Warn("rate limit wait interrupted: %v", err)
	}
	return row
}
