package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

func curateStore(example string) *mockStore {
	return &mockStore{
		children: map[string][]domain.Container{
			"parent": {
				{ID: "page-verbs", Kind: domain.KindPage, Title: "Verbs"},
			},
			"page-verbs": {
				{ID: "table-1", Kind: domain.KindTable},
			},
			"table-1": {
				tableRow("row-h", "Word", "Romaji", "Meaning", "Example"),
				tableRow("row-1", "走る", "hashiru", "to run", example),
			},
		},
	}
}

func newCurator(store *mockStore, gen *mockGenerator, limiter *countLimiter) *Curator {
	traverser := NewTraverser(store, NotesFilter{Title: "notes"})
	return NewCurator(traverser, NewEnricher(gen), NewWriteBack(store, limiter), "parent")
}

func TestCuratorRun(t *testing.T) {
	ctx := context.Background()
	messy := "走った。\nhashitta.\n(ran)\n\n走った。\nhashitta.\n(ran again)"
	clean := "走った。\nhashitta.\n(ran)"

	t.Run("rewrites messy fields through the backend", func(t *testing.T) {
		store := curateStore(messy)
		gen := &mockGenerator{curated: clean}
		limiter := &countLimiter{}

		stats, err := newCurator(store, gen, limiter).Run(ctx, SourceTables)
		require.NoError(t, err)

		require.Len(t, gen.curations, 1)
		assert.Equal(t, messy, gen.curations[0].Example)

		require.Len(t, store.tableUpdates, 1)
		assert.Equal(t, clean, store.tableUpdates[0].cells[3])
		assert.Equal(t, 1, limiter.waits)

		assert.Equal(t, CurateStats{Pages: 1, Checked: 1, Updated: 1}, stats)
	})

	t.Run("unchanged results do not write", func(t *testing.T) {
		store := curateStore(clean)
		gen := &mockGenerator{curated: clean}
		limiter := &countLimiter{}

		stats, err := newCurator(store, gen, limiter).Run(ctx, SourceTables)
		require.NoError(t, err)

		assert.Len(t, gen.curations, 1)
		assert.Empty(t, store.tableUpdates)
		assert.Zero(t, limiter.waits)
		assert.Equal(t, CurateStats{Pages: 1, Checked: 1}, stats)
	})

	t.Run("short fields are left alone", func(t *testing.T) {
		store := curateStore("走る")
		gen := &mockGenerator{}

		stats, err := newCurator(store, gen, &countLimiter{}).Run(ctx, SourceTables)
		require.NoError(t, err)

		assert.Empty(t, gen.curations)
		assert.Equal(t, CurateStats{Pages: 1}, stats)
	})

	t.Run("backend failure leaves the field untouched", func(t *testing.T) {
		store := curateStore(messy)
		gen := &mockGenerator{err: errors.New("backend down")}
		limiter := &countLimiter{}

		stats, err := newCurator(store, gen, limiter).Run(ctx, SourceTables)
		require.NoError(t, err)

		assert.Empty(t, store.tableUpdates)
		assert.Zero(t, limiter.waits)
		assert.Equal(t, CurateStats{Pages: 1, Checked: 1}, stats)
	})

	t.Run("traversal failure aborts", func(t *testing.T) {
		store := curateStore(messy)
		store.listErr = errors.New("store down")

		_, err := newCurator(store, &mockGenerator{}, &countLimiter{}).Run(ctx, SourceTables)
		require.Error(t, err)
	})
}
