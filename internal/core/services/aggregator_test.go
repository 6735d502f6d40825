package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

// vocabStore builds a parent with two pages: "Verbs" holds one table
// whose single data row has an empty example cell, and "notes" holds
// content that must never be visited.
func vocabStore(pageSize int) *mockStore {
	return &mockStore{
		pageSize: pageSize,
		children: map[string][]domain.Container{
			"parent": {
				{ID: "page-verbs", Kind: domain.KindPage, Title: "Verbs"},
				{ID: "page-notes", Kind: domain.KindPage, Title: "notes"},
				{ID: "toggle-1", Kind: domain.KindToggle, Title: "Later"},
			},
			"page-verbs": {
				{ID: "table-1", Kind: domain.KindTable},
			},
			"table-1": {
				tableRow("row-h", "Word", "Romaji", "Meaning", "Example"),
				tableRow("row-1", "走る", "hashiru", "to run", ""),
			},
			"page-notes": {
				{ID: "table-9", Kind: domain.KindTable},
			},
			"table-9": {
				tableRow("row-9h", "Word", "Example"),
				tableRow("row-9", "秘密", ""),
			},
		},
	}
}

func newAggregator(store *mockStore, gen *mockGenerator, limiter *countLimiter) *Aggregator {
	traverser := NewTraverser(store, NotesFilter{Title: "notes"})
	policy := NewPolicy(rand.NewSource(1), DefaultStyleThreshold)
	return NewAggregator(traverser, policy, NewEnricher(gen), NewWriteBack(store, limiter), "parent")
}

func TestAggregatorRun(t *testing.T) {
	ctx := context.Background()
	generated := "走った。\nhashitta.\n(ran)"

	t.Run("generates once and writes once for the empty row", func(t *testing.T) {
		store := vocabStore(0)
		gen := &mockGenerator{output: generated}
		limiter := &countLimiter{}

		cards, stats, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{})
		require.NoError(t, err)

		assert.Len(t, gen.generated, 1)
		assert.Equal(t, "走る", gen.generated[0].Term)

		require.Len(t, store.tableUpdates, 1)
		assert.Equal(t, "row-1", store.tableUpdates[0].rowID)
		assert.Equal(t, []string{"走る", "hashiru", "to run", generated}, store.tableUpdates[0].cells)
		assert.Equal(t, 1, limiter.waits)

		require.Len(t, cards, 1)
		assert.Equal(t, "走る", cards[0].Front)
		assert.Equal(t, "Verbs", cards[0].Tag)
		assert.Contains(t, cards[0].Back, generated)

		assert.Equal(t, 1, stats.Pages)
		assert.Equal(t, 1, stats.Rows)
		assert.Equal(t, 1, stats.Generated)
		assert.Equal(t, 1, stats.Updated)
		assert.Equal(t, 0, stats.Skipped)
		assert.NotEmpty(t, stats.RunID)
	})

	t.Run("populated rows are skipped but still exported", func(t *testing.T) {
		store := vocabStore(0)
		store.children["table-1"] = []domain.Container{
			tableRow("row-h", "Word", "Romaji", "Meaning", "Example"),
			tableRow("row-1", "走る", "hashiru", "to run", generated),
		}
		gen := &mockGenerator{output: generated}
		limiter := &countLimiter{}

		cards, stats, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{})
		require.NoError(t, err)

		assert.Empty(t, gen.generated)
		assert.Empty(t, store.tableUpdates)
		assert.Zero(t, limiter.waits)
		assert.Equal(t, 1, stats.Skipped)
		require.Len(t, cards, 1)
		assert.Contains(t, cards[0].Back, generated)
	})

	t.Run("force regenerates populated rows", func(t *testing.T) {
		store := vocabStore(0)
		store.children["table-1"] = []domain.Container{
			tableRow("row-h", "Word", "Romaji", "Meaning", "Example"),
			tableRow("row-1", "走る", "hashiru", "to run", "古い例。\nfurui rei.\n(old example)"),
		}
		gen := &mockGenerator{output: generated}
		limiter := &countLimiter{}

		_, stats, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{Force: true})
		require.NoError(t, err)

		assert.Len(t, gen.generated, 1)
		require.Len(t, store.tableUpdates, 1)
		assert.Equal(t, generated, store.tableUpdates[0].cells[3])
		assert.Equal(t, 1, stats.Generated)
	})

	t.Run("cursor boundaries do not change the outcome", func(t *testing.T) {
		store := vocabStore(1)
		gen := &mockGenerator{output: generated}
		limiter := &countLimiter{}

		cards, stats, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{})
		require.NoError(t, err)

		assert.Len(t, gen.generated, 1)
		assert.Len(t, store.tableUpdates, 1)
		require.Len(t, cards, 1)
		assert.Equal(t, 1, stats.Rows)
	})

	t.Run("malformed generation leaves the row untouched", func(t *testing.T) {
		store := vocabStore(0)
		gen := &mockGenerator{output: "Here you go!"}
		limiter := &countLimiter{}

		cards, stats, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{})
		require.NoError(t, err)

		assert.Len(t, gen.generated, 1)
		assert.Empty(t, store.tableUpdates)
		assert.Zero(t, limiter.waits)
		assert.Equal(t, 1, stats.Generated)
		assert.Equal(t, 0, stats.Updated)
		require.Len(t, cards, 1)
		assert.NotContains(t, cards[0].Back, "Here you go!")
	})

	t.Run("traversal failure aborts the run", func(t *testing.T) {
		store := vocabStore(0)
		store.listErr = errors.New("store down")

		cards, _, err := newAggregator(store, &mockGenerator{}, &countLimiter{}).Run(ctx, RunOptions{})
		require.Error(t, err)
		assert.Nil(t, cards)
	})

	t.Run("database source reads structured records", func(t *testing.T) {
		store := &mockStore{
			children: map[string][]domain.Container{
				"parent": {
					{ID: "page-verbs", Kind: domain.KindPage, Title: "Verbs"},
				},
				"page-verbs": {
					{ID: "db-1", Kind: domain.KindCollection},
				},
			},
			collections: map[string]string{"db-1": "ds-1"},
			records: map[string][]domain.Record{
				"ds-1": {
					{ID: "rec-1", Fields: map[string]string{
						"Kanji": "走る", "Romaji": "hashiru", "Meaning": "to run",
					}},
				},
			},
		}
		gen := &mockGenerator{output: generated}
		limiter := &countLimiter{}

		cards, _, err := newAggregator(store, gen, limiter).Run(ctx, RunOptions{Source: SourceDatabases})
		require.NoError(t, err)

		require.Len(t, store.recordUpdates, 1)
		assert.Equal(t, recordUpdate{recordID: "rec-1", field: "Example", value: generated}, store.recordUpdates[0])
		require.Len(t, cards, 1)
		assert.Equal(t, "走る", cards[0].Front)
	})
}
