package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowEligible(t *testing.T) {
	assert.True(t, Row{Kanji: "食べる"}.Eligible())
	assert.False(t, Row{Romaji: "taberu"}.Eligible())
}

func TestRowBack(t *testing.T) {
	t.Run("table rows label cells with their headers", func(t *testing.T) {
		row := Row{
			Source:  SourceTable,
			Headers: []string{"Word", "Romaji", "Example"},
			Cells:   []string{"食べる", "taberu", "食べた。\ntabeta.\n(ate)"},
		}

		assert.Equal(t, "Word: 食べる<br>Romaji: taberu<br>Example: 食べた。\ntabeta.\n(ate)", row.Back())
	})

	t.Run("extra cells beyond the header get empty labels", func(t *testing.T) {
		row := Row{
			Source:  SourceTable,
			Headers: []string{"Word"},
			Cells:   []string{"食べる", "stray"},
		}

		assert.Equal(t, "Word: 食べる<br>: stray", row.Back())
	})

	t.Run("database rows use the conventional field order", func(t *testing.T) {
		row := Row{
			Source:  SourceDatabase,
			Kanji:   "食べる",
			Romaji:  "taberu",
			Meaning: "to eat",
			Example: "食べた。\ntabeta.\n(ate)",
		}

		assert.Equal(t, "Kanji: 食べる<br>Romaji: taberu<br>Meaning: to eat<br>Example: 食べた。\ntabeta.\n(ate)", row.Back())
	})
}

func TestPageTag(t *testing.T) {
	assert.Equal(t, "N4_Verbs", PageTag("N4 Verbs"))
	assert.Equal(t, "a_b_c", PageTag("a \t b\nc"))
	assert.Equal(t, "Verbs", PageTag("Verbs"))
}
