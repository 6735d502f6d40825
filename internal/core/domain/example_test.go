package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormed = "食べた。\ntabeta.\n(ate)"

func TestParseExamples(t *testing.T) {
	t.Run("single block", func(t *testing.T) {
		examples, err := ParseExamples(wellFormed)

		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "食べた。", examples[0].Script)
		assert.Equal(t, "tabeta.", examples[0].Romaji)
		assert.Equal(t, "(ate)", examples[0].Meaning)
	})

	t.Run("multiple blocks separated by blank lines", func(t *testing.T) {
		examples, err := ParseExamples(wellFormed + "\n\n走った。\nhashitta.\n(ran)")

		require.NoError(t, err)
		assert.Len(t, examples, 2)
	})

	t.Run("empty value parses to nothing", func(t *testing.T) {
		examples, err := ParseExamples("   \n  ")
		require.NoError(t, err)
		assert.Empty(t, examples)
	})

	t.Run("windows line endings are tolerated", func(t *testing.T) {
		examples, err := ParseExamples("食べた。\r\ntabeta.\r\n(ate)")
		require.NoError(t, err)
		assert.Len(t, examples, 1)
	})

	t.Run("wrong line count is malformed", func(t *testing.T) {
		_, err := ParseExamples("食べた。\ntabeta.")
		assert.ErrorIs(t, err, ErrMalformedExample)
	})

	t.Run("unparenthesised meaning is malformed", func(t *testing.T) {
		_, err := ParseExamples("食べた。\ntabeta.\nate")
		assert.ErrorIs(t, err, ErrMalformedExample)
	})
}

func TestDedupeExamples(t *testing.T) {
	a := Example{Script: "食べた。", Romaji: "tabeta.", Meaning: "(ate)"}
	aIndonesian := Example{Script: "食べた。", Romaji: "tabeta.", Meaning: "(sudah makan)"}
	b := Example{Script: "走った。", Romaji: "hashitta.", Meaning: "(ran)"}

	out := DedupeExamples([]Example{a, aIndonesian, b})

	require.Len(t, out, 2)
	assert.Equal(t, "(ate)", out[0].Meaning)
	assert.Equal(t, b, out[1])
}

func TestCapExamples(t *testing.T) {
	short := Example{Script: "短い。"}
	medium := Example{Script: "もう少し長い文です。"}
	long := Example{Script: "これは三つの中で一番長い例文になっています。"}

	t.Run("drops the shortest first, preserving order", func(t *testing.T) {
		out := CapExamples([]Example{short, long, medium}, 2)

		require.Len(t, out, 2)
		assert.Equal(t, long, out[0])
		assert.Equal(t, medium, out[1])
	})

	t.Run("under the cap is untouched", func(t *testing.T) {
		in := []Example{short, medium}
		assert.Equal(t, in, CapExamples(in, 2))
	})
}

func TestFormatRoundTrip(t *testing.T) {
	in := wellFormed + "\n\n走った。\nhashitta.\n(ran)"

	examples, err := ParseExamples(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatExamples(examples))
}

func TestSanitise(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips emphasis markup", "**食べた。**\ntabeta.\n(ate)", "食べた。\ntabeta.\n(ate)"},
		{"strips leading labels", "Japanese: 食べた。\nRomaji: tabeta.\nMeaning: (ate)", "食べた。\n tabeta.\n (ate)"},
		{"strips numbered line labels", "Line 1: 食べた。", "食べた。"},
		{"strips wrapping quotes", `"食べた。"`, "食べた。"},
		{"trims whitespace", "  食べた。  ", "食べた。"},
		{"labels are case-insensitive", "note: something", ": something"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitise(tt.in))
		})
	}
}

func TestNormaliseGenerated(t *testing.T) {
	t.Run("accepts and reformats a valid result", func(t *testing.T) {
		out, err := NormaliseGenerated("**食べた。**\ntabeta.\n(ate)")

		require.NoError(t, err)
		assert.Equal(t, wellFormed, out)
	})

	t.Run("dedupes and caps to two", func(t *testing.T) {
		in := "長い文がここにあります。\nnagai bun\n(long)\n\n長い文がここにあります。\nnagai bun\n(panjang)\n\n中くらいの長さの文。\nchuukurai\n(medium)\n\n短い。\nmijikai\n(short)"

		out, err := NormaliseGenerated(in)

		require.NoError(t, err)
		examples, err := ParseExamples(out)
		require.NoError(t, err)
		require.Len(t, examples, 2)
		assert.Equal(t, "長い文がここにあります。", examples[0].Script)
		assert.Equal(t, "中くらいの長さの文。", examples[1].Script)
	})

	t.Run("rejects malformed output outright", func(t *testing.T) {
		out, err := NormaliseGenerated("Sure, here it is: a sentence")

		assert.ErrorIs(t, err, ErrMalformedExample)
		assert.Empty(t, out)
	})

	t.Run("empty output is no update, not an error", func(t *testing.T) {
		out, err := NormaliseGenerated("   ")

		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
