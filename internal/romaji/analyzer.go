package romaji

import (
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// Ensure Analyzer implements the interface.
var _ driven.ReadingAnalyzer = (*Analyzer)(nil)

// readingFeature is the IPA dictionary feature index of the katakana
// reading.
const readingFeature = 7

// Analyzer derives readings through morphological analysis.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer creates an analyzer over the bundled IPA dictionary.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Reading returns the Hepburn romanisation of text, token by token.
// Punctuation and tokens without a dictionary reading contribute their
// surface form, so downstream comparison should fold the result.
func (a *Analyzer) Reading(text string) (string, error) {
	var parts []string
	pending := ""
	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY || strings.TrimSpace(token.Surface) == "" {
			continue
		}

		features := token.Features()
		kana := ""
		if len(features) > readingFeature && features[readingFeature] != "*" {
			kana = features[readingFeature]
		}
		if kana == "" {
			pending = ""
			if isPunct(token.Surface) {
				continue
			}
			parts = append(parts, token.Surface)
			continue
		}

		// A token-final sokuon doubles the first consonant of the next
		// token, so carry it over instead of dropping it.
		kana = pending + kana
		pending = ""
		if rest, ok := strings.CutSuffix(kana, "ッ"); ok {
			pending = "ッ"
			kana = rest
		}
		if kana == "" {
			continue
		}
		parts = append(parts, FromKatakana(kana))
	}
	return strings.Join(parts, " "), nil
}

func isPunct(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
