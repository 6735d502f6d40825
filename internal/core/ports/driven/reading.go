package driven

// ReadingAnalyzer derives the romanised reading of Japanese text.
// The audit pass uses it to flag romaji lines that disagree with the
// script line. Optional: when nil, the romaji check is skipped.
type ReadingAnalyzer interface {
	// Reading returns the Hepburn romanisation of text.
	Reading(text string) (string, error)
}
