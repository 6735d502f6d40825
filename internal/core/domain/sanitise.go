package domain

import (
	"regexp"
	"strings"
)

// MaxExamples caps how many examples one field may hold.
const MaxExamples = 2

// labelPrefix matches leading label tokens that generation backends
// sometimes prepend despite instructions.
var labelPrefix = regexp.MustCompile(`(?im)^(Note|Level|Character|Commentary|Explanation|Fixed|Corrected|Line \d+:|Japanese:|Romaji:|Meaning:)`)

// Sanitise strips generation artifacts from raw backend output:
// emphasis markup, leading label tokens, wrapping quotes, whitespace.
// It is applied identically regardless of backend.
func Sanitise(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "*", "")
	s = labelPrefix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

// NormaliseGenerated applies the full acceptance path to raw backend
// output: sanitise, parse under the three-line grammar, dedupe by
// script line and cap at MaxExamples. A malformed result is rejected
// outright so a partially valid value is never written back.
func NormaliseGenerated(raw string) (string, error) {
	s := Sanitise(raw)
	if s == "" {
		return "", nil
	}
	examples, err := ParseExamples(s)
	if err != nil {
		return "", err
	}
	examples = CapExamples(DedupeExamples(examples), MaxExamples)
	return FormatExamples(examples), nil
}
