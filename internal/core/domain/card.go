package domain

import "regexp"

// BackSeparator joins the labelled fields of a card back. The flashcard
// sink renders it as a line break.
const BackSeparator = "<br>"

// Card is one export record destined for the flat tabular sink.
type Card struct {
	Front string
	Back  string
	Tag   string
}

var tagWhitespace = regexp.MustCompile(`\s+`)

// PageTag normalises a page title into an export tag by collapsing
// whitespace runs to underscores.
func PageTag(title string) string {
	return tagWhitespace.ReplaceAllString(title, "_")
}
