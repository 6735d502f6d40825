package domain

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Example is one parsed usage example under the three-line grammar:
// a Japanese script line, a romaji line, and a parenthesised meaning line.
type Example struct {
	Script  string
	Romaji  string
	Meaning string
}

// ParseExamples splits a field value into three-line example blocks.
// Blocks are separated by blank lines. Returns ErrMalformedExample when
// the value does not follow the grammar; an empty value parses to nil.
func ParseExamples(s string) ([]Example, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil, nil
	}

	var examples []Example
	for _, block := range splitBlocks(s) {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			return nil, fmt.Errorf("%w: block has %d lines", ErrMalformedExample, len(lines))
		}
		ex := Example{
			Script:  strings.TrimSpace(lines[0]),
			Romaji:  strings.TrimSpace(lines[1]),
			Meaning: strings.TrimSpace(lines[2]),
		}
		if ex.Script == "" || ex.Romaji == "" {
			return nil, fmt.Errorf("%w: empty script or romaji line", ErrMalformedExample)
		}
		if !strings.HasPrefix(ex.Meaning, "(") || !strings.HasSuffix(ex.Meaning, ")") {
			return nil, fmt.Errorf("%w: meaning line not parenthesised", ErrMalformedExample)
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// splitBlocks separates a value into blank-line delimited blocks.
func splitBlocks(s string) []string {
	var blocks []string
	var current []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

// FormatExamples renders examples back to the stored field form:
// three lines per example, blank line between examples.
func FormatExamples(examples []Example) string {
	blocks := make([]string, len(examples))
	for i, ex := range examples {
		blocks[i] = ex.Script + "\n" + ex.Romaji + "\n" + ex.Meaning
	}
	return strings.Join(blocks, "\n\n")
}

// DedupeExamples removes examples sharing the same script line,
// keeping the first occurrence. Order is preserved.
func DedupeExamples(examples []Example) []Example {
	seen := make(map[string]bool, len(examples))
	out := examples[:0:0]
	for _, ex := range examples {
		if seen[ex.Script] {
			continue
		}
		seen[ex.Script] = true
		out = append(out, ex)
	}
	return out
}

// CapExamples keeps at most max examples by removing the shortest
// script lines first. Relative order of survivors is preserved.
func CapExamples(examples []Example, max int) []Example {
	if len(examples) <= max {
		return examples
	}

	type ranked struct {
		pos int
		ex  Example
	}
	byLength := make([]ranked, len(examples))
	for i, ex := range examples {
		byLength[i] = ranked{pos: i, ex: ex}
	}
	sort.SliceStable(byLength, func(i, j int) bool {
		return utf8.RuneCountInString(byLength[i].ex.Script) > utf8.RuneCountInString(byLength[j].ex.Script)
	})

	kept := byLength[:max]
	sort.Slice(kept, func(i, j int) bool { return kept[i].pos < kept[j].pos })

	out := make([]Example, max)
	for i, r := range kept {
		out[i] = r.ex
	}
	return out
}
