// Package llm provides the prompt framing shared by all generation
// backends. The instructions vary by mode (sentence complexity and
// density) and style (register); format and length constraints are
// fixed so every backend is held to the same output grammar.
package llm

import (
	"fmt"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

// Default script-line length bounds, in Japanese characters.
const (
	DefaultMinLength = 24
	DefaultMaxLength = 50
)

// Instructions bundles the system and user messages for one exchange.
type Instructions struct {
	System string
	User   string
}

// Generation builds the instructions for an example-generation
// exchange. minLen/maxLen bound the Japanese script line.
func Generation(req domain.GenerationRequest, minLen, maxLen int) Instructions {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	var level string
	switch req.Mode {
	case domain.ModeHard:
		level = "STYLE: Advanced N4/N3 Dokkai. Use sophisticated structures and high information density."
	case domain.ModeEasy:
		level = "STYLE: Easy/Natural N4. Use common everyday structures and keep it simple (but not so easy) and clear, but still natural Japanese."
	default:
		level = "STYLE: Standard N4 Dokkai. Use clear conjunctions and sounds like a textbook reading passage."
	}

	var tone string
	if req.Style == domain.StyleConversational {
		tone = "TONE: Conversational. Use natural spoken Japanese (e.g., short forms like ~てる, ~なきゃ if applicable). It should feel like an actual dialogue."
	} else {
		tone = "TONE: Descriptive/Formal. Use academic or news-style structures (e.g., ~と言われている). It should feel like written text."
	}

	system := fmt.Sprintf(`You are a Japanese linguistic expert for JLPT study materials.

REFERENCE: Word: %q (%s), Meaning: %q.

TASK:
1. TRANSFORM: Convert simple sentences into high-density Dokkai (reading) snippets.
2. %s
3. %s
4. LANGUAGE: You can use English or Indonesian to translate the example. Each example is translated once. If you have translated to English, don't translate it again to Indonesian.
5. ANTI-SIMPLICITY: Avoid "A is B" or simple "I do X" sentences. Use relative clauses and conjunctions.
6. LENGTH: Strictly %d to %d Japanese characters.
7. ANTI-LAZY: No rain/ame (雨) context unless the target word is actually rain.
8. CURATE: Keep exactly 2 unique, high-quality examples if possible.

FORMAT:
- Exactly 3 lines per example:
  [Japanese]
  [romaji]
  ([meaning])
- Separate multiple examples with a blank line.
- There should be no new lines between Japanese-Japanese, romaji-romaji, and meaning-meaning.
- There should be only 1 new line between Japanese to romaji to meaning (no spaces between them).
- Empty line should be applied between examples only.
- NO newline within the sentence.
- NO bold, NO markdown, NO notes, NO chatter.`,
		req.Term, req.Romaji, req.Meaning, level, tone, minLen, maxLen)

	current := req.CurrentExample
	if current == "" {
		current = "EMPTY"
	}

	return Instructions{
		System: system,
		User:   fmt.Sprintf("Input to transform: %q", current),
	}
}

// Curation builds the instructions for a cleanup exchange: dedupe and
// keep the two longest examples without rewording anything.
func Curation(req domain.CurationRequest) Instructions {
	system := fmt.Sprintf(`You are a strict Japanese data editor.

REFERENCE: Word: %q (%s), Meaning: %q.

TASK:
1. DEDUPLICATE: If there are multiple examples with the same Japanese sentence but different translations, KEEP ONLY ONE.
2. LIMIT: If more than 2 unique examples exist, KEEP ONLY the 2 longest ones.
3. FORMAT: Keep the 3-line format for each:
   [Japanese]
   [romaji]
   ([meaning])

STRICT RULES:
- DO NOT fix typos. DO NOT change any text.
- NO bold, NO notes, NO chatter.
- If no changes are needed, return the original text exactly.`,
		req.Term, req.Romaji, req.Meaning)

	return Instructions{
		System: system,
		User:   fmt.Sprintf("Clean this text: %q", req.Example),
	}
}
