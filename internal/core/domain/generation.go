package domain

// Mode is the difficulty tier requested from the generation backend.
// It controls sentence complexity and information density.
type Mode string

const (
	ModeHard     Mode = "hard"
	ModeEasy     Mode = "easy"
	ModeStandard Mode = "standard"
)

// Style is the register tier requested from the generation backend.
type Style string

const (
	StyleFormal         Style = "formal"
	StyleConversational Style = "conversational"
)

// GenerationRequest frames one example-generation exchange.
type GenerationRequest struct {
	// Term is the headword the example must use.
	Term string

	Romaji  string
	Meaning string

	// CurrentExample is the existing field value, possibly empty.
	// The backend transforms it rather than starting blind.
	CurrentExample string

	Mode  Mode
	Style Style
}

// CurationRequest frames one cleanup exchange over a populated
// example field: deduplication and keep-two-longest, no rewording.
type CurationRequest struct {
	Term    string
	Romaji  string
	Meaning string
	Example string
}
