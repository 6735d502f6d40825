package services

import (
	"math/rand"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

// Mode split: 8% hard, 10% easy, 82% standard.
const (
	hardBelow = 0.08
	easyBelow = 0.18
)

// DefaultStyleThreshold is the formal/conversational split point.
// Values drawn below it select the formal style.
const DefaultStyleThreshold = 0.5

// Decision is the policy outcome for one row.
type Decision struct {
	// Generate is false for the idempotent skip.
	Generate bool

	Mode  domain.Mode
	Style domain.Style
}

// Policy decides per row whether example generation is needed and
// which mode/style variant to request. The randomised style keeps a
// large corpus from sounding monotonous while the distribution stays
// fixed and testable.
type Policy struct {
	rng            *rand.Rand
	styleThreshold float64
}

// NewPolicy creates a policy drawing from src. A non-positive
// styleThreshold falls back to DefaultStyleThreshold.
func NewPolicy(src rand.Source, styleThreshold float64) *Policy {
	if styleThreshold <= 0 {
		styleThreshold = DefaultStyleThreshold
	}
	return &Policy{
		rng:            rand.New(src),
		styleThreshold: styleThreshold,
	}
}

// Decide returns the enrichment decision for row. A row whose example
// is already populated is skipped unless force is set: re-running the
// pipeline must not regenerate populated rows.
func (p *Policy) Decide(row domain.Row, force bool) Decision {
	if row.Example != "" && !force {
		return Decision{}
	}

	randMode := p.rng.Float64()
	randStyle := p.rng.Float64()

	mode := domain.ModeStandard
	switch {
	case randMode < hardBelow:
		mode = domain.ModeHard
	case randMode < easyBelow:
		mode = domain.ModeEasy
	}

	style := domain.StyleConversational
	if randStyle < p.styleThreshold {
		style = domain.StyleFormal
	}

	return Decision{Generate: true, Mode: mode, Style: style}
}
