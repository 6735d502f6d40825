package driven

import (
	"context"

	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
)

// ExampleGenerator is the boundary to the external text-generation
// service. Implementations frame the request per backend; the raw
// response is sanitised by core, not here.
//
// Implementations may include:
//   - Mistral (chat completions)
//   - Gemini (Google GenAI)
type ExampleGenerator interface {
	// GenerateExample produces candidate example text for a vocabulary
	// row under the requested mode and style.
	GenerateExample(ctx context.Context, req domain.GenerationRequest) (string, error)

	// CurateExamples cleans an existing example field: deduplication
	// and keep-two-longest, without rewording.
	CurateExamples(ctx context.Context, req domain.CurationRequest) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string
}
