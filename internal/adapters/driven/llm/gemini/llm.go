// Package gemini provides an example generator using the Google
// GenAI API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/llm"
	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.ExampleGenerator = (*Generator)(nil)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash-lite"

const (
	generationTemperature float32 = 0.4
	curationTemperature   float32 = 0.0
)

// Config holds configuration for the Gemini generator.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// Model is the model to use (default: gemini-2.0-flash-lite).
	Model string

	// MinLength/MaxLength bound the generated script line.
	MinLength int
	MaxLength int
}

// Generator provides example generation using the Google GenAI SDK.
type Generator struct {
	client *genai.Client
	model  string
	minLen int
	maxLen int
}

// NewGenerator creates a new Gemini generator.
func NewGenerator(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.Model,
		minLen: cfg.MinLength,
		maxLen: cfg.MaxLength,
	}, nil
}

// GenerateExample produces candidate example text for one row.
func (g *Generator) GenerateExample(ctx context.Context, req domain.GenerationRequest) (string, error) {
	ins := llm.Generation(req, g.minLen, g.maxLen)
	return g.complete(ctx, ins, generationTemperature)
}

// CurateExamples runs the cleanup prompt over an existing field.
func (g *Generator) CurateExamples(ctx context.Context, req domain.CurationRequest) (string, error) {
	ins := llm.Curation(req)
	return g.complete(ctx, ins, curationTemperature)
}

// ModelName returns the model being used.
func (g *Generator) ModelName() string {
	return g.model
}

func (g *Generator) complete(ctx context.Context, ins llm.Instructions, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(ins.System, genai.RoleUser),
		Temperature:       genai.Ptr(temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(ins.User), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
