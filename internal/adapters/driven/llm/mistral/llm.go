// Package mistral provides an example generator using the Mistral
// chat-completions API.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/llm"
	"github.com/kotoba-labs/reibun-cli/internal/core/domain"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
)

// Ensure Generator implements the interface.
var _ driven.ExampleGenerator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.mistral.ai"
	DefaultModel   = "mistral-medium-latest"
	DefaultTimeout = 120 * time.Second

	// generationTemperature is slightly raised for varied vocabulary;
	// curation runs colder since it must not reword anything.
	generationTemperature = 0.4
	curationTemperature   = 0.0
)

// Config holds configuration for the Mistral generator.
type Config struct {
	// APIKey is the Mistral API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.mistral.ai).
	BaseURL string

	// Model is the model to use (default: mistral-medium-latest).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// MinLength/MaxLength bound the generated script line.
	MinLength int
	MaxLength int
}

// Generator provides example generation using the Mistral API.
type Generator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	minLen  int
	maxLen  int
}

// chatRequest is the /v1/chat/completions request format.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the /v1/chat/completions response format.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Message string `json:"message,omitempty"`
}

// NewGenerator creates a new Mistral generator.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Generator{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		minLen:  cfg.MinLength,
		maxLen:  cfg.MaxLength,
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

func (g *Generator) complete(ctx context.Context, ins llm.Instructions, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: ins.System},
			{Role: "user", Content: ins.User},
		},
		Temperature: temperature,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.baseURL+"/v1/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if chatResp.Message != "" {
			return "", fmt.Errorf("mistral error (status %d): %s", resp.StatusCode, chatResp.Message)
		}
		return "", fmt.Errorf("mistral error (status %d): %s", resp.StatusCode, string(body))
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("mistral: no choices returned")
	}

	return chatResp.Choices[0].Message.Content, nil
}
