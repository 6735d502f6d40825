package cli

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/llm/gemini"
	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/llm/mistral"
	"github.com/kotoba-labs/reibun-cli/internal/adapters/driven/notion"
	"github.com/kotoba-labs/reibun-cli/internal/core/ports/driven"
	"github.com/kotoba-labs/reibun-cli/internal/core/services"
)

// buildStore constructs the Notion content-store client from config.
func buildStore() (*notion.Client, error) {
	return notion.NewClient(notion.Config{
		Token:             cfg.Notion.Token,
		Version:           cfg.Notion.Version,
		RequestsPerSecond: cfg.Notion.RequestsPerSecond,
	})
}

// buildGenerator constructs the configured generation backend.
func buildGenerator(ctx context.Context) (driven.ExampleGenerator, error) {
	gen := cfg.Generation
	switch gen.Backend {
	case "gemini":
		return gemini.NewGenerator(ctx, gemini.Config{
			APIKey:    gen.GeminiAPIKey,
			Model:     gen.Model,
			MinLength: gen.MinLength,
			MaxLength: gen.MaxLength,
		})
	case "mistral", "":
		return mistral.NewGenerator(mistral.Config{
			APIKey:    gen.MistralAPIKey,
			Model:     gen.Model,
			MinLength: gen.MinLength,
			MaxLength: gen.MaxLength,
		})
	default:
		return nil, fmt.Errorf("unknown generation backend %q", gen.Backend)
	}
}

// notesFilter returns the reserved-page filter from config.
func notesFilter() services.NotesFilter {
	return services.NotesFilter{
		Title: cfg.Pipeline.NotesTitle,
		Fold:  cfg.Pipeline.NotesFold,
	}
}

// writeLimiter paces write-backs per the configured delay. A zero or
// negative delay disables pacing.
func writeLimiter() driven.Limiter {
	delay := cfg.Pipeline.WriteDelaySeconds
	if delay <= 0 {
		return driven.NopLimiter{}
	}
	interval := time.Duration(delay * float64(time.Second))
	return rate.NewLimiter(rate.Every(interval), 1)
}

// sourceKind parses the --source flag.
func sourceKind(s string) (services.SourceKind, error) {
	switch s {
	case "tables", "":
		return services.SourceTables, nil
	case "databases":
		return services.SourceDatabases, nil
	default:
		return "", fmt.Errorf("unknown source %q (want tables or databases)", s)
	}
}
