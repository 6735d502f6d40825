// Package file loads reibun configuration from a TOML file, with
// environment-variable overrides for credentials.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultDirName is the configuration directory under the home dir.
const DefaultDirName = ".reibun"

// DefaultFileName is the configuration file name.
const DefaultFileName = "config.toml"

// Config holds every tunable of the reibun pipeline.
type Config struct {
	Notion     NotionConfig     `toml:"notion"`
	Generation GenerationConfig `toml:"generation"`
	Pipeline   PipelineConfig   `toml:"pipeline"`
}

// NotionConfig configures the content-store client.
type NotionConfig struct {
	Token             string  `toml:"token"`
	ParentPageID      string  `toml:"parent_page_id"`
	Version           string  `toml:"version"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// GenerationConfig configures the text-generation backend.
type GenerationConfig struct {
	// Backend selects the generation service: "mistral" or "gemini".
	Backend string `toml:"backend"`

	MistralAPIKey string `toml:"mistral_api_key"`
	GeminiAPIKey  string `toml:"gemini_api_key"`

	// Model overrides the backend's default model.
	Model string `toml:"model"`

	// MinLength/MaxLength bound the generated script line, in
	// Japanese characters.
	MinLength int `toml:"min_length"`
	MaxLength int `toml:"max_length"`

	// StyleThreshold is the formal/conversational split point.
	// Both 0.4 and 0.5 are in active use; 0.5 is the default.
	StyleThreshold float64 `toml:"style_threshold"`
}

// PipelineConfig configures traversal and export behaviour.
type PipelineConfig struct {
	// NotesTitle is the reserved page title excluded from every pass.
	NotesTitle string `toml:"notes_title"`

	// NotesFold selects case-insensitive matching of NotesTitle.
	NotesFold bool `toml:"notes_fold"`

	// WriteDelaySeconds paces successful write-backs.
	WriteDelaySeconds float64 `toml:"write_delay_seconds"`

	// Output is the CSV export path.
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Notion: NotionConfig{
			RequestsPerSecond: 3.0,
		},
		Generation: GenerationConfig{
			Backend:        "mistral",
			MinLength:      24,
			MaxLength:      50,
			StyleThreshold: 0.5,
		},
		Pipeline: PipelineConfig{
			NotesTitle:        "notes",
			WriteDelaySeconds: 1.0,
			Output:            "notion_to_anki.csv",
		},
	}
}

// DefaultPath returns ~/.reibun/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, DefaultFileName), nil
}

// Load reads the configuration at path, layering it over the defaults
// and applying environment overrides. A missing file is not an error:
// the defaults plus environment are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Fall through to environment overrides.
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets credentials and the target container come from the
// environment, taking precedence over the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("NOTION_API_KEY"); v != "" {
		cfg.Notion.Token = v
	}
	if v := os.Getenv("NOTION_PAGE_ID"); v != "" {
		cfg.Notion.ParentPageID = v
	}
	if v := os.Getenv("MISTRAL_API_KEY"); v != "" {
		cfg.Generation.MistralAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Generation.GeminiAPIKey = v
	}
}

// Validate checks the configuration is sufficient to run the pipeline.
func (c Config) Validate() error {
	if c.Notion.Token == "" {
		return errors.New("notion token is required (config notion.token or NOTION_API_KEY)")
	}
	if c.Notion.ParentPageID == "" {
		return errors.New("parent page ID is required (config notion.parent_page_id or NOTION_PAGE_ID)")
	}
	switch c.Generation.Backend {
	case "mistral", "gemini":
	default:
		return fmt.Errorf("unknown generation backend %q", c.Generation.Backend)
	}
	return nil
}
