package llm

import (
	"context"
)

// Adapter is the interface all LLM adapters must implement.
type Adapter interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// IsAvailable checks if this adapter can be used (CLI installed, API key set, etc.)
	IsAvailable() bool

	// Generate sends prompts to the LLM and returns its text answer.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ModelOf returns the model an adapter calls, or "" when it does not say.
func ModelOf(a Adapter) string {
	if m, ok := a.(interface{ Model() string }); ok {
		return m.Model()
	}
	return ""
}

// Provider names accepted by NewAdapter.
const (
	ProviderAuto      = "auto"
	ProviderClaudeCLI = "claude-cli"
	ProviderCodexCLI  = "codex-cli"
	ProviderAPI       = "anthropic-api"
)

// Providers lists every accepted provider name.
var Providers = []string{ProviderAuto, ProviderClaudeCLI, ProviderCodexCLI, ProviderAPI}

const (
	DefaultModel     = "claude-sonnet-4-5-20250929"
	DefaultMaxTokens = 8192
)

// Config holds configuration for LLM adapters.
type Config struct {
	// PreferCLI prefers CLI tools (claude, codex) over API when available.
	PreferCLI bool

	// Model specifies which model to use (optional, adapter chooses default).
	Model string

	// APIKey for direct API access (optional if CLI is used).
	APIKey string

	// MaxTokens limits response length.
	MaxTokens int

	// Temperature is passed to the API adapter. Nil leaves the API default.
	Temperature *float64
}

// WithModel returns a copy of c using model when it is set.
func (c Config) WithModel(model string) Config {
	if model != "" {
		c.Model = model
	}
	return c
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PreferCLI: true, // Use CLI tools when available (already authenticated)
		MaxTokens: DefaultMaxTokens,
	}
}
