package llm

import (
	"fmt"
	"os/exec"
)

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string // Model identifier (e.g., "claude-opus-4-5-20251101")
	Name        string // Human-readable name (e.g., "Claude Opus 4.5")
	Description string // Brief description
	Provider    string // Provider name (e.g., "anthropic", "openai")
}

// claudeModels lists Claude models usable through the CLI and the API.
var claudeModels = []ModelInfo{
	// Latest 4.5 models
	{ID: "claude-opus-4-5-20251101", Name: "Claude Opus 4.5", Description: "Premium model, maximum intelligence ($5/$25 per MTok)", Provider: "anthropic"},
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Best balance of speed and capability ($3/$15 per MTok)", Provider: "anthropic"},
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, most cost-effective ($1/$5 per MTok)", Provider: "anthropic"},
	// Legacy models
	{ID: "claude-opus-4-1-20250805", Name: "Claude Opus 4.1", Description: "Previous premium model ($15/$75 per MTok)", Provider: "anthropic"},
	{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", Description: "Previous balanced model ($3/$15 per MTok)", Provider: "anthropic"},
	{ID: "claude-opus-4-20250514", Name: "Claude Opus 4", Description: "Legacy premium ($15/$75 per MTok)", Provider: "anthropic"},
	{ID: "claude-3-7-sonnet-20250219", Name: "Claude 3.7 Sonnet", Description: "Legacy fast model ($3/$15 per MTok)", Provider: "anthropic"},
	{ID: "claude-3-haiku-20240307", Name: "Claude 3 Haiku", Description: "Legacy budget model ($0.25/$1.25 per MTok)", Provider: "anthropic"},
}

// codexModels lists Codex/OpenAI models available via CLI.
var codexModels = []ModelInfo{
	{ID: "o3", Name: "O3", Description: "Most capable reasoning model", Provider: "openai"},
	{ID: "o3-mini", Name: "O3 Mini", Description: "Fast reasoning model", Provider: "openai"},
	{ID: "o1", Name: "O1", Description: "Advanced reasoning", Provider: "openai"},
	{ID: "o1-mini", Name: "O1 Mini", Description: "Efficient reasoning", Provider: "openai"},
	{ID: "gpt-4o", Name: "GPT-4o", Description: "Fast multimodal model", Provider: "openai"},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Most cost-effective", Provider: "openai"},
}

// AvailableModels returns models grouped by provider based on available CLIs.
func AvailableModels() map[string][]ModelInfo {
	result := make(map[string][]ModelInfo)

	// Check for Claude CLI
	if _, err := exec.LookPath("claude"); err == nil {
		result["anthropic"] = claudeModels
	}

	// Check for Codex CLI
	if _, err := exec.LookPath("codex"); err == nil {
		result["openai"] = codexModels
	}

	return result
}

// AllModels returns a flat list of all available models.
func AllModels() []ModelInfo {
	available := AvailableModels()
	var result []ModelInfo

	// Add Claude models first (preferred)
	if models, ok := available["anthropic"]; ok {
		result = append(result, models...)
	}

	// Add OpenAI models
	if models, ok := available["openai"]; ok {
		result = append(result, models...)
	}

	return result
}

// FindModel returns the catalogue entry for id.
func FindModel(id string) (ModelInfo, bool) {
	for _, models := range [][]ModelInfo{claudeModels, codexModels} {
		for _, m := range models {
			if m.ID == id {
				return m, true
			}
		}
	}
	return ModelInfo{}, false
}

// ClaudeModels returns the Claude catalogue regardless of installed CLIs.
func ClaudeModels() []ModelInfo {
	return claudeModels
}

// NewAdapter returns the adapter for provider. "auto" (or "") detects one.
func NewAdapter(provider string, config Config) (Adapter, error) {
	switch provider {
	case "", ProviderAuto:
		return DetectBestAdapter(config)
	case ProviderClaudeCLI:
		return NewClaudeCLIAdapter(config), nil
	case ProviderCodexCLI:
		return NewCodexCLIAdapter(config), nil
	case ProviderAPI:
		adapter, err := NewAnthropicAPIAdapter(config)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}

// DetectBestAdapter finds the best available LLM adapter.
// Priority: Claude CLI > Codex CLI > Anthropic API
func DetectBestAdapter(config Config) (Adapter, error) {
	// Try Claude CLI first (preferred - already authenticated)
	if config.PreferCLI {
		claude := NewClaudeCLIAdapter(config)
		if claude.IsAvailable() {
			return claude, nil
		}

		codex := NewCodexCLIAdapter(config)
		if codex.IsAvailable() {
			return codex, nil
		}
	}

	// Fall back to Anthropic API
	anthropic, err := NewAnthropicAPIAdapter(config)
	if err == nil && anthropic.IsAvailable() {
		return anthropic, nil
	}

	return nil, fmt.Errorf("no LLM adapter available - install Claude Code, Codex, or set ANTHROPIC_API_KEY")
}

// ListAvailableAdapters returns all adapters that could be used.
func ListAvailableAdapters(config Config) []string {
	available := []string{}

	claude := NewClaudeCLIAdapter(config)
	if claude.IsAvailable() {
		available = append(available, ProviderClaudeCLI)
	}

	codex := NewCodexCLIAdapter(config)
	if codex.IsAvailable() {
		available = append(available, ProviderCodexCLI)
	}

	anthropic, _ := NewAnthropicAPIAdapter(config)
	if anthropic != nil && anthropic.IsAvailable() {
		available = append(available, ProviderAPI)
	}

	return available
}
