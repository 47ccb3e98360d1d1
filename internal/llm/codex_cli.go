package llm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CodexCLIAdapter uses the Codex CLI for generation.
type CodexCLIAdapter struct {
	model string
}

// NewCodexCLIAdapter creates a Codex CLI adapter.
func NewCodexCLIAdapter(config Config) *CodexCLIAdapter {
	model := config.Model
	if model == "" || strings.HasPrefix(model, "claude") {
		model = "o3" // Default to o3 for best reasoning
	}
	return &CodexCLIAdapter{model: model}
}

func (a *CodexCLIAdapter) Name() string {
	return ProviderCodexCLI
}

// IsAvailable checks if the codex CLI is installed.
func (a *CodexCLIAdapter) IsAvailable() bool {
	_, err := exec.LookPath("codex")
	return err == nil
}

// Model returns the model passed to the CLI.
func (a *CodexCLIAdapter) Model() string {
	return a.model
}

// CombinePrompts merges system and user prompts for CLIs without a
// separate system prompt option.
func CombinePrompts(systemPrompt, userPrompt string) string {
	return fmt.Sprintf("SYSTEM INSTRUCTIONS:\n%s\n\nUSER REQUEST:\n%s", systemPrompt, userPrompt)
}

func (a *CodexCLIAdapter) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "codex",
		"--model", a.model,
		"--quiet", // Less verbose output
	)
	cmd.Stdin = strings.NewReader(CombinePrompts(systemPrompt, userPrompt))

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("codex CLI failed: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("codex CLI failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}
