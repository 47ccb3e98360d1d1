package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dhabedank/vibedoc/internal/content"
)

// TextGenerator is the interface for LLM providers used by the planner.
// This matches llm.Adapter but is defined here to avoid import cycles.
type TextGenerator interface {
	// Name returns the adapter identifier for logging.
	Name() string

	// Generate sends prompts to the LLM and returns its raw text answer.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// PlanRequest is one generation request.
type PlanRequest struct {
	Idea         string `json:"idea"`
	ReferenceURL string `json:"reference_url,omitempty"`

	// Knowledge is reference material injected into the user prompt.
	Knowledge string `json:"knowledge,omitempty"`
}

// Plan is a generated, formatted and repaired development plan.
type Plan struct {
	Idea          string              `json:"idea"`
	ReferenceURL  string              `json:"reference_url,omitempty"`
	Content       string              `json:"content"`
	Prompts       string              `json:"prompts"`
	Model         string              `json:"model"`
	Provider      string              `json:"provider"`
	GeneratedAt   time.Time           `json:"generated_at"`
	QualityBefore int                 `json:"quality_before"`
	QualityAfter  int                 `json:"quality_after"`
	Fixes         []content.FixRecord `json:"fixes"`
}

// AppliedFixes returns the names of the repairs that changed the plan.
func (p *Plan) AppliedFixes() []string {
	return content.Report{Fixes: p.Fixes}.Applied()
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
