package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dhabedank/vibedoc/internal/content"
)

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("model returned an empty response")

// Planner turns an idea into a formatted, repaired plan.
type Planner struct {
	generator TextGenerator
	pipeline  *content.Pipeline
	model     string
	now       func() time.Time
	logger    *zap.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithPlannerLogger sets the planner logger.
func WithPlannerLogger(logger *zap.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithPlannerClock sets the clock for prompts, metadata and date repair.
func WithPlannerClock(now func() time.Time) PlannerOption {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPlanner creates a planner. model is recorded in the plan metadata.
func NewPlanner(generator TextGenerator, model string, opts ...PlannerOption) *Planner {
	p := &Planner{
		generator: generator,
		model:     model,
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pipeline = content.NewPipeline(content.WithLogger(p.logger), content.WithClock(p.now))
	return p
}

// Generate validates the request, calls the model and post-processes the answer.
func (p *Planner) Generate(ctx context.Context, req PlanRequest) (*Plan, error) {
	if err := ValidateIdea(req); err != nil {
		return nil, err
	}

	now := p.now()
	systemPrompt := BuildSystemPrompt(now)
	userPrompt := BuildUserPrompt(req.Idea, req.Knowledge)

	p.logger.Info("generating plan",
		zap.String("provider", p.generator.Name()),
		zap.String("model", p.model),
		zap.Int("idea_length", len(req.Idea)),
	)

	raw, err := p.generator.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResponse
	}

	formatted := FormatResponse(raw, Meta{
		GeneratedAt: now,
		Model:       p.model,
		Provider:    p.generator.Name(),
	})
	repaired, report := p.pipeline.Process(formatted)

	return &Plan{
		Idea:          strings.TrimSpace(req.Idea),
		ReferenceURL:  req.ReferenceURL,
		Content:       repaired,
		Prompts:       ExtractPrompts(repaired),
		Model:         p.model,
		Provider:      p.generator.Name(),
		GeneratedAt:   now,
		QualityBefore: report.QualityBefore,
		QualityAfter:  report.QualityAfter,
		Fixes:         report.Fixes,
	}, nil
}
