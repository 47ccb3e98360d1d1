package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records the prompts it receives and returns a canned answer.
type fakeGenerator struct {
	output string
	err    error
	calls  int

	systemPrompt string
	userPrompt   string
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	return f.output, f.err
}

func plannerClock() time.Time {
	return time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC)
}

const rawPlan = "Product Overview\n" +
	"Launch on 2022-03-01. See https://example.com.\n" +
	"\n" +
	"```mermaid\ngraph TD\nA-->B\n```\n" +
	"# AI Programming Assistant Prompts\n" +
	"\n" +
	"## API Development Prompt\n" +
	"```\nPlease develop the API.\n```"

func TestPlannerGenerate(t *testing.T) {
	gen := &fakeGenerator{output: rawPlan}
	planner := NewPlanner(gen, "test-model", WithPlannerClock(plannerClock))

	plan, err := planner.Generate(context.Background(), PlanRequest{
		Idea:      "  A recipe planner for busy parents  ",
		Knowledge: "Prefer PostgreSQL.",
	})
	require.NoError(t, err)

	assert.Equal(t, "A recipe planner for busy parents", plan.Idea)
	assert.Equal(t, "test-model", plan.Model)
	assert.Equal(t, "fake", plan.Provider)
	assert.Equal(t, plannerClock(), plan.GeneratedAt)

	assert.True(t, strings.HasPrefix(plan.Content, PlanTitle))
	assert.Contains(t, plan.Content, "## 🎯 Product Overview")
	assert.Contains(t, plan.Content, "Launch on 2026-03-01.")
	assert.NotContains(t, plan.Content, "example.com")
	assert.Contains(t, plan.Content, "A --> B")
	assert.Contains(t, plan.Content, "### 🎯 API Development Prompt")

	assert.True(t, strings.HasPrefix(plan.Prompts, PromptsTitle))
	assert.Contains(t, plan.Prompts, "Please develop the API.")

	require.Len(t, plan.Fixes, 4)
	assert.Contains(t, plan.AppliedFixes(), "Cleaned fake links")
	assert.Contains(t, plan.AppliedFixes(), "Updated expired dates")
	assert.GreaterOrEqual(t, plan.QualityAfter, plan.QualityBefore)

	assert.Contains(t, gen.systemPrompt, "Project start date: 2026-10-26")
	assert.Contains(t, gen.userPrompt, "Product Idea: A recipe planner for busy parents")
	assert.Contains(t, gen.userPrompt, "Prefer PostgreSQL.")
}

func TestPlannerGenerateErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name      string
		idea      string
		gen       *fakeGenerator
		wantCalls int
		check     func(t *testing.T, err error)
	}{
		{
			name:      "invalid idea never calls the model",
			idea:      "short",
			gen:       &fakeGenerator{output: rawPlan},
			wantCalls: 0,
			check: func(t *testing.T, err error) {
				var vErr *ValidationError
				assert.True(t, errors.As(err, &vErr))
			},
		},
		{
			name:      "generator failure is wrapped",
			idea:      "A recipe planner for busy parents",
			gen:       &fakeGenerator{err: boom},
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, boom)
			},
		},
		{
			name:      "blank answer",
			idea:      "A recipe planner for busy parents",
			gen:       &fakeGenerator{output: "  \n "},
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := NewPlanner(tt.gen, "test-model", WithPlannerClock(plannerClock))

			plan, err := planner.Generate(context.Background(), PlanRequest{Idea: tt.idea})
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.Equal(t, tt.wantCalls, tt.gen.calls)
			tt.check(t, err)
		})
	}
}
