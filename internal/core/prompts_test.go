package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"monday moves a full week", time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC), "2026-10-26"},
		{"tuesday", time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC), "2026-10-26"},
		{"saturday", time.Date(2026, time.October, 24, 9, 0, 0, 0, time.UTC), "2026-10-26"},
		{"sunday", time.Date(2026, time.October, 25, 23, 0, 0, 0, time.UTC), "2026-10-26"},
		{"across year end", time.Date(2026, time.December, 31, 9, 0, 0, 0, time.UTC), "2027-01-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectStart(tt.now)
			assert.Equal(t, tt.want, got.Format(dateLayout))
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(time.Date(2026, time.October, 20, 9, 0, 0, 0, time.UTC))

	assert.Contains(t, prompt, "Today is 2026-10-20 and the current year is 2026")
	assert.Contains(t, prompt, "Requirement Research     :done, req1, 2026-10-26, 3d")
	assert.Contains(t, prompt, "Project start date: 2026-10-26")
	assert.Contains(t, prompt, "axisFormat %m-%d")
	assert.Contains(t, prompt, "# AI Programming Assistant Prompts")
	assert.NotContains(t, prompt, "%!")
}

func TestBuildUserPrompt(t *testing.T) {
	plain := BuildUserPrompt("  A recipe planner  ", "")
	assert.True(t, strings.HasPrefix(plain, "Product Idea: A recipe planner\n\nPlease generate:"))
	assert.NotContains(t, plain, "External Knowledge")

	withKnowledge := BuildUserPrompt("A recipe planner", "Use PostgreSQL.")
	assert.Contains(t, withKnowledge, "# External Knowledge Base Reference\nUse PostgreSQL.")
	assert.Contains(t, withKnowledge, "Based on the reference above")
}
