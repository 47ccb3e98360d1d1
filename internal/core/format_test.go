package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testMeta = Meta{
	GeneratedAt: time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC),
	Model:       "claude-sonnet-4-5-20250929",
	Provider:    "anthropic-api",
}

func TestFormatResponseWithPrompts(t *testing.T) {
	raw := "Product Overview\n" +
		"A tool for teams.\n" +
		"```\nDevelopment Plan\n```\n" +
		"# AI Programming Assistant Prompts\n" +
		"\n" +
		"## Login Development Prompt\n" +
		"```\n## not a heading\n```"

	out := FormatResponse(raw, testMeta)

	assert.True(t, strings.HasPrefix(out, PlanTitle+"\n\n#### ⏰ Generated Time: 2026-10-19 09:00:00\n"))
	assert.Contains(t, out, "#### 🤖 AI Model: claude-sonnet-4-5-20250929\n")
	assert.Contains(t, out, "#### 🔗 Agent application: vibedoc via anthropic-api\n")
	assert.Contains(t, out, "\n## 🎯 Product Overview\n")
	assert.Contains(t, out, "```\nDevelopment Plan\n```")
	assert.Contains(t, out, PromptsTitle+"\n\n"+promptsInstructions)
	assert.Contains(t, out, "### 🎯 Login Development Prompt")
	assert.Contains(t, out, "```\n## not a heading\n```")
	assert.NotContains(t, out, "\n# AI Programming Assistant Prompts")
}

func TestFormatResponseWithoutPrompts(t *testing.T) {
	out := FormatResponse("Just a plan body.", testMeta)

	assert.Contains(t, out, "---\n\nJust a plan body.\n")
	assert.NotContains(t, out, PromptsTitle)
	assert.Equal(t, 1, strings.Count(out, "\n---\n"))
}

func TestIsSectionKeywordLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Product Overview", true},
		{"Technical Solution", true},
		{"## Product Overview", false},
		{"- Product Overview", false},
		{"Product Overview: a short note", false},
		{"Some unrelated sentence", false},
		{"", false},
		{strings.Repeat("Deployment Plan ", 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isSectionKeywordLine(tt.line))
		})
	}
}

func TestExtractPrompts(t *testing.T) {
	tests := []struct {
		name string
		plan string
		want string
	}{
		{
			name: "heading found",
			plan: "<div>plan</div>\n# 🤖 AI Programming Assistant Prompts\n\n\n<b>Hi</b>\n\n\n## A\n",
			want: "# 🤖 AI Programming Assistant Prompts\n\nHi\n\n## A",
		},
		{
			name: "plain heading found",
			plan: "intro\n# AI Programming Assistant Prompts\nbody",
			want: "# AI Programming Assistant Prompts\nbody",
		},
		{
			name: "keyword fallback",
			plan: "Intro\nHere is a Prompt for you\nline",
			want: "Here is a Prompt for you\nline",
		},
		{
			name: "not found",
			plan: "nothing here",
			want: PromptsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPrompts(tt.plan))
		})
	}
}
