package core

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	PlanTitle    = "# 🚀 AI-Generated Development Plan"
	PromptsTitle = "# 🤖 AI Programming Assistant Prompts"

	// PromptsNotFound is returned by ExtractPrompts when the plan has no prompts.
	PromptsNotFound = "Programming prompts section not found"

	promptsInstructions = "> 💡 **Instructions**: The prompts below were generated for this project. " +
		"Paste them into AI programming tools such as GitHub Copilot, ChatGPT or Claude."

	timeLayout = "2006-01-02 15:04:05"
)

// Meta is the provenance stamped above a formatted plan.
type Meta struct {
	GeneratedAt time.Time
	Model       string
	Provider    string
}

var (
	// promptsHeading matches the prompts section heading, with or without
	// the emoji FormatResponse adds.
	promptsHeading = regexp.MustCompile(`(?m)^#[ \t]+(?:🤖[ \t]+)?AI Programming Assistant Prompts[ \t]*$`)

	htmlTag = regexp.MustCompile(`<[^>]+>`)
)

// sectionKeywords are bare lines the model often emits instead of headings.
var sectionKeywords = []string{
	"Product Overview",
	"Technical Solution",
	"Development Plan",
	"Deployment Plan",
	"Growth Strategy",
	"Promotion Strategy",
}

// promptKeywords locate a prompts section that lacks the expected heading.
var promptKeywords = []string{"Programming Prompts", "Programming Assistant", "Prompt", "AI Assistant"}

// FormatResponse wraps raw model output with the metadata header and
// normalizes the plan and prompts parts.
func FormatResponse(raw string, meta Meta) string {
	plan, prompts := splitPrompts(raw)

	var b strings.Builder
	b.WriteString(PlanTitle + "\n\n")
	b.WriteString("#### ⏰ Generated Time: " + meta.GeneratedAt.Format(timeLayout) + "\n")
	b.WriteString("#### 🤖 AI Model: " + meta.Model + "\n")
	b.WriteString("#### 💡 Intelligently generated based on user creativity\n")
	b.WriteString("#### 🔗 Agent application: vibedoc via " + meta.Provider + "\n\n")
	b.WriteString("---\n\n")
	b.WriteString(promoteSectionKeywords(strings.TrimSpace(plan)))
	b.WriteString("\n")

	if prompts != "" {
		b.WriteString("\n---\n\n")
		b.WriteString(rewritePrompts(prompts))
		b.WriteString("\n")
	}
	return b.String()
}

// splitPrompts cuts raw at the prompts heading. prompts is empty when
// there is no heading.
func splitPrompts(raw string) (plan, prompts string) {
	loc := promptsHeading.FindStringIndex(raw)
	if loc == nil {
		return raw, ""
	}
	return raw[:loc[0]], raw[loc[0]:]
}

// promoteSectionKeywords turns bare keyword lines outside code fences into
// level-2 headings.
func promoteSectionKeywords(plan string) string {
	lines := strings.Split(plan, "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if !inFence && isSectionKeywordLine(stripped) {
			out = append(out, "", "## 🎯 "+stripped, "")
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func isSectionKeywordLine(line string) bool {
	if line == "" || utf8.RuneCountInString(line) >= 50 {
		return false
	}
	if strings.ContainsAny(line[:1], "#-*+|>") || strings.ContainsAny(line, ":：") {
		return false
	}
	for _, keyword := range sectionKeywords {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	return false
}

// rewritePrompts replaces the prompts heading and turns each "## X" module
// heading outside code fences into "### 🎯 X".
func rewritePrompts(prompts string) string {
	lines := strings.Split(strings.TrimSpace(prompts), "\n")
	out := make([]string, 0, len(lines)+4)
	inFence := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		switch {
		case i == 0:
			out = append(out, PromptsTitle, "", promptsInstructions)
		case strings.HasPrefix(stripped, "```"):
			inFence = !inFence
			out = append(out, line)
		case !inFence && strings.HasPrefix(stripped, "## "):
			out = append(out, "### 🎯 "+strings.TrimSpace(stripped[3:]))
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// ExtractPrompts returns the prompts part of a plan, cleaned for copying.
func ExtractPrompts(plan string) string {
	if loc := promptsHeading.FindStringIndex(plan); loc != nil {
		return cleanForCopy(plan[loc[0]:])
	}

	lines := strings.Split(plan, "\n")
	for i, line := range lines {
		for _, keyword := range promptKeywords {
			if strings.Contains(line, keyword) {
				return cleanForCopy(strings.Join(lines[i:], "\n"))
			}
		}
	}
	return PromptsNotFound
}

// cleanForCopy strips HTML tags and collapses runs of blank lines.
func cleanForCopy(text string) string {
	text = htmlTag.ReplaceAllString(text, "")

	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		} else if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}
