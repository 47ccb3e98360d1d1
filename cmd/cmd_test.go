package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhabedank/vibedoc/internal/editor"
	"github.com/dhabedank/vibedoc/internal/output"
)

const messyPlan = `# 🚀 AI-Generated Development Plan

#### ⏰ Generated Time: 2026-10-19 09:00:00

## Overview
Kick-off on 2023-03-15. See [the guide](https://example.com/guide) for details.

- [Go docs](https://go.dev/doc/)
- item two
`

// setupCommandTest isolates config lookup and resets flag state shared
// between command runs.
func setupCommandTest(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"ANTHROPIC_API_KEY", "VIBEDOC_LLM", "VIBEDOC_MODEL", "VIBEDOC_LOG", "VIBEDOC_MAX_TOKENS"} {
		t.Setenv(key, "")
	}

	configFile, logMode = "", "quiet"
	fixWrite = false
	editList, editSection, editContentFile, editComment, editHTML = false, "", "", "", ""
	return dir
}

func execute(t *testing.T, c *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err = c.Execute()
	return out.String(), errOut.String(), err
}

func writePlan(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "plan.md")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestFixPrintsRepairedPlan(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)

	stdout, stderr, err := execute(t, FixCmd, path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "**the guide** (Based on industry standards)")
	assert.Contains(t, stdout, "[Go docs](https://go.dev/doc/)")
	assert.NotContains(t, stdout, "2023-03-15")
	assert.Contains(t, stderr, "Quality:")
	assert.Contains(t, stderr, "Cleaned fake links")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, messyPlan, string(data), "file untouched without --write")
}

func TestFixWriteKeepsFrontMatter(t *testing.T) {
	dir := setupCommandTest(t)

	var buf bytes.Buffer
	require.NoError(t, output.WriteMarkdown(&buf, output.FrontMatter{
		Idea:         "A habit tracker for remote teams",
		Model:        "claude-haiku-4-5-20251001",
		QualityAfter: 10,
		Fixes:        []string{"Fixed formatting issues"},
	}, messyPlan))
	path := writePlan(t, dir, buf.String())

	_, _, err := execute(t, FixCmd, path, "--write")
	require.NoError(t, err)

	plan, err := output.ReadPlanFile(path)
	require.NoError(t, err)
	assert.True(t, plan.HasMeta)
	assert.Equal(t, "claude-haiku-4-5-20251001", plan.Meta.Model)
	assert.Greater(t, plan.Meta.QualityAfter, 10)
	assert.Contains(t, plan.Meta.Fixes, "Cleaned fake links")
	assert.Contains(t, plan.Meta.Fixes, "Fixed formatting issues")
	assert.NotContains(t, plan.Body, "example.com")
}

func TestScore(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)

	stdout, _, err := execute(t, ScoreCmd, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "/100")
	assert.Contains(t, stdout, path)
	assert.Contains(t, stdout, "fabricated links")
	assert.Contains(t, stdout, "stale dates")

	_, _, err = execute(t, ScoreCmd, filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}

func TestEditList(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)

	stdout, _, err := execute(t, EditCmd, path, "--list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "heading_1")
	assert.Contains(t, stdout, "paragraph_4")
	assert.NotContains(t, stdout, "heading_2", "metadata heading is locked")
}

func TestEditSection(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)
	contentPath := filepath.Join(dir, "new.md")
	require.NoError(t, os.WriteFile(contentPath, []byte("Kick-off next Monday.\n"), 0o644))

	stdout, _, err := execute(t, EditCmd, path,
		"--section", "paragraph_4", "--content-file", contentPath, "--comment", "new date")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated paragraph_4")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Overview\nKick-off next Monday.\n\n- [Go docs]")
	assert.NotContains(t, string(data), "2023-03-15")
}

func TestEditSectionErrors(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)
	contentPath := filepath.Join(dir, "new.md")
	require.NoError(t, os.WriteFile(contentPath, []byte("#### hacked"), 0o644))

	_, _, err := execute(t, EditCmd, path, "--section", "heading_2", "--content-file", contentPath)
	assert.ErrorIs(t, err, editor.ErrSectionLocked)

	setupCommandTest(t)
	_, _, err = execute(t, EditCmd, path, "--section", "heading_99", "--content-file", contentPath)
	assert.ErrorIs(t, err, editor.ErrSectionNotFound)

	setupCommandTest(t)
	_, _, err = execute(t, EditCmd, path, "--section", "paragraph_4")
	assert.ErrorContains(t, err, "--content-file is required")
}

func TestEditExportHTML(t *testing.T) {
	dir := setupCommandTest(t)
	path := writePlan(t, dir, messyPlan)
	htmlPath := filepath.Join(dir, "out", "plan.html")

	_, _, err := execute(t, EditCmd, path, "--html", htmlPath)
	require.NoError(t, err)

	data, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), "Overview")
}

func TestMergeFixes(t *testing.T) {
	got := mergeFixes([]string{"a", "b"}, []string{"b", "c", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
