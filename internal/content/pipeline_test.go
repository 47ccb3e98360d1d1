package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const messyPlan = "# 🚀 AI-Generated Development Plan\n" +
	"\n" +
	"## 🎯 Product Overview\n" +
	"\n" +
	"Launch date 2022-06-15. See [Profile](https://github.com/username/demo) and https://example.com/guide for details.\n" +
	"Read [Flask docs](https://flask.palletsprojects.com/en/3.0.x/) and [a blog](https://randomblog.dev/post).\n" +
	"\n" +
	"### 2. **Phase 3: Testing**\n" +
	"\n" +
	"```mermaid\n" +
	"## 🎯 graph TD\n" +
	"graph TD\n" +
	"    A[用户登录]-->B[Dashboard]\n" +
	"    C[\"\"Login\"\"] --> D[\"🚀 \"Deploy\"\"]\n" +
	"```\n" +
	"\n" +
	"\n" +
	"\n" +
	"## | Name | Value |\n" +
	"| a | b |\n"

func TestPipelineEmptyInput(t *testing.T) {
	p := NewPipeline(WithClock(fixedClock))

	out, report := p.Process("")
	assert.Equal(t, "", out)
	assert.Empty(t, report.Fixes)
	assert.Equal(t, "", p.Run(""))
}

func TestPipelineProcess(t *testing.T) {
	p := NewPipeline(WithClock(fixedClock))

	out, report := p.Process(messyPlan)

	require.Len(t, report.Fixes, 4)
	assert.Equal(t, []string{
		"Fixed diagram syntax",
		"Cleaned fake links",
		"Updated expired dates",
		"Fixed formatting issues",
	}, report.Applied())
	for _, fix := range report.Fixes {
		assert.True(t, fix.Applied, fix.Name)
	}

	assert.Contains(t, out, "Launch date 2026-06-15.")
	assert.Contains(t, out, "**Profile** (Based on industry standards)")
	assert.Contains(t, out, "(Based on industry best practices) for details")
	assert.Contains(t, out, "[Flask docs](https://flask.palletsprojects.com/en/3.0.x/)")
	assert.Contains(t, out, "**a blog** (Technical Reference)")
	assert.Contains(t, out, "#### 🚀 2. **Stage 2: Testing**")
	assert.Contains(t, out, "```mermaid\ngraph TD\n    A[\"用户登录\"] --> B[Dashboard]\n")
	assert.Contains(t, out, `C["Login"] --> D["Deploy"]`)
	assert.Contains(t, out, "```\n\n| Name | Value |\n| a | b |\n")

	assert.Greater(t, report.QualityAfter, report.QualityBefore)
	assert.LessOrEqual(t, report.QualityAfter, MaxScore)
}

func TestPipelineIdempotent(t *testing.T) {
	p := NewPipeline(WithClock(fixedClock))

	once := p.Run(messyPlan)
	twice, report := p.Process(once)

	assert.Equal(t, once, twice)
	assert.Empty(t, report.Applied())
}

func TestPipelineStageOrder(t *testing.T) {
	p := NewPipeline()

	var names []string
	for _, f := range p.Fixers() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{
		"Fixed diagram syntax",
		"Cleaned fake links",
		"Updated expired dates",
		"Fixed formatting issues",
	}, names)
}

func TestPipelineLogsMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewPipeline(WithClock(fixedClock), WithLogger(zap.New(core)))

	_, report := p.Process(messyPlan)

	entries := logs.FilterMessage("content pipeline finished").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, report.QualityBefore, fields["quality_before"])
	assert.EqualValues(t, report.QualityAfter, fields["quality_after"])

	p.Process("")
	assert.Equal(t, 1, logs.FilterMessage("content pipeline finished").Len())
}
