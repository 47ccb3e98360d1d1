package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/vibedoc/internal/core"
)

// FrontMatter is the metadata block written above a markdown plan.
type FrontMatter struct {
	Idea          string   `yaml:"idea"`
	ReferenceURL  string   `yaml:"reference_url,omitempty"`
	Model         string   `yaml:"model"`
	Provider      string   `yaml:"provider"`
	GeneratedAt   string   `yaml:"generated_at"`
	QualityBefore int      `yaml:"quality_before"`
	QualityAfter  int      `yaml:"quality_after"`
	Fixes         []string `yaml:"fixes,omitempty"`
}

// PlanFile is a plan read back from disk.
type PlanFile struct {
	Path string
	Meta FrontMatter

	// HasMeta is false for files written without front matter.
	HasMeta bool
	Body    string
}

// MarkdownWriter writes the plan body under a YAML front matter block.
type MarkdownWriter struct{}

// NewMarkdownWriter creates a markdown writer.
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{}
}

func (w *MarkdownWriter) Name() string {
	return "markdown"
}

func (w *MarkdownWriter) Extension() string {
	return ".md"
}

func (w *MarkdownWriter) Write(out io.Writer, plan *core.Plan) error {
	meta := FrontMatter{
		Idea:          plan.Idea,
		ReferenceURL:  plan.ReferenceURL,
		Model:         plan.Model,
		Provider:      plan.Provider,
		GeneratedAt:   plan.GeneratedAt.Format(time.RFC3339),
		QualityBefore: plan.QualityBefore,
		QualityAfter:  plan.QualityAfter,
		Fixes:         plan.AppliedFixes(),
	}
	return WriteMarkdown(out, meta, plan.Content)
}

// WriteMarkdown writes body preceded by meta as YAML front matter.
func WriteMarkdown(out io.Writer, meta FrontMatter, body string) error {
	header, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(strings.TrimLeft(body, "\n"))
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}

	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

// ParsePlan splits source into front matter and body. Sources without
// front matter come back whole with HasMeta false.
func ParsePlan(source []byte) (*PlanFile, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return &PlanFile{
		Meta:    meta,
		HasMeta: bytes.HasPrefix(source, []byte("---")) && len(body) != len(source),
		Body:    strings.TrimLeft(string(body), "\n"),
	}, nil
}

// ReadPlanFile reads a plan written by MarkdownWriter or any markdown file.
func ReadPlanFile(path string) (*PlanFile, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	plan, err := ParsePlan(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	plan.Path = path
	return plan, nil
}

// WritePlanFile writes body back to path, keeping the front matter when
// the file had one.
func WritePlanFile(plan *PlanFile, body string) error {
	var buf bytes.Buffer
	if plan.HasMeta {
		if err := WriteMarkdown(&buf, plan.Meta, body); err != nil {
			return err
		}
	} else {
		buf.WriteString(body)
	}

	if err := os.WriteFile(plan.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}
