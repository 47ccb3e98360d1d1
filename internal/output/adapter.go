package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhabedank/vibedoc/internal/core"
)

// Writer is the interface all plan writers must implement.
type Writer interface {
	// Name returns the format identifier ("markdown", "html", "json").
	Name() string

	// Extension returns the file extension including the dot.
	Extension() string

	// Write renders plan to w.
	Write(w io.Writer, plan *core.Plan) error
}

// Config configures where plans are written.
type Config struct {
	// Dir receives generated files.
	Dir string

	// DryRun renders to stdout instead of a file.
	DryRun bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Dir: "."}
}

// NewWriter returns the writer for format.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "markdown", "md":
		return NewMarkdownWriter(), nil
	case "html":
		return NewHTMLWriter(), nil
	case "json":
		return NewJSONWriter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// FileName returns the timestamped base name for plan.
func FileName(plan *core.Plan, w Writer) string {
	return "development_plan_" + plan.GeneratedAt.Format("20060102_150405") + w.Extension()
}

// Save writes plan with w under config.Dir and returns the file path.
// In dry-run mode the plan goes to stdout and the path is empty.
func Save(w Writer, plan *core.Plan, config Config) (string, error) {
	if config.DryRun {
		if err := w.Write(os.Stdout, plan); err != nil {
			return "", err
		}
		return "", nil
	}

	dir := config.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(plan, w))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := w.Write(f, plan); err != nil {
		return "", err
	}
	return path, nil
}
