package output

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/dhabedank/vibedoc/internal/core"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.8rem; }
pre { background: #f6f8fa; padding: 1rem; overflow-x: auto; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTMLWriter renders the plan as a standalone HTML page.
type HTMLWriter struct {
	engine goldmark.Markdown
}

// NewHTMLWriter creates an HTML writer with GFM tables, strikethrough,
// task lists and autolinks enabled.
func NewHTMLWriter() *HTMLWriter {
	return &HTMLWriter{engine: newEngine()}
}

func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithXHTML()),
	)
}

func (w *HTMLWriter) Name() string {
	return "html"
}

func (w *HTMLWriter) Extension() string {
	return ".html"
}

func (w *HTMLWriter) Write(out io.Writer, plan *core.Plan) error {
	return w.Render(out, "Development Plan", plan.Content)
}

// Render writes markdown as a full page titled title.
func (w *HTMLWriter) Render(out io.Writer, title, markdown string) error {
	var body bytes.Buffer
	if err := w.engine.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("markdown render: %w", err)
	}

	if _, err := fmt.Fprintf(out, pageTemplate, html.EscapeString(title), body.String()); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	return nil
}

// RenderHTML returns the HTML fragment for markdown.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := newEngine().Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
