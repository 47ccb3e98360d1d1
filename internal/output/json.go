package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhabedank/vibedoc/internal/core"
)

// JSONWriter outputs the full plan as JSON.
type JSONWriter struct{}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

func (w *JSONWriter) Name() string {
	return "json"
}

func (w *JSONWriter) Extension() string {
	return ".json"
}

func (w *JSONWriter) Write(out io.Writer, plan *core.Plan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
