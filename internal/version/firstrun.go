package version

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dhabedank/vibedoc/internal/config"
	"github.com/dhabedank/vibedoc/internal/tui"
)

// IsFirstRun reports whether neither ~/.vibedoc.yaml nor the first-run
// marker exist.
func IsFirstRun() bool {
	configPath, err := config.HomePath()
	if err != nil {
		return false
	}
	if _, err := os.Stat(configPath); err == nil {
		return false
	}

	markerPath := statePath(".initialized")
	if markerPath == "" {
		return false
	}
	if _, err := os.Stat(markerPath); err == nil {
		return false
	}
	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	markerPath := statePath(".initialized")
	if markerPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(markerPath), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(markerPath, []byte{}, 0o644)
}

// PrintFirstRunNotice prints a welcome message and marks the install as
// initialized.
func PrintFirstRunNotice(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s Welcome to vibedoc!\n", tui.TitleStyle.Render("*"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Quick start:")
	fmt.Fprintf(w, "    1. Run %s to choose your models\n", tui.ModelStyle.Render("vibedoc setup"))
	fmt.Fprintf(w, "    2. Generate a plan: %s\n", tui.ModelStyle.Render(`vibedoc generate "a habit tracker for remote teams"`))
	fmt.Fprintf(w, "    3. Polish it: %s\n", tui.ModelStyle.Render("vibedoc edit development_plan_*.md"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", tui.HelpStyle.Render("Run 'vibedoc --help' for all options"))
	fmt.Fprintln(w)

	MarkInitialized()
}
