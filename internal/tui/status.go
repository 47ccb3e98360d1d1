package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DoneMsg ends a Status display. Err is shown when set.
type DoneMsg struct {
	Err error
}

// Status is a Bubble Tea model showing a spinner while a model call runs.
type Status struct {
	spinner   spinner.Model
	label     string
	model     string
	start     time.Time
	now       func() time.Time
	done      bool
	err       error
	Cancelled bool
}

// NewStatus creates a status display for one long-running step.
func NewStatus(label, model string) Status {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Status{
		spinner: s,
		label:   label,
		model:   model,
		start:   time.Now(),
		now:     time.Now,
	}
}

// Init implements tea.Model.
func (s Status) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update implements tea.Model.
func (s Status) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			s.Cancelled = true
			return s, tea.Quit
		}

	case DoneMsg:
		s.done = true
		s.err = msg.Err
		return s, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

// View implements tea.Model.
func (s Status) View() string {
	elapsed := s.now().Sub(s.start)

	switch {
	case s.Cancelled:
		return WarningStyle.Render("✗") + " " + s.label + " cancelled\n"
	case s.done && s.err != nil:
		return RenderStepFailed(s.label, s.err) + "\n"
	case s.done:
		return RenderStepComplete(s.label, elapsed) + "\n"
	}

	return fmt.Sprintf("%s %s  %s  %s\n",
		s.spinner.View(),
		StageStyle.Render(s.label),
		ModelStyle.Render(s.model),
		HelpStyle.Render(elapsed.Truncate(time.Second).String()),
	)
}

// RenderStepStart returns a string for step start (non-interactive mode).
func RenderStepStart(label, model string) string {
	return fmt.Sprintf("%s %s  %s",
		SpinnerStyle.Render("→"),
		StageStyle.Render(label),
		ModelStyle.Render(model),
	)
}

// RenderStepComplete returns a string for step completion (non-interactive mode).
func RenderStepComplete(label string, duration time.Duration) string {
	return fmt.Sprintf("%s %s  %s",
		SuccessStyle.Render("✓"),
		StageStyle.Render(label),
		HelpStyle.Render(duration.Truncate(time.Second).String()),
	)
}

// RenderStepFailed returns a string for a failed step.
func RenderStepFailed(label string, err error) string {
	return fmt.Sprintf("%s %s  %s",
		ErrorStyle.Render("✗"),
		StageStyle.Render(label),
		ErrorStyle.Render(err.Error()),
	)
}

// RenderScores returns the quality line printed after the repair pipeline.
func RenderScores(before, after int) string {
	delta := after - before
	style := SuccessStyle
	if delta < 0 {
		style = WarningStyle
	}
	return fmt.Sprintf("  Quality: %d → %s (%s)",
		before,
		style.Render(fmt.Sprintf("%d", after)),
		style.Render(fmt.Sprintf("%+d", delta)),
	)
}

// RenderFixes lists the repairs that changed the document.
func RenderFixes(applied []string) string {
	if len(applied) == 0 {
		return "  " + HelpStyle.Render("No repairs needed")
	}

	var b strings.Builder
	for i, name := range applied {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  " + SuccessStyle.Render("✓") + " " + name)
	}
	return b.String()
}
