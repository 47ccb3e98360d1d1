package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/config"
	"github.com/dhabedank/vibedoc/internal/llm"
	"github.com/dhabedank/vibedoc/internal/tui"
)

var (
	resetConfig bool
	setupLocal  bool
)

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Long: `Configure vibedoc with an interactive wizard.

This wizard helps you select models for each task:
- Plan model: used by 'vibedoc generate'
- Optimizer model: used by 'vibedoc optimize' (a faster, cheaper model works well)

Configuration is saved to ~/.vibedoc.yaml (or ./.vibedoc.yaml with --local)`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
	SetupCmd.Flags().BoolVar(&setupLocal, "local", false, "Write the config to the current directory")
}

var setupSteps = []string{"Plan", "Optimizer"}

func runSetup(cmd *cobra.Command, args []string) error {
	configPath, err := setupConfigPath()
	if err != nil {
		return err
	}

	if resetConfig {
		if err := os.Remove(configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove config: %w", err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		fmt.Printf("  Removed: %s\n", configPath)
		return nil
	}

	models := llm.AllModels()
	if len(models) == 0 && os.Getenv("ANTHROPIC_API_KEY") != "" {
		models = llm.ClaudeModels()
	}
	if len(models) == 0 {
		return fmt.Errorf("no LLM providers detected. Install Claude Code or Codex CLI, or set ANTHROPIC_API_KEY")
	}

	p := tea.NewProgram(newSetupModel(models))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Println("Setup cancelled")
		return nil
	}

	// Keep settings the wizard does not ask about.
	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		if cfg, err = config.ReadFile(configPath); err != nil {
			return err
		}
	}
	cfg.Model = finalModel.selectedModels[0]
	cfg.OptimizerModel = finalModel.selectedModels[1]

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration saved to " + configPath)
	fmt.Println()
	fmt.Println("Selected models:")
	fmt.Printf("  Plan:      %s\n", tui.ModelStyle.Render(cfg.Model))
	fmt.Printf("  Optimizer: %s\n", tui.ModelStyle.Render(cfg.OptimizerModel))

	return nil
}

func setupConfigPath() (string, error) {
	if setupLocal {
		return config.FileName, nil
	}
	return config.HomePath()
}

// Bubble Tea model for the setup wizard

type setupModel struct {
	step           int // index into setupSteps
	lists          []list.Model
	selectedModels []string
	cancelled      bool
}

type modelItem struct {
	info llm.ModelInfo
}

func (m modelItem) Title() string       { return m.info.Name }
func (m modelItem) Description() string { return m.info.Description }
func (m modelItem) FilterValue() string { return m.info.Name }

func newSetupModel(models []llm.ModelInfo) setupModel {
	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = modelItem{info: m}
	}

	titles := []string{
		"Select Plan Model (vibedoc generate)",
		"Select Optimizer Model (vibedoc optimize)",
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(tui.ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(tui.ColorMuted)

	lists := make([]list.Model, len(setupSteps))
	for i := range lists {
		l := list.New(items, delegate, 60, 14)
		l.Title = titles[i]
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.Styles.Title = tui.TitleStyle
		lists[i] = l
	}

	return setupModel{
		lists:          lists,
		selectedModels: make([]string, len(setupSteps)),
	}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.lists {
			m.lists[i].SetWidth(msg.Width)
			m.lists[i].SetHeight(msg.Height - 4)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.lists[m.step].SelectedItem().(modelItem); ok {
				m.selectedModels[m.step] = item.info.ID
			}
			if m.step == len(setupSteps)-1 {
				return m, tea.Quit
			}
			m.step++
			return m, nil

		case "left", "h":
			if m.step > 0 {
				m.step--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lists[m.step], cmd = m.lists[m.step].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}

	progress := "\n  "
	for i, s := range setupSteps {
		switch {
		case i == m.step:
			progress += tui.SelectedStyle.Render(fmt.Sprintf("[%s]", s))
		case i < m.step:
			progress += tui.SuccessStyle.Render(fmt.Sprintf("✓ %s", s))
		default:
			progress += tui.UnselectedStyle.Render(fmt.Sprintf("○ %s", s))
		}
		if i < len(setupSteps)-1 {
			progress += " → "
		}
	}
	progress += "\n\n"

	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • ←: back • q: quit")

	return progress + m.lists[m.step].View() + help
}
