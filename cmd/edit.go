package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dhabedank/vibedoc/internal/editor"
	"github.com/dhabedank/vibedoc/internal/logging"
	"github.com/dhabedank/vibedoc/internal/output"
	"github.com/dhabedank/vibedoc/internal/tui"
)

var (
	editList        bool
	editSection     string
	editContentFile string
	editComment     string
	editHTML        string
)

// EditCmd represents the edit command
var EditCmd = &cobra.Command{
	Use:   "edit <plan-file>",
	Short: "Edit sections of a plan",
	Long: `Split a plan into headings, paragraphs, lists, code blocks and tables and
edit them one at a time. Without flags an interactive editor opens.

The generated metadata headings (time, model, attribution) cannot be edited.

Example:
  vibedoc edit plan.md --list
  vibedoc edit plan.md --section paragraph_7 --content-file new.md --comment "tighter scope"
  vibedoc edit plan.md --html plan.html`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	addConfigFlags(EditCmd)
	EditCmd.Flags().BoolVar(&editList, "list", false, "List editable sections and exit")
	EditCmd.Flags().StringVar(&editSection, "section", "", "Section ID to replace")
	EditCmd.Flags().StringVar(&editContentFile, "content-file", "", "File with the new section content (- for stdin)")
	EditCmd.Flags().StringVar(&editComment, "comment", "", "Comment stored in the edit history")
	EditCmd.Flags().StringVar(&editHTML, "html", "", "Export the plan as HTML to this file")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	plan, err := output.ReadPlanFile(args[0])
	if err != nil {
		return err
	}

	doc := editor.New(editor.WithLogger(logger))
	doc.Load(plan.Body)

	out := cmd.OutOrStdout()
	switch {
	case editList:
		printSections(cmd, doc.EditableSections())
		return nil

	case editSection != "":
		if editContentFile == "" {
			return fmt.Errorf("--content-file is required with --section")
		}
		text, err := readInput(editContentFile)
		if err != nil {
			return err
		}
		if err := doc.Update(editSection, strings.TrimRight(text, "\n"), editComment); err != nil {
			return err
		}
		if err := output.WritePlanFile(plan, doc.ModifiedContent()); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Updated %s in %s\n", tui.SuccessStyle.Render("✓"), editSection, plan.Path)

	case editHTML == "":
		final, err := tea.NewProgram(tui.NewEditorModel(doc), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}
		if m, ok := final.(tui.EditorModel); !ok || !m.Save {
			fmt.Fprintln(out, "No changes written")
			return nil
		}
		if err := output.WritePlanFile(plan, doc.ModifiedContent()); err != nil {
			return err
		}
		printEditSummary(cmd, doc)
	}

	if editHTML != "" {
		return exportHTML(doc.ModifiedContent(), editHTML)
	}
	return nil
}

func printSections(cmd *cobra.Command, views []editor.SectionView) {
	out := cmd.OutOrStdout()
	for _, v := range views {
		fmt.Fprintf(out, "%-14s %s %s\n",
			tui.ModelStyle.Render(v.ID),
			tui.SectionTypeStyle.Render(string(v.Type)),
			tui.HelpStyle.Render(v.Preview),
		)
	}
}

func printEditSummary(cmd *cobra.Command, doc *editor.Editor) {
	out := cmd.OutOrStdout()
	summary := doc.Summary()
	fmt.Fprintf(out, "%s %d of %d editable sections changed\n",
		tui.SuccessStyle.Render("✓"), summary.EditedSections, summary.EditableSections)

	for _, h := range doc.RecentHistory(10) {
		line := fmt.Sprintf("  %s  %s", h.Timestamp.Format("15:04:05"), h.SectionID)
		if h.UserComment != "" {
			line += "  " + tui.HelpStyle.Render(h.UserComment)
		}
		fmt.Fprintln(out, line)
	}
}

func exportHTML(markdown, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return output.NewHTMLWriter().Render(f, "Development Plan", markdown)
}
