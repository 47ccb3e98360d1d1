package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhabedank/vibedoc/internal/editor"
)

const tuiComment = "edited in vibedoc edit"

type editorMode int

const (
	modeBrowse editorMode = iota
	modeEdit
)

type sectionItem struct {
	view   editor.SectionView
	edited bool
}

func (i sectionItem) Title() string {
	mark := ""
	if i.edited {
		mark = " ✎"
	}
	return fmt.Sprintf("[%s] %s%s", i.view.Type, i.view.Title, mark)
}

func (i sectionItem) Description() string { return i.view.Preview }
func (i sectionItem) FilterValue() string { return i.view.Title }

// EditorModel is the Bubble Tea model behind `vibedoc edit`: pick a section
// from the list, change it in a textarea, then write the document.
type EditorModel struct {
	doc      *editor.Editor
	list     list.Model
	textarea textarea.Model
	mode     editorMode
	editing  string
	message  string

	// Save is set when the user asked to write the document on exit.
	Save bool
}

// NewEditorModel creates the editor UI over doc.
func NewEditorModel(doc *editor.Editor) EditorModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(ColorMuted)

	l := list.New(nil, delegate, 80, 20)
	l.Title = "Editable sections"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(16)

	m := EditorModel{doc: doc, list: l, textarea: ta}
	m.refresh()
	return m
}

func (m *EditorModel) refresh() {
	views := m.doc.EditableSections()
	items := make([]list.Item, len(views))
	for i, v := range views {
		s, _ := m.doc.Section(v.ID)
		items[i] = sectionItem{view: v, edited: s.Edited}
	}
	m.list.SetItems(items)
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		m.textarea.SetWidth(msg.Width - 2)
		m.textarea.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m EditorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "w":
		m.Save = true
		return m, tea.Quit

	case "r":
		m.doc.Reset()
		m.refresh()
		m.message = "Reset to original"
		return m, nil

	case "enter":
		item, ok := m.list.SelectedItem().(sectionItem)
		if !ok {
			return m, nil
		}
		s, _ := m.doc.Section(item.view.ID)
		m.mode = modeEdit
		m.editing = s.ID
		m.message = ""
		m.textarea.SetValue(s.Content)
		return m, m.textarea.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m EditorModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.textarea.Blur()
		m.mode = modeBrowse
		m.message = "Edit discarded"
		return m, nil

	case "ctrl+s":
		if err := m.doc.Update(m.editing, m.textarea.Value(), tuiComment); err != nil {
			m.message = ErrorStyle.Render(err.Error())
		} else {
			m.message = SuccessStyle.Render("✓") + " Updated " + m.editing
		}
		m.textarea.Blur()
		m.mode = modeBrowse
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m EditorModel) View() string {
	summary := m.doc.Summary()
	header := fmt.Sprintf("\n  %s  %s\n\n",
		TitleStyle.Render("vibedoc edit"),
		HelpStyle.Render(fmt.Sprintf("%d editable • %d edited", summary.EditableSections, summary.EditedSections)),
	)

	var body, help string
	if m.mode == modeEdit {
		body = SubtitleStyle.Render("  Editing "+m.editing) + "\n" + m.textarea.View()
		help = HelpStyle.Render("\n  ctrl+s: apply • esc: discard")
	} else {
		body = m.list.View()
		help = HelpStyle.Render("\n  ↑/↓: navigate • enter: edit • r: reset • w: write & quit • q: quit")
	}

	status := ""
	if m.message != "" {
		status = "\n  " + m.message
	}
	return header + body + status + help
}
