package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSectionNotFound is returned when no section has the requested id.
	ErrSectionNotFound = errors.New("section not found")

	// ErrSectionLocked is returned for sections of the metadata block.
	ErrSectionLocked = errors.New("section is not editable")

	errBadRange = errors.New("section range outside document")
)

// HistoryEntry records one successful edit.
type HistoryEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	SectionID   string    `json:"section_id"`
	OldContent  string    `json:"old_content"`
	NewContent  string    `json:"new_content"`
	UserComment string    `json:"user_comment"`
	SessionID   string    `json:"session_id"`
}

// Summary counts sections and edits.
type Summary struct {
	TotalSections    int        `json:"total_sections"`
	EditableSections int        `json:"editable_sections"`
	EditedSections   int        `json:"edited_sections"`
	LastEditTime     *time.Time `json:"last_edit_time,omitempty"`
}

// Editor holds one plan document, its sections and the edit history for a
// single editing session. It is not safe for concurrent use; give each
// session its own Editor.
//
// Section line ranges always refer to the document passed to Load. Edits
// are spliced into those original ranges, so ranges never shift after an
// edit. Call Load on ModifiedContent to get ranges for the edited text.
type Editor struct {
	original string
	lines    []string
	sections []Section

	modified string
	rebuilt  bool
	history  []HistoryEntry

	sessionID string
	now       func() time.Time
	logger    *zap.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the editor logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the clock used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns an empty editor with a fresh session id.
func New(opts ...Option) *Editor {
	e := &Editor{
		sessionID: uuid.NewString(),
		now:       time.Now,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load parses content and makes it the original document. Pending edits to
// a previously loaded document are dropped; history is kept.
func (e *Editor) Load(content string) []Section {
	e.original = content
	e.lines = strings.Split(content, "\n")
	e.sections = Parse(content)
	e.modified = ""
	e.rebuilt = false

	e.logger.Info("plan parsed", zap.Int("sections", len(e.sections)))
	return e.Sections()
}

// Sections returns a copy of the parsed sections.
func (e *Editor) Sections() []Section {
	return slices.Clone(e.sections)
}

// Section returns the section with the given id.
func (e *Editor) Section(id string) (Section, bool) {
	i := e.indexOf(id)
	if i < 0 {
		return Section{}, false
	}
	return e.sections[i], true
}

// EditableSections lists the sections a user may change.
func (e *Editor) EditableSections() []SectionView {
	var views []SectionView
	for _, s := range e.sections {
		if s.Editable {
			views = append(views, s.view())
		}
	}
	return views
}

// Update replaces the content of an editable section and rebuilds the document.
func (e *Editor) Update(id, content, comment string) error {
	i := e.indexOf(id)
	if i < 0 {
		e.logger.Warn("section update rejected", zap.String("section", id), zap.String("reason", "not found"))
		return fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}

	section := &e.sections[i]
	if !section.Editable {
		e.logger.Warn("section update rejected", zap.String("section", id), zap.String("reason", "locked"))
		return fmt.Errorf("%w: %s", ErrSectionLocked, id)
	}

	e.history = append(e.history, HistoryEntry{
		Timestamp:   e.now(),
		SectionID:   id,
		OldContent:  section.Content,
		NewContent:  content,
		UserComment: comment,
		SessionID:   e.sessionID,
	})

	section.Content = content
	section.Edited = true
	e.rebuild()

	e.logger.Info("section updated", zap.String("section", id), zap.Int("history", len(e.history)))
	return nil
}

// UpdateSection is Update reporting success as a bool.
func (e *Editor) UpdateSection(id, content, comment string) bool {
	return e.Update(id, content, comment) == nil
}

// ModifiedContent returns the document with all edits applied.
func (e *Editor) ModifiedContent() string {
	if e.rebuilt {
		return e.modified
	}
	return e.original
}

// Original returns the document as loaded.
func (e *Editor) Original() string {
	return e.original
}

// History returns every edit in order.
func (e *Editor) History() []HistoryEntry {
	return slices.Clone(e.history)
}

// RecentHistory returns the last n edits, newest first.
func (e *Editor) RecentHistory(n int) []HistoryEntry {
	if n <= 0 {
		return nil
	}
	start := max(len(e.history)-n, 0)

	recent := slices.Clone(e.history[start:])
	slices.Reverse(recent)
	return recent
}

// Summary reports section and edit counts.
func (e *Editor) Summary() Summary {
	summary := Summary{
		TotalSections:  len(e.sections),
		EditedSections: len(e.history),
	}
	for _, s := range e.sections {
		if s.Editable {
			summary.EditableSections++
		}
	}
	if len(e.history) > 0 {
		last := e.history[len(e.history)-1].Timestamp
		summary.LastEditTime = &last
	}
	return summary
}

// SessionID identifies this editor's history entries.
func (e *Editor) SessionID() string {
	return e.sessionID
}

// Reset discards edits and history and re-parses the original document.
func (e *Editor) Reset() {
	e.history = nil
	e.Load(e.original)
	e.logger.Info("plan reset to original")
}

// rebuild splices section content into the original lines. A range that
// does not fit the original document leaves the original content in place.
func (e *Editor) rebuild() {
	content, err := e.splice()
	if err != nil {
		e.logger.Warn("rebuild failed, keeping original content", zap.Error(err))
		content = e.original
	}
	e.modified = content
	e.rebuilt = true
}

func (e *Editor) splice() (string, error) {
	ordered := slices.Clone(e.sections)
	slices.SortStableFunc(ordered, func(a, b Section) int {
		return a.StartLine - b.StartLine
	})

	out := make([]string, 0, len(e.lines))
	cursor := 0
	for _, s := range ordered {
		if s.StartLine < cursor || s.EndLine < s.StartLine || s.EndLine >= len(e.lines) {
			return "", fmt.Errorf("%w: %s [%d, %d]", errBadRange, s.ID, s.StartLine, s.EndLine)
		}

		out = append(out, e.lines[cursor:s.StartLine]...)
		if s.Edited {
			out = append(out, strings.Split(s.Content, "\n")...)
		} else {
			out = append(out, e.lines[s.StartLine:s.EndLine+1]...)
		}
		cursor = s.EndLine + 1
	}
	out = append(out, e.lines[cursor:]...)

	return strings.Join(out, "\n"), nil
}

func (e *Editor) indexOf(id string) int {
	return slices.IndexFunc(e.sections, func(s Section) bool { return s.ID == id })
}
