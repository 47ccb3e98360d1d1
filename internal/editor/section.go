package editor

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SectionType classifies a block of the plan document.
type SectionType string

const (
	TypeHeading   SectionType = "heading"
	TypeParagraph SectionType = "paragraph"
	TypeList      SectionType = "list"
	TypeCode      SectionType = "code"
	TypeTable     SectionType = "table"
)

// Section is a contiguous span of source lines. StartLine and EndLine are
// inclusive, 0-indexed, and refer to the document the section was parsed from.
type Section struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Type      SectionType `json:"type"`
	Level     int         `json:"level"`
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
	Editable  bool        `json:"editable"`
	Edited    bool        `json:"edited"`
}

// SectionView is what a UI lists for selection.
type SectionView struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Content string      `json:"content"`
	Type    SectionType `json:"type"`
	Level   int         `json:"level"`
	Preview string      `json:"preview"`
}

const (
	maxHeadingLevel = 6
	previewLength   = 100
)

var (
	listMarker = regexp.MustCompile(`^(?:[-*+]|\d+\.)(?:\s|$)`)

	// lockedTitles mark the metadata block injected above a generated plan.
	lockedTitles = regexp.MustCompile(`(?i)generat(?:ed|ion) time|ai model|based on user creativity|agent application|meta-info`)

	previewMarkup   = regexp.MustCompile("[#*`|]")
	previewNewlines = regexp.MustCompile(`\n+`)
)

// Parse splits a markdown document into typed, non-overlapping sections in
// line order. Blank lines separate sections but belong to none of them.
// A list marker ("-", "*", "+" or "N.") must be followed by whitespace, so
// lines like "-item", "1.first" and "---" are paragraphs.
func Parse(content string) []Section {
	s := &splitter{lines: strings.Split(content, "\n")}
	return s.run()
}

type splitter struct {
	lines    []string
	sections []Section
	current  *Section
	counter  int
}

func (s *splitter) run() []Section {
	for i := 0; i < len(s.lines); {
		raw := s.lines[i]
		line := strings.TrimSpace(raw)

		if level := headingLevel(line); level > 0 {
			s.flush()
			title := strings.TrimSpace(strings.TrimLeft(line, "#"))
			s.open(TypeHeading, title, level, i, raw)
			s.current.Editable = IsEditableTitle(title)
			i++
			continue
		}

		if strings.HasPrefix(line, "```") {
			s.flush()
			i = s.consumeCode(i)
			continue
		}

		if isTableRow(raw) {
			s.flush()
			i = s.consumeTable(i)
			continue
		}

		if listMarker.MatchString(line) {
			if s.current != nil && s.current.Type == TypeList {
				s.extend(i, raw)
			} else {
				s.flush()
				s.open(TypeList, "List", 0, i, raw)
			}
			i++
			continue
		}

		if line != "" {
			if s.current != nil && s.current.Type == TypeParagraph {
				s.extend(i, raw)
			} else {
				// Closes a heading too: a heading section is only its own line.
				s.flush()
				s.open(TypeParagraph, "Paragraph", 0, i, raw)
			}
		}
		i++
	}

	s.flush()
	return s.sections
}

// consumeCode takes the fence at start through its closing fence, or to the
// end of the document when the fence is never closed.
func (s *splitter) consumeCode(start int) int {
	end := start + 1
	for end < len(s.lines) && !strings.HasPrefix(strings.TrimSpace(s.lines[end]), "```") {
		end++
	}
	if end == len(s.lines) {
		end--
	}

	s.open(TypeCode, "Code Block", 0, start, strings.Join(s.lines[start:end+1], "\n"))
	s.current.EndLine = end
	s.flush()
	return end + 1
}

func (s *splitter) consumeTable(start int) int {
	end := start
	for end+1 < len(s.lines) && isTableRow(s.lines[end+1]) {
		end++
	}

	s.open(TypeTable, "Table", 0, start, strings.Join(s.lines[start:end+1], "\n"))
	s.current.EndLine = end
	s.flush()
	return end + 1
}

func (s *splitter) open(t SectionType, title string, level, line int, content string) {
	s.counter++
	s.current = &Section{
		ID:        fmt.Sprintf("%s_%d", t, s.counter),
		Title:     title,
		Content:   content,
		Type:      t,
		Level:     level,
		StartLine: line,
		EndLine:   line,
		Editable:  true,
	}
}

func (s *splitter) extend(line int, raw string) {
	s.current.Content += "\n" + raw
	s.current.EndLine = line
}

func (s *splitter) flush() {
	if s.current != nil && strings.TrimSpace(s.current.Content) != "" {
		s.sections = append(s.sections, *s.current)
	}
	s.current = nil
}

// headingLevel returns the ATX level of line, or 0 when line is not a
// heading. Seven or more markers are not a heading.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n > maxHeadingLevel {
		return 0
	}
	return n
}

func isTableRow(line string) bool {
	return strings.Count(line, "|") >= 2
}

// IsEditableTitle reports whether a heading may be edited. Headings of the
// generated metadata block are locked.
func IsEditableTitle(title string) bool {
	return !lockedTitles.MatchString(title)
}

// Preview strips markdown markup from content and truncates it.
func Preview(content string) string {
	preview := previewMarkup.ReplaceAllString(content, "")
	preview = strings.TrimSpace(previewNewlines.ReplaceAllString(preview, " "))

	if utf8.RuneCountInString(preview) > previewLength {
		preview = string([]rune(preview)[:previewLength]) + "..."
	}
	return preview
}

func (s Section) view() SectionView {
	return SectionView{
		ID:      s.ID,
		Title:   s.Title,
		Content: s.Content,
		Type:    s.Type,
		Level:   s.Level,
		Preview: Preview(s.Content),
	}
}
