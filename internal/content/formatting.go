package content

// emojiPrefix is an optional leading heading decoration.
const emojiPrefix = `(?:` + emoji + `[ \t]+)?`

const summaryHeading = " Summary\n\nAbove is the complete development plan and technical solution.\n\n---"

var formattingRules = []Rule{
	newRule("fill-empty-stage-heading",
		`(?m)^(#{2,6})[ \t]+(`+emoji+`[ \t]+)?\*\*[ \t]*$`,
		"${1} ${2}**Development Stage**"),
	newRule("fill-dangling-stage-label",
		`(?m)^(#{2,6}[ \t]+`+emojiPrefix+`)(?:Phase|Stage|阶段)[ \t]*[：:][ \t]*\*\*[ \t]*$`,
		"${1}**Stage 1**:"),
	newRule("renumber-stage-headings",
		`(?m)^#{2,6}[ \t]+`+emojiPrefix+`(\d+)\.[ \t]+\*\*(?:第\d+阶段|[Ss]tage[ \t]*\d+|[Pp]hase[ \t]*\d+)`,
		"#### 🚀 ${1}. **Stage ${1}"),
	newRule("unwrap-table-row-heading",
		`(?m)^#{1,6}[ \t]+`+emojiPrefix+`(\|[^\n]*\|)[ \t]*$`,
		"${1}"),
	newRule("flatten-numbered-item-label",
		`(?m)^###[ \t]+📋[ \t]+(\d+)\.[ \t]+\*\*([^*\n]+)\*\*[：:]`,
		"**${1}. ${2}**:"),
	newRule("flatten-numbered-item",
		`(?m)^###[ \t]+📋[ \t]+(\d+)\.[ \t]+\*\*([^*\n]+)\*\*[ \t]*$`,
		"**${1}. ${2}**"),
	newRule("collapse-blank-lines",
		`\n{4,}`,
		"\n\n"),
	newRule("close-empty-heading",
		`(?m)^(#{2,6})[ \t]*\n(?:[ \t]*\n)*---[ \t]*$`,
		"${1}"+summaryHeading),
}

// FormattingRepair cleans up heading and whitespace damage around stages,
// tables and numbered items.
type FormattingRepair struct {
	rules []Rule
}

// NewFormattingRepair returns the formatting fixer with the default rule table.
func NewFormattingRepair() *FormattingRepair {
	return &FormattingRepair{rules: formattingRules}
}

// Name implements Fixer.
func (f *FormattingRepair) Name() string { return "Fixed formatting issues" }

// Fix implements Fixer.
func (f *FormattingRepair) Fix(content string) string {
	return applyRules(f.rules, content)
}

// FormattingRules exposes the ordered rule table.
func FormattingRules() []Rule {
	return formattingRules
}
