package content

import "unicode/utf8"

// nodeID is a diagram node identifier such as A, Start or api_gateway.
const nodeID = `[A-Za-z][A-Za-z0-9_]*`

// strayMarker is a heading marker plus emoji that leaked onto a diagram line.
const strayMarker = `(?m)^[ \t]*#{1,6}[ \t]*` + emoji + `[ \t]*`

// diagramRules repair the mermaid mini-language. They run over the whole
// document, not only inside fences: the LLM corrupts lines that have lost
// their fence context too.
var diagramRules = []Rule{
	newRule("strip-marker-before-arrow",
		strayMarker+`(`+nodeID+`[ \t]*(?:-->|==>|-\.->))`,
		"    ${1}"),
	newRule("strip-marker-before-section",
		strayMarker+`(section[ \t]+\S[^\n]*)$`,
		"    ${1}"),
	newRule("strip-marker-before-node",
		strayMarker+`(`+nodeID+`\[[^\]\n]+\][^\n]*)$`,
		"    ${1}"),
	newRule("strip-marker-after-fence",
		"(?m)^(```mermaid)[ \\t]*\\n[ \\t]*#{1,6}[ \\t]*(?:"+emoji+"[ \\t]*)?",
		"${1}\n"),

	newRule("collapse-doubled-quotes",
		`\b(`+nodeID+`)\[""([^"\n]+)""\]`,
		`${1}["${2}"]`),
	newRule("collapse-emoji-quotes",
		`\b(`+nodeID+`)\["`+emoji+`+[ \t]*"([^"\n]+)""?\]`,
		`${1}["${2}"]`),
	newFuncRule("quote-non-ascii-labels",
		`\b(`+nodeID+`)\[([^\]\["\n(/\\{][^\]\["\n]*)\](\()?`,
		quoteNonASCIILabel),

	newRule("collapse-duplicate-declaration",
		`(?m)^([ \t]*)(graph|flowchart)[ \t]+([A-Z]{2})[ \t]*(?:\n(?:[ \t]*\n)*[ \t]*(?:graph|flowchart)[ \t]+[A-Z]{2}[ \t]*)+$`,
		"${1}${2} ${3}"),

	newLookaroundRule("normalize-arrow-spacing",
		`(?<=[^\s\-=.<])[ \t]*(-\.->|-->|==>)[ \t]*(?=[^\s\->])`,
		" ${1} "),

	newFuncRule("rewrap-diagram-fences",
		"(?ms)^```mermaid[ \\t]*\\n(.*?)\\n[ \\t]*```[ \\t]*$",
		func(groups []string) string {
			return "```mermaid\n" + groups[1] + "\n```"
		}),
}

// quoteNonASCIILabel wraps a bare label in quotes when it holds non-ASCII
// text. Markdown link text (label followed by "(") is left alone.
func quoteNonASCIILabel(groups []string) string {
	id, label, paren := groups[1], groups[2], groups[3]
	if paren != "" || !hasNonASCII(label) {
		return groups[0]
	}
	return id + `["` + label + `"]`
}

func hasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// DiagramRepair fixes malformed mermaid syntax. Best-effort: emoji placed
// anywhere other than the known shapes is not caught.
type DiagramRepair struct {
	rules []Rule
}

// NewDiagramRepair returns the diagram fixer with the default rule table.
func NewDiagramRepair() *DiagramRepair {
	return &DiagramRepair{rules: diagramRules}
}

// Name implements Fixer.
func (d *DiagramRepair) Name() string { return "Fixed diagram syntax" }

// Fix implements Fixer.
func (d *DiagramRepair) Fix(content string) string {
	return applyRules(d.rules, content)
}

// DiagramRules exposes the ordered rule table.
func DiagramRules() []Rule {
	return diagramRules
}
