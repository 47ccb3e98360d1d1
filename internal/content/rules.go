package content

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Rule is a single find-and-replace step over a whole document.
// Fixers are ordered lists of rules so each rule can be tested in isolation.
type Rule interface {
	// Name identifies the rule in tests and debug logs.
	Name() string

	// Apply returns the rewritten document. A rule that does not match
	// returns its input unchanged.
	Apply(content string) string
}

// emoji matches a single pictograph with an optional variation selector.
// Covers the symbol blocks LLMs decorate headings with (🎯 🚀 📋 ⚡ ...).
const emoji = `(?:[\x{1F000}-\x{1FAFF}\x{2600}-\x{27BF}\x{2B00}-\x{2BFF}]\x{FE0F}?)`

// regexRule is a stdlib regexp substitution. Replacement uses Go's
// $1 / ${1} template syntax; Expand, when set, replaces it.
type regexRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
	expand      func(groups []string) string
}

func (r regexRule) Name() string { return r.name }

func (r regexRule) Apply(content string) string {
	if r.expand != nil {
		return replaceAllSubmatchFunc(r.pattern, content, r.expand)
	}
	return r.pattern.ReplaceAllString(content, r.replacement)
}

// newRule compiles a template-based rule.
func newRule(name, pattern, replacement string) Rule {
	return regexRule{name: name, pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// newFuncRule compiles a rule whose replacement is computed from the submatches.
func newFuncRule(name, pattern string, expand func(groups []string) string) Rule {
	return regexRule{name: name, pattern: regexp.MustCompile(pattern), expand: expand}
}

// lookaroundRule runs on regexp2 for patterns that need lookbehind or
// lookahead, which RE2 cannot express.
type lookaroundRule struct {
	name        string
	pattern     *regexp2.Regexp
	replacement string
}

func newLookaroundRule(name, pattern, replacement string) Rule {
	return lookaroundRule{
		name:        name,
		pattern:     regexp2.MustCompile(pattern, regexp2.Multiline),
		replacement: replacement,
	}
}

func (r lookaroundRule) Name() string { return r.name }

func (r lookaroundRule) Apply(content string) string {
	out, err := r.pattern.Replace(content, r.replacement, -1, -1)
	if err != nil {
		// Match timeout; leave the document as it was.
		return content
	}
	return out
}

// applyRules runs every rule in order. Each rule is unconditional.
func applyRules(rules []Rule, content string) string {
	for _, rule := range rules {
		content = rule.Apply(content)
	}
	return content
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to capture groups.
func replaceAllSubmatchFunc(re *regexp.Regexp, src string, fn func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	out := make([]byte, 0, len(src))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = src[loc[2*i]:loc[2*i+1]]
			}
		}
		out = append(out, src[last:loc[0]]...)
		out = append(out, fn(groups)...)
		last = loc[1]
	}
	out = append(out, src[last:]...)
	return string(out)
}
