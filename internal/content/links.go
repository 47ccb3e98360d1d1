package content

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// fakeLinkNote replaces a fabricated markdown link; the link text is kept in bold.
	fakeLinkNote = "(Based on industry standards)"

	// fakeURLNote replaces a fabricated bare URL.
	fakeURLNote = "(Based on industry best practices)"

	malformedLinkNote = "(Reference Resource)"
	untrustedLinkNote = "(Technical Reference)"
)

// urlTail is the optional path/query/fragment of a URL token. It stops at
// whitespace and ")" so the same fragment works inside markdown link targets.
const urlTail = `(?:[/?#][^\s)]*)?`

// fakeURLs are the URL shapes LLMs hallucinate when asked for references.
var fakeURLs = []struct {
	name    string
	pattern string
}{
	{"placeholder-user-code-host", `https?://(?:www\.)?(?:github|gitlab)\.com/(?:your[-_]?)?username\b` + urlTail},
	{"placeholder-user-blog", `https?://(?:www\.)?(?:blog\.csdn\.net/|dev\.to/|medium\.com/@?)(?:your[-_]?)?username\b` + urlTail},
	{"numeric-id-post", `https?://(?:www\.)?medium\.com/@[^/\s)]+/[^\s)]*\d{9,}[^\s)]*`},
	{"education-repo", `https?://(?:www\.)?github\.com/[^/\s)]+/[^/\s)]*education[^\s)]*`},
	{"dated-article", `https?://(?:www\.)?kdnuggets\.com/\d{4}/\d{2}/[^\s)]*`},
	{"sandbox-domain", `https?://(?:[\w-]+\.)*(?:example\.(?:com|org|net)|xxx\.com|test\.com)\b(?::\d+)?` + urlTail},
	{"localhost", `https?://localhost\b(?::\d+)?` + urlTail},
	{"malformed-scheme", `https?\d://[^\s)]+`},
}

// trustedDomains may stay clickable. Subdomains of an entry are trusted too.
var trustedDomains = []string{
	"docs.python.org", "nodejs.org", "reactjs.org", "react.dev", "vuejs.org",
	"angular.io", "flask.palletsprojects.com", "fastapi.tiangolo.com", "go.dev",
	"docker.com", "kubernetes.io", "github.com", "gitlab.com",
	"stackoverflow.com", "developer.mozilla.org", "w3schools.com",
	"jwt.io", "redis.io", "mongodb.com", "postgresql.org",
	"mysql.com", "nginx.org", "apache.org",
}

var (
	fakeURLPatterns []*regexp.Regexp
	linkRules       []Rule

	markdownLinkPattern = regexp.MustCompile(`(!?)\[` + linkText + `\]\(([^)\n]+)\)`)
)

// linkText matches link text with at most one level of nested brackets,
// as in the "[[1]](url)" citation shape.
const linkText = `((?:[^\[\]\n]|\[[^\[\]\n]*\])+)`

// linkTitle is the optional quoted title after a link target.
const linkTitle = `(?:[ \t]+"[^"\n]*")?`

func init() {
	var markdownForms, bareForms []Rule
	for _, fake := range fakeURLs {
		bare := regexp.MustCompile(`(?i)` + fake.pattern)
		fakeURLPatterns = append(fakeURLPatterns, bare)

		markdownForms = append(markdownForms, newRule(
			"fake-link/"+fake.name,
			`(?i)!?\[`+linkText+`\]\(`+fake.pattern+linkTitle+`\)`,
			"**${1}** "+fakeLinkNote,
		))
		bareForms = append(bareForms, regexRule{
			name:        "fake-url/" + fake.name,
			pattern:     bare,
			replacement: fakeURLNote,
		})
	}

	linkRules = append(linkRules, markdownForms...)
	linkRules = append(linkRules, bareForms...)
	linkRules = append(linkRules, regexRule{
		name:    "gate-real-links",
		pattern: markdownLinkPattern,
		expand:  gateLink,
	})
}

// gateLink keeps a markdown link only when its target is well formed and
// hosted on a trusted domain.
func gateLink(groups []string) string {
	text, target := groups[2], groups[3]

	rawURL := target
	if fields := strings.Fields(target); len(fields) > 0 {
		rawURL = fields[0]
	}

	if !IsWellFormedURL(rawURL) {
		return "**" + text + "** " + malformedLinkNote
	}
	if !IsTrustedHost(ExtractDomain(rawURL)) {
		return "**" + text + "** " + untrustedLinkNote
	}
	return groups[0]
}

// IsWellFormedURL reports whether rawURL has both a scheme and a host.
func IsWellFormedURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

// ExtractDomain returns the lowercase host of rawURL without port or a
// leading "www.". It returns "" when the URL does not parse.
func ExtractDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// IsTrustedHost reports whether host is a trusted domain or one of its subdomains.
func IsTrustedHost(host string) bool {
	if host == "" {
		return false
	}
	for _, domain := range trustedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// TrustedDomains returns a copy of the allow-list.
func TrustedDomains() []string {
	return append([]string(nil), trustedDomains...)
}

// FakeURLPatterns returns the compiled fabricated-URL detectors.
func FakeURLPatterns() []*regexp.Regexp {
	return fakeURLPatterns
}

// ContainsFakeLink reports whether any fabricated-URL pattern matches.
func ContainsFakeLink(content string) bool {
	for _, re := range fakeURLPatterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}

// LinkSanitizer removes fabricated references and demotes links to
// untrusted hosts to plain text.
type LinkSanitizer struct {
	rules []Rule
}

// NewLinkSanitizer returns the sanitizer with the default rule table.
func NewLinkSanitizer() *LinkSanitizer {
	return &LinkSanitizer{rules: linkRules}
}

// Name implements Fixer.
func (s *LinkSanitizer) Name() string { return "Cleaned fake links" }

// Fix implements Fixer. Fabricated links are replaced first, then every
// remaining markdown link is gated against the allow-list.
func (s *LinkSanitizer) Fix(content string) string {
	return applyRules(s.rules, content)
}

// LinkRules exposes the ordered rule table.
func LinkRules() []Rule {
	return linkRules
}
