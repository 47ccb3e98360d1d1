package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkSanitizerFix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "placeholder username link",
			input: "See [Profile](https://github.com/username/project).",
			want:  "See **Profile** (Based on industry standards).",
		},
		{
			name:  "your-username on gitlab",
			input: "[Repo](https://gitlab.com/your-username/app)",
			want:  "**Repo** (Based on industry standards)",
		},
		{
			name:  "sandbox domain bare url",
			input: "See https://example.com/docs for more",
			want:  "See (Based on industry best practices) for more",
		},
		{
			name:  "sandbox subdomain",
			input: "Visit http://api.test.com/v1",
			want:  "Visit (Based on industry best practices)",
		},
		{
			name:  "localhost link",
			input: "[API](http://localhost:8080/api)",
			want:  "**API** (Based on industry standards)",
		},
		{
			name:  "malformed scheme",
			input: "Go to https1://docs.site.io/x now",
			want:  "Go to (Based on industry best practices) now",
		},
		{
			name:  "education repo on trusted host",
			input: "[Course](https://github.com/someone/ai-education-hub)",
			want:  "**Course** (Based on industry standards)",
		},
		{
			name:  "numeric id medium post",
			input: "[Story](https://medium.com/@writer/scaling-apps-1234567890ab)",
			want:  "**Story** (Based on industry standards)",
		},
		{
			name:  "trusted link kept",
			input: "[Docs](https://docs.python.org/3/)",
			want:  "[Docs](https://docs.python.org/3/)",
		},
		{
			name:  "trusted subdomain kept",
			input: "[K8s](https://www.kubernetes.io/docs/home)",
			want:  "[K8s](https://www.kubernetes.io/docs/home)",
		},
		{
			name:  "lookalike host demoted",
			input: "[Mirror](https://github.com.evil.io/x)",
			want:  "**Mirror** (Technical Reference)",
		},
		{
			name:  "nested citation text demoted",
			input: "See [[docs]](https://evil.io/x) for details",
			want:  "See **[docs]** (Technical Reference) for details",
		},
		{
			name:  "nested citation on trusted host kept",
			input: "[[1]](https://go.dev/doc/)",
			want:  "[[1]](https://go.dev/doc/)",
		},
		{
			name:  "fake link with title",
			input: `[x](https://example.com "t")`,
			want:  "**x** (Based on industry standards)",
		},
		{
			name:  "untrusted host demoted",
			input: "[A blog](https://randomblog.dev/post)",
			want:  "**A blog** (Technical Reference)",
		},
		{
			name:  "relative link demoted",
			input: "[Local](/docs/setup)",
			want:  "**Local** (Reference Resource)",
		},
		{
			name:  "image on untrusted host demoted",
			input: "![diagram](https://cdn.site.net/a.png)",
			want:  "**diagram** (Technical Reference)",
		},
		{
			name:  "real username kept",
			input: "[Gin](https://github.com/gin-gonic/gin)",
			want:  "[Gin](https://github.com/gin-gonic/gin)",
		},
		{
			name:  "lookalike sandbox domain kept as text",
			input: "myexample.com is a brand name",
			want:  "myexample.com is a brand name",
		},
	}

	sanitizer := NewLinkSanitizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.Fix(tt.input))
		})
	}
}

func TestLinkSanitizerLeavesOnlyTrustedLinks(t *testing.T) {
	input := `# Resources
- [Python](https://docs.python.org/3/)
- [Fake](https://example.org/guide)
- [Unknown](https://unknown-site.io/article?id=3)
- [Titled](https://another.io/page "Title")
- [Broken](not a url)
- https://localhost:3000
- [Redis](https://redis.io/docs/)
- Cited in [[1]](https://evil.io) and [[2]](https://go.dev/blog/)
`
	out := NewLinkSanitizer().Fix(input)

	for _, match := range markdownLinkPattern.FindAllStringSubmatch(out, -1) {
		assert.True(t, IsTrustedHost(ExtractDomain(match[3])), "untrusted link left: %s", match[0])
	}
	assert.False(t, ContainsFakeLink(out))
	assert.Contains(t, out, "[Python](https://docs.python.org/3/)")
	assert.Contains(t, out, "[Redis](https://redis.io/docs/)")
	assert.Contains(t, out, "**Titled** (Technical Reference)")
	assert.Contains(t, out, "**Broken** (Reference Resource)")
	assert.Contains(t, out, "**[1]** (Technical Reference)")
	assert.Contains(t, out, "[[2]](https://go.dev/blog/)")

	assert.Equal(t, out, NewLinkSanitizer().Fix(out))
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.GitHub.com/org/repo", "github.com"},
		{"http://docs.docker.com:443/engine", "docs.docker.com"},
		{"/relative", ""},
		{"://bad", ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.url))
		})
	}
}

func TestIsTrustedHost(t *testing.T) {
	assert.True(t, IsTrustedHost("github.com"))
	assert.True(t, IsTrustedHost("docs.docker.com"))
	assert.False(t, IsTrustedHost("notgithub.com"))
	assert.False(t, IsTrustedHost(""))
	assert.Len(t, TrustedDomains(), len(trustedDomains))
}
