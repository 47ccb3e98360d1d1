package content

import (
	"regexp"
	"strconv"
	"time"
)

var (
	// staleDatePattern matches ISO dates in years the model treats as "now".
	staleDatePattern = regexp.MustCompile(`\b(202[0-3])-(\d{2})-(\d{2})`)

	// staleYearPattern matches a bare stale year followed by a year suffix.
	staleYearPattern = regexp.MustCompile(`\b(202[0-3])(年|[Yy]ear)`)

	// recentDatePattern matches ISO dates from 2024 on.
	recentDatePattern = regexp.MustCompile(`\b(?:202[4-9]|20[3-9]\d)-\d{2}-\d{2}`)
)

// DateNormalizer rewrites stale years to the current year. Month and day
// are kept as written.
type DateNormalizer struct {
	now func() time.Time
}

// NewDateNormalizer returns a normalizer reading the current year from now.
// A nil now uses time.Now.
func NewDateNormalizer(now func() time.Time) *DateNormalizer {
	if now == nil {
		now = time.Now
	}
	return &DateNormalizer{now: now}
}

// Name implements Fixer.
func (d *DateNormalizer) Name() string { return "Updated expired dates" }

// Fix implements Fixer.
func (d *DateNormalizer) Fix(content string) string {
	return applyRules(d.Rules(), content)
}

// Rules returns the rule table bound to the current year.
func (d *DateNormalizer) Rules() []Rule {
	year := strconv.Itoa(d.now().Year())
	return []Rule{
		regexRule{
			name:    "refresh-iso-dates",
			pattern: staleDatePattern,
			expand: func(groups []string) string {
				return year + "-" + groups[2] + "-" + groups[3]
			},
		},
		regexRule{
			name:    "refresh-year-words",
			pattern: staleYearPattern,
			expand: func(groups []string) string {
				return year + groups[2]
			},
		},
	}
}

// HasStaleDate reports whether content still carries a 2020-2023 ISO date.
func HasStaleDate(content string) bool {
	return staleDatePattern.MatchString(content)
}
