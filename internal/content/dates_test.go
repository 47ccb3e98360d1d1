package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
}

func TestDateNormalizerFix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"stale iso date", "Kickoff: 2022-06-15", "Kickoff: 2026-06-15"},
		{"every stale year", "2020-01-02 2021-03-04 2023-12-31", "2026-01-02 2026-03-04 2026-12-31"},
		{"pre-window year kept", "Founded 2019-06-15", "Founded 2019-06-15"},
		{"recent year kept", "Launch 2025-06-15", "Launch 2025-06-15"},
		{"future year kept", "Sunset 2031-01-01", "Sunset 2031-01-01"},
		{"cjk year word", "计划于2023年启动", "计划于2026年启动"},
		{"english year word", "the 2022Year roadmap", "the 2026Year roadmap"},
		{"digits glued to word kept", "build v12022-06-15", "build v12022-06-15"},
		{"gantt line", "    Setup :a1, 2023-03-01, 5d", "    Setup :a1, 2026-03-01, 5d"},
	}

	normalizer := NewDateNormalizer(fixedClock)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Fix(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, normalizer.Fix(got))
		})
	}
}

func TestDateNormalizerDefaultClock(t *testing.T) {
	normalizer := NewDateNormalizer(nil)
	assert.False(t, HasStaleDate(normalizer.Fix("2021-05-05")))
}
