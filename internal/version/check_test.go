package version

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{"same version", "1.0.0", "1.0.0", false},
		{"patch newer", "1.0.1", "1.0.0", true},
		{"minor newer", "1.1.0", "1.0.0", true},
		{"major newer", "2.0.0", "1.0.0", true},
		{"current newer", "1.0.0", "1.0.1", false},
		{"longer version newer", "1.0.0.1", "1.0.0", true},
		{"double digit", "1.10.0", "1.9.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNewerVersion(tt.latest, tt.current))
		})
	}
}

func TestParseVersionPart(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"10", 10},
		{"0", 0},
		{"1-beta", 1},
		{"2-rc1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseVersionPart(tt.input))
		})
	}
}

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"tag_name":"` + tag + `","html_url":"https://github.com/dhabedank/vibedoc/releases/` + tag + `"}`))
	}))
	t.Cleanup(srv.Close)

	return &Checker{
		releaseURL: srv.URL,
		markerPath: filepath.Join(t.TempDir(), "state", ".last-update-check"),
		client:     srv.Client(),
	}
}

func TestCheckForUpdate(t *testing.T) {
	c := newTestChecker(t, "v0.3.0", http.StatusOK)

	result := c.CheckForUpdate(context.Background(), "v0.2.1")
	require.NotNil(t, result)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v0.3.0", result.LatestVersion)

	_, err := os.Stat(c.markerPath)
	require.NoError(t, err, "marker written")

	// within the interval the check is skipped
	assert.Nil(t, c.CheckForUpdate(context.Background(), "v0.2.1"))

	var buf bytes.Buffer
	PrintUpdateNotice(&buf, result)
	assert.Contains(t, buf.String(), "A new version of vibedoc is available")
}

func TestCheckForUpdateNoUpdate(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		status  int
		current string
	}{
		{"up to date", "v0.3.0", http.StatusOK, "0.3.0"},
		{"server error", "v9.0.0", http.StatusInternalServerError, "0.3.0"},
		{"dev build", "v9.0.0", http.StatusOK, "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestChecker(t, tt.tag, tt.status)
			assert.Nil(t, c.CheckForUpdate(context.Background(), tt.current))
		})
	}
}

func TestFirstRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.True(t, IsFirstRun())

	var buf bytes.Buffer
	PrintFirstRunNotice(&buf)
	assert.Contains(t, buf.String(), "Welcome to vibedoc")
	assert.False(t, IsFirstRun())
}

func TestPrintUpdateNoticeNil(t *testing.T) {
	var buf bytes.Buffer
	PrintUpdateNotice(&buf, nil)
	assert.Empty(t, buf.String())
}
