package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhabedank/vibedoc/internal/tui"
)

const (
	// GitHubRepo is the repository for version checks.
	GitHubRepo = "dhabedank/vibedoc"

	// CheckInterval is how often to check for updates (24 hours).
	CheckInterval = 24 * time.Hour

	stateDir = ".vibedoc"
)

// GitHubRelease represents a GitHub release.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult holds the result of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

// Checker looks up the latest release. The zero value is not usable; use
// NewChecker.
type Checker struct {
	releaseURL string
	markerPath string
	client     *http.Client
}

// NewChecker returns a checker against the GitHub releases API that records
// its last check under ~/.vibedoc.
func NewChecker() *Checker {
	return &Checker{
		releaseURL: fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", GitHubRepo),
		markerPath: statePath(".last-update-check"),
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// CheckForUpdate checks if a newer version is available.
// Returns nil if check should be skipped (checked recently) or on error.
func (c *Checker) CheckForUpdate(ctx context.Context, currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}
	if c.checkedRecently() {
		return nil
	}
	c.markChecked()

	latest, err := c.fetchLatestRelease(ctx)
	if err != nil {
		return nil // Silently fail - don't block user
	}

	latestClean := strings.TrimPrefix(latest.TagName, "v")
	currentClean := strings.TrimPrefix(currentVersion, "v")
	if !isNewerVersion(latestClean, currentClean) {
		return nil
	}

	return &CheckResult{
		CurrentVersion:  currentVersion,
		LatestVersion:   latest.TagName,
		UpdateAvailable: true,
		ReleaseURL:      latest.HTMLURL,
	}
}

// PrintUpdateNotice prints a notice if an update is available.
func PrintUpdateNotice(w io.Writer, result *CheckResult) {
	if result == nil || !result.UpdateAvailable {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s A new version of vibedoc is available: %s (you have %s)\n",
		tui.WarningStyle.Render("!"),
		tui.SuccessStyle.Render(result.LatestVersion),
		result.CurrentVersion,
	)
	fmt.Fprintf(w, "  Update: %s\n", tui.HelpStyle.Render("go install github.com/dhabedank/vibedoc@latest"))
	fmt.Fprintf(w, "  Release notes: %s\n", result.ReleaseURL)
	fmt.Fprintln(w)
}

func (c *Checker) fetchLatestRelease(ctx context.Context) (*GitHubRelease, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

func (c *Checker) checkedRecently() bool {
	if c.markerPath == "" {
		return false
	}
	info, err := os.Stat(c.markerPath)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < CheckInterval
}

func (c *Checker) markChecked() {
	if c.markerPath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.markerPath), 0o755); err != nil {
		return
	}
	now := time.Now()
	if _, err := os.Stat(c.markerPath); os.IsNotExist(err) {
		_ = os.WriteFile(c.markerPath, []byte{}, 0o644)
	} else {
		_ = os.Chtimes(c.markerPath, now, now)
	}
}

// statePath returns ~/.vibedoc/name, or "" without a home directory.
func statePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, stateDir, name)
}

// isNewerVersion returns true if latest is newer than current.
// Simple comparison: splits by dots and compares numerically.
func isNewerVersion(latest, current string) bool {
	latestParts := strings.Split(latest, ".")
	currentParts := strings.Split(current, ".")

	for i := 0; i < len(latestParts) && i < len(currentParts); i++ {
		l := parseVersionPart(latestParts[i])
		c := parseVersionPart(currentParts[i])

		if l > c {
			return true
		}
		if l < c {
			return false
		}
	}

	// If all compared parts are equal, longer version is newer
	return len(latestParts) > len(currentParts)
}

// parseVersionPart extracts a number from a version part (e.g., "1" from "1-beta").
func parseVersionPart(s string) int {
	var n int
	_, _ = fmt.Sscanf(s, "%d", &n)
	return n
}
