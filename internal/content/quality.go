package content

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Score weights. The maximum raw total is 100.
const (
	lengthWeight     = 15
	markerWeight     = 6
	recentDateWeight = 10
	noStaleWeight    = 10
	noFakeLinkWeight = 15
	cleanDiagram     = 10

	shortThreshold = 500
	longThreshold  = 2000

	MaxScore = 100
)

// structureMarkers are the landmarks of a complete, formatted plan.
var structureMarkers = []string{
	"# 🚀 AI-Generated Development Plan",
	"# 🤖 AI Programming Assistant Prompts",
	"```mermaid",
	"Project Development Gantt Chart",
}

// corruptionPatterns detect the diagram damage DiagramRepair targets.
var corruptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]*` + emoji + `[ \t]*(?:` + nodeID + `[ \t]*(?:-->|==>|-\.->)|` + nodeID + `\[|section[ \t])`),
	regexp.MustCompile("(?m)^```mermaid[ \\t]*\\n[ \\t]*#"),
}

// QualityScorer computes a 0-100 heuristic score for a plan.
type QualityScorer struct{}

// NewQualityScorer returns a scorer.
func NewQualityScorer() *QualityScorer { return &QualityScorer{} }

// Score is a pure function of content.
func (QualityScorer) Score(content string) int {
	if content == "" {
		return 0
	}

	score := 0

	length := utf8.RuneCountInString(content)
	if length > shortThreshold {
		score += lengthWeight
	}
	if length > longThreshold {
		score += lengthWeight
	}

	lower := strings.ToLower(content)
	for _, marker := range structureMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			score += markerWeight
		}
	}

	if recentDatePattern.MatchString(content) {
		score += recentDateWeight
	}
	if !HasStaleDate(content) {
		score += noStaleWeight
	}
	if !ContainsFakeLink(content) {
		score += noFakeLinkWeight
	}
	if !HasDiagramCorruption(content) {
		score += cleanDiagram
	}

	return min(score, MaxScore)
}

// HasDiagramCorruption reports whether a stray heading marker sits on a
// diagram line or directly after a mermaid fence.
func HasDiagramCorruption(content string) bool {
	for _, re := range corruptionPatterns {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}
