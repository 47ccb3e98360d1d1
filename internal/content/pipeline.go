package content

import (
	"time"

	"go.uber.org/zap"
)

// Fixer is one text-to-text stage of the pipeline.
type Fixer interface {
	Name() string
	Fix(content string) string
}

// FixRecord reports whether a stage changed the document.
type FixRecord struct {
	Name    string `json:"fix_name"`
	Applied bool   `json:"applied"`
}

// Report describes one pipeline run. Fixes keep stage order.
type Report struct {
	Fixes         []FixRecord `json:"fixes"`
	QualityBefore int         `json:"quality_before"`
	QualityAfter  int         `json:"quality_after"`
}

// Applied returns the names of the stages that changed the document.
func (r Report) Applied() []string {
	var names []string
	for _, f := range r.Fixes {
		if f.Applied {
			names = append(names, f.Name)
		}
	}
	return names
}

// Pipeline runs the repair stages in a fixed order and scores the
// document before and after. Scores are reported, never acted on.
type Pipeline struct {
	fixers []Fixer
	scorer *QualityScorer
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for run metrics.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock sets the clock the date stage reads the current year from.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPipeline builds the standard pipeline:
// diagram repair, link sanitizing, date normalizing, formatting repair.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		scorer: NewQualityScorer(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.fixers = []Fixer{
		NewDiagramRepair(),
		NewLinkSanitizer(),
		NewDateNormalizer(p.now),
		NewFormattingRepair(),
	}
	return p
}

// Fixers returns the stages in run order.
func (p *Pipeline) Fixers() []Fixer {
	return p.fixers
}

// Run returns the repaired document.
func (p *Pipeline) Run(content string) string {
	out, _ := p.Process(content)
	return out
}

// Process returns the repaired document and a report of the run.
// Empty input is returned as is and no stage runs.
func (p *Pipeline) Process(content string) (string, Report) {
	if content == "" {
		return content, Report{}
	}

	report := Report{
		Fixes:         make([]FixRecord, 0, len(p.fixers)),
		QualityBefore: p.scorer.Score(content),
	}

	for _, fixer := range p.fixers {
		fixed := fixer.Fix(content)
		report.Fixes = append(report.Fixes, FixRecord{
			Name:    fixer.Name(),
			Applied: fixed != content,
		})
		content = fixed
	}

	report.QualityAfter = p.scorer.Score(content)

	p.logger.Info("content pipeline finished",
		zap.Int("quality_before", report.QualityBefore),
		zap.Int("quality_after", report.QualityAfter),
		zap.Strings("fixes", report.Applied()),
	)

	return content, report
}
