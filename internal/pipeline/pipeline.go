// Package pipeline orchestrates document analysis: chunked extraction,
// deterministic risk scanning, deduplication, and confidence filtering.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rfpscope/internal/common"
	"rfpscope/internal/dedupe"
	"rfpscope/internal/docsource"
	"rfpscope/internal/extract"
	"rfpscope/internal/model"
	"rfpscope/internal/riskscan"
)

// Default thresholds applied when the caller does not supply its own.
const (
	DefaultMinConfidence     = 0.6
	DefaultRequirementDedupe = 0.8
	DefaultRiskDedupe        = 0.75
)

// Config holds per-run analysis thresholds.
type Config struct {
	MinConfidence        float64
	RequirementThreshold float64
	RiskThreshold        float64
}

// withDefaults fills unset thresholds.
func (c Config) withDefaults() Config {
	if c.MinConfidence <= 0 {
		c.MinConfidence = DefaultMinConfidence
	}
	if c.RequirementThreshold <= 0 {
		c.RequirementThreshold = DefaultRequirementDedupe
	}
	if c.RiskThreshold <= 0 {
		c.RiskThreshold = DefaultRiskDedupe
	}
	return c
}

// Context is the per-document analysis arena. It carries intermediate and
// final pipeline results, is keyed by document identifier, and its lifetime
// is controlled by the caller.
type Context struct {
	ID                  string
	DocumentID          string
	DocumentName        string
	CreatedAt           time.Time
	Requirements        []model.Requirement
	Risks               []model.Risk
	SkippedRequirements []extract.Skipped
	SkippedRisks        []extract.Skipped
	Matches             model.MatchResults
	Coverage            model.CoverageSummary
}

// Analyzer runs the full document analysis pipeline. It holds no state
// between runs.
type Analyzer struct {
	extractor *extract.Extractor
	scanner   *riskscan.Scanner
	cfg       Config
	logger    *slog.Logger
}

// New creates an analyzer from its collaborators.
func New(extractor *extract.Extractor, scanner *riskscan.Scanner, cfg Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		extractor: extractor,
		scanner:   scanner,
		cfg:       cfg.withDefaults(),
		logger:    logger,
	}
}

// Analyze runs extraction, risk scanning, deduplication, and confidence
// filtering over one document, returning the populated analysis context.
func (a *Analyzer) Analyze(ctx context.Context, doc *docsource.Document) (*Context, error) {
	if doc == nil || doc.Text() == "" {
		return nil, common.ErrNoDocument
	}

	ac := &Context{
		ID:           uuid.NewString(),
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		CreatedAt:    time.Now().UTC(),
	}

	// Deterministic risk scan over the whole text.
	pages := scanPages(doc)
	patternRisks := a.scanner.Scan(doc.Text(), pages)

	// Generative extraction, per page when pagination is known so candidates
	// inherit a page hint.
	requirements, skippedReqs, err := a.extractRequirements(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("requirement extraction: %w", err)
	}
	generativeRisks, skippedRisks, err := a.extractRisks(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("risk extraction: %w", err)
	}

	ac.SkippedRequirements = skippedReqs
	ac.SkippedRisks = skippedRisks

	// Pattern hits come first so they win first-seen representation during
	// deduplication.
	allRisks := make([]model.Risk, 0, len(patternRisks)+len(generativeRisks))
	allRisks = append(allRisks, patternRisks...)
	allRisks = append(allRisks, generativeRisks...)

	requirements = dedupe.Dedupe(requirements, a.cfg.RequirementThreshold)
	allRisks = dedupe.Dedupe(allRisks, a.cfg.RiskThreshold)

	ac.Requirements = FilterByConfidence(requirements, a.cfg.MinConfidence)
	ac.Risks = FilterByConfidence(allRisks, a.cfg.MinConfidence)

	a.logger.Info("document analyzed",
		"document", doc.Name,
		"requirements", len(ac.Requirements),
		"risks", len(ac.Risks),
		"skipped_requirements", len(skippedReqs),
		"skipped_risks", len(skippedRisks))

	return ac, nil
}

// extractRequirements runs generative requirement extraction, page by page
// when pagination is available.
func (a *Analyzer) extractRequirements(ctx context.Context, doc *docsource.Document) ([]model.Requirement, []extract.Skipped, error) {
	pages := doc.Pages()
	if len(pages) == 0 {
		return a.extractor.Requirements(ctx, doc.Text(), 0)
	}

	var (
		all     []model.Requirement
		skipped []extract.Skipped
	)
	for _, p := range pages {
		reqs, s, err := a.extractor.Requirements(ctx, p.Text, p.Number)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, reqs...)
		skipped = append(skipped, s...)
	}
	return all, skipped, nil
}

// extractRisks runs generative risk extraction, page by page when
// pagination is available.
func (a *Analyzer) extractRisks(ctx context.Context, doc *docsource.Document) ([]model.Risk, []extract.Skipped, error) {
	pages := doc.Pages()
	if len(pages) == 0 {
		return a.extractor.Risks(ctx, doc.Text(), 0)
	}

	var (
		all     []model.Risk
		skipped []extract.Skipped
	)
	for _, p := range pages {
		risks, s, err := a.extractor.Risks(ctx, p.Text, p.Number)
		if err != nil {
			return nil, nil, err
		}
		all = append(all, risks...)
		skipped = append(skipped, s...)
	}
	return all, skipped, nil
}

// scanPages converts document pages into the scanner's page form.
func scanPages(doc *docsource.Document) []riskscan.Page {
	docPages := doc.Pages()
	if len(docPages) == 0 {
		return nil
	}
	pages := make([]riskscan.Page, len(docPages))
	for i, p := range docPages {
		pages[i] = riskscan.Page{Number: p.Number, Text: p.Text}
	}
	return pages
}

// FilterByConfidence drops items below the minimum confidence. It is pure,
// stateless, and order-preserving.
func FilterByConfidence[T model.Item](items []T, minConfidence float64) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.ConfidenceScore() >= minConfidence {
			out = append(out, item)
		}
	}
	return out
}
