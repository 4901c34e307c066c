package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpscope/internal/common"
	"rfpscope/internal/docsource"
	"rfpscope/internal/extract"
	"rfpscope/internal/llm"
	"rfpscope/internal/model"
	"rfpscope/internal/riskscan"
)

func newAnalyzer(t *testing.T, client llm.Client, cfg Config) *Analyzer {
	t.Helper()
	extractor := extract.NewExtractor(client, extract.Config{}, nil)
	return New(extractor, riskscan.NewDefaultScanner(), cfg, nil)
}

func TestFilterByConfidence(t *testing.T) {
	items := []model.Requirement{
		{Description: "keep high", Confidence: 0.9},
		{Description: "drop low", Confidence: 0.3},
		{Description: "keep boundary", Confidence: 0.6},
		{Description: "drop just under", Confidence: 0.5999},
	}

	out := FilterByConfidence(items, 0.6)

	require.Len(t, out, 2)
	for _, item := range out {
		assert.GreaterOrEqual(t, item.Confidence, 0.6)
	}
	assert.Equal(t, "keep high", out[0].Description)
	assert.Equal(t, "keep boundary", out[1].Description)
}

func TestFilterByConfidence_EmptyInput(t *testing.T) {
	assert.Empty(t, FilterByConfidence([]model.Risk{}, 0.5))
}

func TestAnalyze_FullRun(t *testing.T) {
	// One reply per extraction call: requirements first, then risks.
	client := llm.NewMockClient(
		`[{"description": "Deploy on AWS with auto-scaling", "category": "technical", "priority": "high", "confidence": 0.9}]`,
		`[{"clause": "Work must be completed no later than thirty days after award.", "category": "timeline", "severity": "high", "confidence": 0.7}]`,
	)
	a := newAnalyzer(t, client, Config{})

	doc := docsource.New("rfp.txt", "Vendor assumes all liability for damages. Deploy on AWS with auto-scaling.", nil)
	ac, err := a.Analyze(context.Background(), doc)

	require.NoError(t, err)
	assert.NotEmpty(t, ac.ID)
	assert.Equal(t, doc.ID, ac.DocumentID)

	require.Len(t, ac.Requirements, 1)
	assert.Equal(t, model.MethodGenerative, ac.Requirements[0].Method)

	// Both the pattern hit and the generative risk survive.
	require.Len(t, ac.Risks, 2)
	assert.Equal(t, model.MethodPattern, ac.Risks[0].Method)
	assert.Equal(t, model.RiskLegal, ac.Risks[0].Category)
}

func TestAnalyze_ConfidenceFilterApplies(t *testing.T) {
	client := llm.NewMockClient(
		`[{"description": "Low confidence requirement", "confidence": 0.2}]`,
		`[]`,
	)
	a := newAnalyzer(t, client, Config{MinConfidence: 0.6})

	doc := docsource.New("rfp.txt", "Plain text with no risky language at all.", nil)
	ac, err := a.Analyze(context.Background(), doc)

	require.NoError(t, err)
	assert.Empty(t, ac.Requirements)
	assert.Empty(t, ac.Risks)
}

func TestAnalyze_PatternHitWinsDedupe(t *testing.T) {
	// The generative extractor reports the same clause the scanner already
	// found; dedup keeps the pattern hit (first seen, higher trust).
	clause := "Vendor assumes all liability for damages."
	client := llm.NewMockClient(
		`[]`,
		`[{"clause": "`+clause+`", "category": "legal", "severity": "high", "confidence": 0.7}]`,
	)
	a := newAnalyzer(t, client, Config{})

	doc := docsource.New("rfp.txt", clause, nil)
	ac, err := a.Analyze(context.Background(), doc)

	require.NoError(t, err)
	require.Len(t, ac.Risks, 1)
	assert.Equal(t, model.MethodPattern, ac.Risks[0].Method)
	assert.Equal(t, riskscan.PatternConfidence, ac.Risks[0].Confidence)
}

func TestAnalyze_PaginatedDocumentCarriesPageHints(t *testing.T) {
	client := llm.NewMockClient(
		// Page 1 requirements, page 2 requirements, then risks per page.
		`[{"description": "Provide managed Kubernetes hosting", "confidence": 0.9}]`,
		`[{"description": "Supply on-site training for administrators", "confidence": 0.9}]`,
		`[]`,
		`[]`,
	)
	a := newAnalyzer(t, client, Config{})

	pages := []docsource.Page{
		{Number: 1, Text: "First page text without risk words."},
		{Number: 2, Text: "Second page text also clean."},
	}
	doc := docsource.New("rfp.pdf", pages[0].Text+pages[1].Text, pages)

	ac, err := a.Analyze(context.Background(), doc)

	require.NoError(t, err)
	require.Len(t, ac.Requirements, 2)
	assert.Equal(t, 1, ac.Requirements[0].SourcePage)
	assert.Equal(t, 2, ac.Requirements[1].SourcePage)
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	a := newAnalyzer(t, llm.NewMockClient(`[]`), Config{})

	_, err := a.Analyze(context.Background(), docsource.New("empty.txt", "", nil))
	require.ErrorIs(t, err, common.ErrNoDocument)
}
