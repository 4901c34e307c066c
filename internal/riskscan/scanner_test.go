package riskscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpscope/internal/model"
)

func TestNewScanner_InvalidPattern(t *testing.T) {
	_, err := NewScanner([]Rule{
		{Category: model.RiskLegal, Pattern: `[unclosed`, Severity: model.SeverityHigh},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile risk pattern")
}

func TestScan_LiabilityClause(t *testing.T) {
	s := NewDefaultScanner()

	risks := s.Scan("Vendor assumes all liability for damages.", nil)

	require.NotEmpty(t, risks)
	found := false
	for _, r := range risks {
		if r.Category == model.RiskLegal && r.Severity == model.SeverityCritical {
			found = true
			assert.Equal(t, PatternConfidence, r.Confidence)
			assert.Equal(t, model.MethodPattern, r.Method)
			assert.Contains(t, strings.ToLower(r.Clause), "assumes all liability")
			assert.NotEmpty(t, r.Recommendation)
		}
	}
	assert.True(t, found, "expected a critical legal finding")
}

func TestScan_CaseInsensitive(t *testing.T) {
	s := NewDefaultScanner()

	risks := s.Scan("THE CONTRACTOR SHALL INDEMNIFY THE AGENCY.", nil)

	require.NotEmpty(t, risks)
	assert.Equal(t, model.RiskLegal, risks[0].Category)
}

func TestScan_ClauseTrimmedToSentenceBoundaries(t *testing.T) {
	s := NewDefaultScanner()
	text := "This is the preceding sentence. The vendor agrees to pay liquidated damages for late delivery. This is the following sentence that runs on for quite a while afterwards."

	risks := s.Scan(text, nil)

	require.NotEmpty(t, risks)
	clause := risks[0].Clause
	assert.NotContains(t, clause, "preceding sentence")
	assert.Contains(t, clause, "liquidated damages")
	assert.True(t, strings.HasSuffix(clause, "."), "clause should end at a sentence boundary, got %q", clause)
}

func TestScan_PageAttribution(t *testing.T) {
	s := NewDefaultScanner()
	page1 := strings.Repeat("Nothing interesting on this page. ", 5)
	page2 := "The supplier shall pay a penalty for each day of delay. "
	page3 := strings.Repeat("More filler text here. ", 5)

	pages := []Page{
		{Number: 1, Text: page1},
		{Number: 2, Text: page2},
		{Number: 3, Text: page3},
	}

	risks := s.Scan(page1+page2+page3, pages)

	require.NotEmpty(t, risks)
	for _, r := range risks {
		if r.Category == model.RiskFinancial {
			assert.Equal(t, 2, r.SourcePage)
		}
	}
}

func TestScan_NoPagesMeansZeroPage(t *testing.T) {
	s := NewDefaultScanner()

	risks := s.Scan("Invoices are payable net-90 after acceptance.", nil)

	require.NotEmpty(t, risks)
	assert.Equal(t, 0, risks[0].SourcePage)
}

func TestScan_EmptyText(t *testing.T) {
	s := NewDefaultScanner()
	assert.Empty(t, s.Scan("", nil))
}

func TestScan_MultipleMatchesSamePattern(t *testing.T) {
	s := NewDefaultScanner()
	text := "A penalty applies to late delivery. A second penalty applies to staffing changes."

	risks := s.Scan(text, nil)

	count := 0
	for _, r := range risks {
		if r.Category == model.RiskFinancial {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestDefaultRules_AllCompile(t *testing.T) {
	assert.NotPanics(t, func() { NewDefaultScanner() })
	assert.NotEmpty(t, DefaultRules())
}
