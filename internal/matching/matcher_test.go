package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpscope/internal/model"
)

func testCatalog() []model.CatalogEntry {
	return []model.CatalogEntry{
		{
			ID:           "svc-cloud",
			Name:         "Cloud Infrastructure",
			Category:     model.CategoryTechnical,
			Description:  "Managed cloud deployment with Kubernetes auto-scaling on AWS",
			Capabilities: []string{"aws", "kubernetes"},
			Tags:         []string{"aws", "kubernetes", "docker"},
			SuccessRate:  0.92,
		},
		{
			ID:           "svc-audit",
			Name:         "Compliance Audit",
			Category:     model.CategoryCompliance,
			Description:  "SOC 2 and HIPAA readiness assessments with remediation plans",
			Capabilities: []string{"audit", "gap analysis"},
			Tags:         []string{"hipaa", "soc2"},
			SuccessRate:  0.88,
		},
		{
			ID:           "svc-training",
			Name:         "Staff Training",
			Category:     model.CategoryOperational,
			Description:  "On-site and remote training programs for technical staff",
			Capabilities: []string{"workshops", "certification prep"},
			Tags:         []string{"training"},
			SuccessRate:  0.75,
		},
	}
}

func TestMatch_TopEntryWithCategoryAlignment(t *testing.T) {
	m := NewMatcher(testCatalog(), nil)
	req := model.Requirement{
		ID:          "req-1",
		Description: "Deploy on AWS with Kubernetes auto-scaling",
		Category:    model.CategoryTechnical,
	}

	results := m.Match(req, Options{})

	require.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, "svc-cloud", top.EntryID)
	assert.GreaterOrEqual(t, top.Score, 0.5)
	assert.Contains(t, top.Rationale, "Category alignment")
	assert.Contains(t, top.Rationale, "kubernetes")
}

func TestMatch_ScoreNeverExceedsOne(t *testing.T) {
	// An identical requirement gives a base similarity of 1.0; the
	// category bonus must not push the composite past 1.0.
	catalog := []model.CatalogEntry{{
		ID:          "svc-k8s",
		Name:        "Kubernetes",
		Category:    model.CategoryTechnical,
		Description: "orchestration",
		SuccessRate: 0.9,
	}}
	m := NewMatcher(catalog, nil)
	req := model.Requirement{
		ID:          "req-2",
		Description: "Kubernetes orchestration",
		Category:    model.CategoryTechnical,
	}

	results := m.Match(req, Options{})
	require.NotEmpty(t, results)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)

	for _, r := range m.Match(req, Options{}) {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestMatch_AutoApprovalDefault(t *testing.T) {
	catalog := []model.CatalogEntry{{
		ID:          "svc-k8s",
		Name:        "Kubernetes",
		Category:    model.CategoryTechnical,
		Description: "orchestration",
		SuccessRate: 0.9,
	}}
	m := NewMatcher(catalog, nil)
	req := model.Requirement{
		ID:          "req-3",
		Description: "Kubernetes orchestration",
		Category:    model.CategoryTechnical,
	}

	results := m.Match(req, Options{})
	require.NotEmpty(t, results)
	assert.True(t, results[0].Approved)

	weak := m.Match(model.Requirement{
		ID:          "req-3b",
		Description: "On-site catering services",
		Category:    model.CategoryOperational,
	}, Options{})
	for _, r := range weak {
		assert.False(t, r.Approved)
	}
}

func TestMatch_MinScoreFilters(t *testing.T) {
	m := NewMatcher(testCatalog(), nil)
	req := model.Requirement{
		ID:          "req-4",
		Description: "Deploy on AWS with Kubernetes auto-scaling",
		Category:    model.CategoryTechnical,
	}

	all := m.Match(req, Options{MinScore: 0.0})
	strict := m.Match(req, Options{MinScore: 0.5})

	assert.LessOrEqual(t, len(strict), len(all))
	for _, r := range strict {
		assert.GreaterOrEqual(t, r.Score, 0.5)
	}
}

func TestMatch_TopNTruncates(t *testing.T) {
	m := NewMatcher(testCatalog(), nil)
	req := model.Requirement{
		ID:          "req-5",
		Description: "Deploy on AWS with Kubernetes auto-scaling",
		Category:    model.CategoryTechnical,
	}

	results := m.Match(req, Options{TopN: 1})
	assert.Len(t, results, 1)
	assert.Equal(t, "svc-cloud", results[0].EntryID)
}

func TestMatch_EmptyCatalog(t *testing.T) {
	m := NewMatcher(nil, nil)
	req := model.Requirement{ID: "req-6", Description: "Anything at all"}

	results := m.Match(req, Options{})
	assert.Empty(t, results)
	assert.InDelta(t, 0.0, OverallCoverage(results), 1e-9)
}

func TestMatchAll_EmptyRequirements(t *testing.T) {
	m := NewMatcher(testCatalog(), nil)

	results := m.MatchAll(nil)
	assert.Empty(t, results)
	assert.InDelta(t, 0.0, OverallCoverage(results), 1e-9)
}

func TestMatchAll_BatchDefaults(t *testing.T) {
	m := NewMatcher(testCatalog(), nil)
	reqs := []model.Requirement{
		{ID: "req-7", Description: "Deploy on AWS with Kubernetes auto-scaling", Category: model.CategoryTechnical},
		{ID: "req-8", Description: "Complete a HIPAA compliance audit", Category: model.CategoryCompliance},
	}

	results := m.MatchAll(reqs)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Score, DefaultBatchMinScore)
	}
}

func TestOverallCoverage_Mean(t *testing.T) {
	matches := model.MatchResults{
		{EntryID: "a", Score: 0.9},
		{EntryID: "b", Score: 0.5},
		{EntryID: "c", Score: 0.3},
	}
	assert.InDelta(t, 0.5667, OverallCoverage(matches), 1e-4)
}

func TestCoverageByCategory_SingleCategory(t *testing.T) {
	matches := model.MatchResults{
		{EntryID: "a", RequirementCategory: model.CategoryTechnical, Score: 0.9},
		{EntryID: "b", RequirementCategory: model.CategoryTechnical, Score: 0.3},
	}
	byCat := CoverageByCategory(matches)
	require.Len(t, byCat, 1)
	assert.InDelta(t, 0.6, byCat[model.CategoryTechnical], 1e-9)
}

func TestCoverageByCategory_MultipleCategories(t *testing.T) {
	matches := model.MatchResults{
		{EntryID: "a", RequirementCategory: model.CategoryTechnical, Score: 0.8},
		{EntryID: "b", RequirementCategory: model.CategorySecurity, Score: 0.4},
		{EntryID: "c", RequirementCategory: model.CategorySecurity, Score: 0.6},
	}
	byCat := CoverageByCategory(matches)
	assert.InDelta(t, 0.8, byCat[model.CategoryTechnical], 1e-9)
	assert.InDelta(t, 0.5, byCat[model.CategorySecurity], 1e-9)
}

func TestCountApproved(t *testing.T) {
	matches := model.MatchResults{
		{EntryID: "a", Score: 0.9, Approved: true},
		{EntryID: "b", Score: 0.5},
		{EntryID: "c", Score: 0.85, Approved: true},
	}
	approved, total := CountApproved(matches)
	assert.Equal(t, 2, approved)
	assert.Equal(t, 3, total)
}

func TestSummarize(t *testing.T) {
	matches := model.MatchResults{
		{EntryID: "a", RequirementCategory: model.CategoryTechnical, Score: 0.9, Approved: true},
		{EntryID: "b", RequirementCategory: model.CategoryTechnical, Score: 0.3},
	}
	summary := Summarize(matches)
	assert.InDelta(t, 0.6, summary.Overall, 1e-9)
	assert.InDelta(t, 0.6, summary.ByCategory[model.CategoryTechnical], 1e-9)
	assert.Equal(t, 1, summary.Approved)
	assert.Equal(t, 2, summary.Total)
}

func TestScoreBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "green"},
		{0.80, "green"},
		{0.79, "yellow"},
		{0.50, "yellow"},
		{0.49, "red"},
		{0.0, "red"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreBand(tt.score), "score %.2f", tt.score)
	}
}

func TestVectorizer_Normalization(t *testing.T) {
	v := NewVectorizer([]string{
		"kubernetes deployment pipelines",
		"database migration tooling",
	})
	vec := v.Transform("kubernetes deployment")

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestVectorizer_DropsUnseenTerms(t *testing.T) {
	v := NewVectorizer([]string{"kubernetes deployment"})
	vec := v.Transform("quantum teleportation")
	assert.Empty(t, vec)
}

func TestVectorizer_Bigrams(t *testing.T) {
	v := NewVectorizer([]string{"disaster recovery planning"})
	vec := v.Transform("disaster recovery")
	assert.Contains(t, vec, "disaster recovery")
}

func TestSharedTokens(t *testing.T) {
	shared := sharedTokens(
		"Deploy on AWS with Kubernetes auto-scaling",
		"Managed Kubernetes hosting on AWS with Docker",
	)
	// "aws" is only three characters and is excluded.
	assert.Equal(t, []string{"kubernetes"}, shared)
}
