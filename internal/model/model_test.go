package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Requirement
		wantErr bool
	}{
		{
			name: "valid",
			req:  Requirement{ID: "r1", Description: "Provide hosting", Confidence: 0.8},
		},
		{
			name:    "missing description",
			req:     Requirement{ID: "r1", Confidence: 0.8},
			wantErr: true,
		},
		{
			name:    "confidence above one",
			req:     Requirement{ID: "r1", Description: "x", Confidence: 1.2},
			wantErr: true,
		},
		{
			name:    "negative page",
			req:     Requirement{ID: "r1", Description: "x", Confidence: 0.5, SourcePage: -1},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRiskValidate(t *testing.T) {
	risk := Risk{ID: "k1", Clause: "Vendor assumes all liability.", Confidence: 0.85}
	assert.NoError(t, risk.Validate())

	risk.Clause = ""
	assert.Error(t, risk.Validate())

	risk.Clause = "x"
	risk.Confidence = -0.1
	assert.Error(t, risk.Validate())
}

func TestCatalogEntryValidate(t *testing.T) {
	entry := CatalogEntry{ID: "s1", Name: "Hosting", Description: "Managed hosting", SuccessRate: 0.9}
	assert.NoError(t, entry.Validate())

	entry.SuccessRate = 1.3
	assert.Error(t, entry.Validate())

	entry.SuccessRate = 0.9
	entry.Name = ""
	assert.Error(t, entry.Validate())
}

func TestMatchResultValidate(t *testing.T) {
	m := MatchResult{EntryID: "s1", Score: 0.7}
	assert.NoError(t, m.Validate())

	m.Score = 1.4
	assert.Error(t, m.Validate())

	m.Score = 0.7
	m.EntryID = ""
	assert.Error(t, m.Validate())
}

func TestParseHelpers(t *testing.T) {
	cat, ok := ParseRequirementCategory("Security")
	assert.True(t, ok)
	assert.Equal(t, CategorySecurity, cat)

	cat, ok = ParseRequirementCategory("gibberish")
	assert.False(t, ok)
	assert.Equal(t, DefaultRequirementCategory, cat)

	prio, ok := ParsePriority("CRITICAL")
	assert.True(t, ok)
	assert.Equal(t, PriorityCritical, prio)

	riskCat, ok := ParseRiskCategory("financial")
	assert.True(t, ok)
	assert.Equal(t, RiskFinancial, riskCat)

	sev, ok := ParseSeverity("unknown")
	assert.False(t, ok)
	assert.Equal(t, DefaultSeverity, sev)
}

func TestMatchResultsSortAndTop(t *testing.T) {
	results := MatchResults{
		{EntryID: "b", EntryName: "Bravo", Score: 0.5},
		{EntryID: "a", EntryName: "Alpha", Score: 0.9},
		{EntryID: "c", EntryName: "Charlie", Score: 0.9},
	}

	results.Sort()
	assert.Equal(t, "Alpha", results[0].EntryName)
	assert.Equal(t, "Charlie", results[1].EntryName)
	assert.Equal(t, "Bravo", results[2].EntryName)

	top := results.Top()
	require.NotNil(t, top)
	assert.Equal(t, "a", top.EntryID)

	var empty MatchResults
	assert.Nil(t, empty.Top())
}

func TestSerializable(t *testing.T) {
	m := MatchResult{
		RequirementID:       "r1",
		RequirementCategory: CategoryTechnical,
		EntryID:             "s1",
		EntryName:           "Hosting",
		EntryCategory:       CategoryTechnical,
		Score:               0.75,
		Rationale:           "Moderate match",
		Approved:            false,
	}
	got := m.Serializable()
	assert.Equal(t, "technical", got["requirement_category"])
	assert.Equal(t, 0.75, got["score"])

	cov := CoverageSummary{
		ByCategory: map[RequirementCategory]float64{CategoryTechnical: 0.75},
		Overall:    0.75,
		Approved:   0,
		Total:      1,
	}
	covMap := cov.Serializable()
	byCat, ok := covMap["by_category"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.75, byCat["technical"])
}

func TestItemInterface(t *testing.T) {
	var items []Item
	items = append(items,
		Requirement{Description: "Provide hosting", Confidence: 0.8},
		Risk{Clause: "Vendor assumes all liability.", Confidence: 0.85},
	)
	assert.Equal(t, "Provide hosting", items[0].Text())
	assert.InDelta(t, 0.85, items[1].ConfidenceScore(), 1e-9)
}
