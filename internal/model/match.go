package model

import (
	"fmt"
	"sort"
)

// MatchResult scores one catalog entry against one requirement. Immutable
// after construction except Approved, which the caller may toggle; the
// matcher only sets its default.
type MatchResult struct {
	RequirementID       string
	RequirementText     string
	RequirementCategory RequirementCategory
	EntryID             string
	EntryName           string
	EntryCategory       RequirementCategory
	Score               float64
	Rationale           string
	Approved            bool
}

// Validate ensures the MatchResult has valid data.
func (m *MatchResult) Validate() error {
	if m.EntryID == "" {
		return fmt.Errorf("match result entry id is required")
	}
	if m.Score < 0.0 || m.Score > 1.0 {
		return fmt.Errorf("score must be between 0.0 and 1.0, got %.2f", m.Score)
	}
	return nil
}

// Serializable returns a plain nested mapping suitable for persistence and
// export.
func (m MatchResult) Serializable() map[string]any {
	return map[string]any{
		"requirement_id":       m.RequirementID,
		"requirement_text":     m.RequirementText,
		"requirement_category": string(m.RequirementCategory),
		"entry_id":             m.EntryID,
		"entry_name":           m.EntryName,
		"entry_category":       string(m.EntryCategory),
		"score":                m.Score,
		"rationale":            m.Rationale,
		"approved":             m.Approved,
	}
}

// MatchResults is a slice of MatchResult that supports sorting and utility
// methods.
type MatchResults []MatchResult

// Sort orders the results by score descending, breaking ties by entry name
// for deterministic output.
func (r MatchResults) Sort() {
	sort.SliceStable(r, func(i, j int) bool {
		if r[i].Score != r[j].Score {
			return r[i].Score > r[j].Score
		}
		return r[i].EntryName < r[j].EntryName
	})
}

// Top returns the highest-scoring result, or nil if empty.
func (r MatchResults) Top() *MatchResult {
	if len(r) == 0 {
		return nil
	}
	r.Sort()
	return &r[0]
}

// CoverageSummary aggregates match scores overall and per category.
type CoverageSummary struct {
	ByCategory map[RequirementCategory]float64
	Overall    float64
	Approved   int
	Total      int
}

// Serializable returns a plain nested mapping suitable for persistence and
// export.
func (c CoverageSummary) Serializable() map[string]any {
	byCat := make(map[string]any, len(c.ByCategory))
	for cat, score := range c.ByCategory {
		byCat[string(cat)] = score
	}
	return map[string]any{
		"by_category": byCat,
		"overall":     c.Overall,
		"approved":    c.Approved,
		"total":       c.Total,
	}
}
