package export

import (
	"encoding/json"
	"fmt"
	"io"

	"rfpscope/internal/model"
	"rfpscope/internal/pipeline"
)

// Serialize converts an analysis into a plain nested mapping suitable
// for persistence and machine export.
func Serialize(ac *pipeline.Context) map[string]any {
	reqs := make([]map[string]any, 0, len(ac.Requirements))
	for _, req := range ac.Requirements {
		reqs = append(reqs, serializeRequirement(req))
	}
	risks := make([]map[string]any, 0, len(ac.Risks))
	for _, risk := range ac.Risks {
		risks = append(risks, serializeRisk(risk))
	}
	matches := make([]map[string]any, 0, len(ac.Matches))
	for _, m := range ac.Matches {
		matches = append(matches, m.Serializable())
	}

	return map[string]any{
		"id":            ac.ID,
		"document_id":   ac.DocumentID,
		"document_name": ac.DocumentName,
		"created_at":    ac.CreatedAt,
		"requirements":  reqs,
		"risks":         risks,
		"matches":       matches,
		"coverage":      ac.Coverage.Serializable(),
	}
}

func serializeRequirement(req model.Requirement) map[string]any {
	return map[string]any{
		"id":          req.ID,
		"description": req.Description,
		"category":    string(req.Category),
		"priority":    string(req.Priority),
		"confidence":  req.Confidence,
		"source_page": req.SourcePage,
		"method":      string(req.Method),
		"verified":    req.Verified,
	}
}

func serializeRisk(risk model.Risk) map[string]any {
	return map[string]any{
		"id":             risk.ID,
		"clause":         risk.Clause,
		"category":       string(risk.Category),
		"severity":       string(risk.Severity),
		"confidence":     risk.Confidence,
		"source_page":    risk.SourcePage,
		"method":         string(risk.Method),
		"recommendation": risk.Recommendation,
		"acknowledged":   risk.Acknowledged,
	}
}

// WriteJSON renders an analysis as indented JSON.
func WriteJSON(w io.Writer, ac *pipeline.Context) error {
	if ac == nil {
		return fmt.Errorf("analysis context cannot be nil")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Serialize(ac)); err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	return nil
}
