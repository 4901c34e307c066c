package extract

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"rfpscope/internal/common"
	"rfpscope/internal/model"
)

// defaultConfidence is assigned when a generative candidate omits its
// confidence field.
const defaultConfidence = 0.5

// Skipped records one candidate rejected during normalization, with the
// reason it was rejected.
type Skipped struct {
	Index  int
	Reason string
}

// NormalizeRequirement coerces one raw candidate mapping into a typed
// Requirement. It fails only when the description is missing or blank;
// unknown enum values are substituted with defaults and out-of-range
// confidence is clamped, both with a logged warning.
func NormalizeRequirement(raw map[string]any, defaultPage int) (model.Requirement, error) {
	description := stringField(raw, "description")
	if description == "" {
		return model.Requirement{}, &common.ValidationError{Field: "description", Msg: "missing or blank"}
	}

	category, ok := model.ParseRequirementCategory(stringField(raw, "category"))
	if !ok {
		slog.Warn("unknown requirement category, substituting default",
			"raw_value", raw["category"],
			"default", category)
	}

	priority, ok := model.ParsePriority(stringField(raw, "priority"))
	if !ok {
		slog.Warn("unknown requirement priority, substituting default",
			"raw_value", raw["priority"],
			"default", priority)
	}

	return model.Requirement{
		ID:          uuid.NewString(),
		Description: description,
		Category:    category,
		Priority:    priority,
		Confidence:  confidenceField(raw),
		SourcePage:  pageField(raw, defaultPage),
		Method:      model.MethodGenerative,
	}, nil
}

// NormalizeRisk coerces one raw candidate mapping into a typed Risk. It
// fails only when the clause is missing or blank.
func NormalizeRisk(raw map[string]any, defaultPage int) (model.Risk, error) {
	clause := stringField(raw, "clause")
	if clause == "" {
		// Some replies label the clause as a description.
		clause = stringField(raw, "description")
	}
	if clause == "" {
		return model.Risk{}, &common.ValidationError{Field: "clause", Msg: "missing or blank"}
	}

	category, ok := model.ParseRiskCategory(stringField(raw, "category"))
	if !ok {
		slog.Warn("unknown risk category, substituting default",
			"raw_value", raw["category"],
			"default", category)
	}

	severity, ok := model.ParseSeverity(stringField(raw, "severity"))
	if !ok {
		slog.Warn("unknown risk severity, substituting default",
			"raw_value", raw["severity"],
			"default", severity)
	}

	return model.Risk{
		ID:             uuid.NewString(),
		Clause:         clause,
		Category:       category,
		Severity:       severity,
		Confidence:     confidenceField(raw),
		SourcePage:     pageField(raw, defaultPage),
		Method:         model.MethodGenerative,
		Recommendation: stringField(raw, "recommendation"),
	}, nil
}

// NormalizeRequirements folds a batch of raw candidates into valid
// requirements plus the skipped remainder. A single malformed candidate
// never aborts the batch.
func NormalizeRequirements(raws []map[string]any, defaultPage int) ([]model.Requirement, []Skipped) {
	valid := make([]model.Requirement, 0, len(raws))
	var skipped []Skipped

	for i, raw := range raws {
		req, err := NormalizeRequirement(raw, defaultPage)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Reason: err.Error()})
			continue
		}
		valid = append(valid, req)
	}

	return valid, skipped
}

// NormalizeRisks folds a batch of raw candidates into valid risks plus the
// skipped remainder.
func NormalizeRisks(raws []map[string]any, defaultPage int) ([]model.Risk, []Skipped) {
	valid := make([]model.Risk, 0, len(raws))
	var skipped []Skipped

	for i, raw := range raws {
		risk, err := NormalizeRisk(raw, defaultPage)
		if err != nil {
			skipped = append(skipped, Skipped{Index: i, Reason: err.Error()})
			continue
		}
		valid = append(valid, risk)
	}

	return valid, skipped
}

// stringField returns the trimmed string value of a key, or "".
func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// confidenceField parses the confidence value, accepting numbers and numeric
// strings, and clamps it into [0,1] with a warning instead of rejecting.
func confidenceField(raw map[string]any) float64 {
	var confidence float64
	switch v := raw["confidence"].(type) {
	case float64:
		confidence = v
	case int:
		confidence = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			slog.Warn("unparseable confidence, substituting default",
				"raw_value", v,
				"default", defaultConfidence)
			return defaultConfidence
		}
		confidence = parsed
	default:
		return defaultConfidence
	}

	if confidence < 0.0 || confidence > 1.0 {
		clamped := min(max(confidence, 0.0), 1.0)
		slog.Warn("confidence out of range, clamping",
			"raw_value", confidence,
			"clamped", clamped)
		return clamped
	}

	return confidence
}

// pageField returns the candidate's own page number when present and
// positive, falling back to the caller's page hint.
func pageField(raw map[string]any, defaultPage int) int {
	switch v := raw["page"].(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			return n
		}
	}
	if defaultPage >= 1 {
		return defaultPage
	}
	return 0
}
