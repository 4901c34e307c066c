package matching

import "rfpscope/internal/model"

// CoverageByCategory returns the mean composite score per requirement
// category.
func CoverageByCategory(matches model.MatchResults) map[model.RequirementCategory]float64 {
	sums := make(map[model.RequirementCategory]float64)
	counts := make(map[model.RequirementCategory]int)
	for _, m := range matches {
		sums[m.RequirementCategory] += m.Score
		counts[m.RequirementCategory]++
	}
	out := make(map[model.RequirementCategory]float64, len(sums))
	for cat, sum := range sums {
		out[cat] = sum / float64(counts[cat])
	}
	return out
}

// OverallCoverage returns the mean composite score across all matches,
// or 0.0 for an empty list.
func OverallCoverage(matches model.MatchResults) float64 {
	if len(matches) == 0 {
		return 0.0
	}
	var sum float64
	for _, m := range matches {
		sum += m.Score
	}
	return sum / float64(len(matches))
}

// CountApproved returns how many matches are approved alongside the
// total.
func CountApproved(matches model.MatchResults) (approved, total int) {
	for _, m := range matches {
		if m.Approved {
			approved++
		}
	}
	return approved, len(matches)
}

// Summarize folds the aggregates into a single coverage summary.
func Summarize(matches model.MatchResults) model.CoverageSummary {
	approved, total := CountApproved(matches)
	return model.CoverageSummary{
		ByCategory: CoverageByCategory(matches),
		Overall:    OverallCoverage(matches),
		Approved:   approved,
		Total:      total,
	}
}

// ScoreBand maps a composite score to a traffic-light indicator.
func ScoreBand(score float64) string {
	switch {
	case score >= ApproveThreshold:
		return "green"
	case score >= 0.50:
		return "yellow"
	default:
		return "red"
	}
}
