// Package riskscan detects known-risk contract language with a static,
// deterministic rule table.
package riskscan

import "rfpscope/internal/model"

// Rule pairs one regex pattern with the category and severity of the risk it
// detects.
type Rule struct {
	Category model.RiskCategory
	Pattern  string
	Severity model.Severity
}

// DefaultRules returns the built-in risk rule table. The table is
// constructed fresh on every call so callers cannot mutate shared state.
func DefaultRules() []Rule {
	return []Rule{
		// Legal exposure.
		{model.RiskLegal, `(?:assumes?|accepts?|bears?)\s+(?:all|full|sole|unlimited)\s+liability`, model.SeverityCritical},
		{model.RiskLegal, `unlimited\s+liability`, model.SeverityCritical},
		{model.RiskLegal, `indemnif(?:y|ies|ication)`, model.SeverityHigh},
		{model.RiskLegal, `hold\s+harmless`, model.SeverityHigh},
		{model.RiskLegal, `waives?\s+(?:all|any)\s+(?:rights?|claims?)`, model.SeverityHigh},
		{model.RiskLegal, `(?:all|exclusive)\s+(?:intellectual\s+property|ip)\s+(?:rights?\s+)?(?:transfers?|belongs?|(?:is|are)\s+assigned)`, model.SeverityHigh},

		// Financial terms.
		{model.RiskFinancial, `liquidated\s+damages`, model.SeverityCritical},
		{model.RiskFinancial, `penalt(?:y|ies)`, model.SeverityHigh},
		{model.RiskFinancial, `net[-\s]?(?:90|120)`, model.SeverityHigh},
		{model.RiskFinancial, `(?:no|without)\s+(?:payment|compensation)\s+until`, model.SeverityHigh},
		{model.RiskFinancial, `at\s+(?:the\s+)?(?:vendor|contractor|supplier)(?:'s)?\s+(?:own\s+)?(?:expense|cost)`, model.SeverityMedium},
		{model.RiskFinancial, `price(?:s)?\s+(?:must|shall)\s+remain\s+(?:firm|fixed)`, model.SeverityMedium},

		// Timeline pressure.
		{model.RiskTimeline, `time\s+is\s+of\s+the\s+essence`, model.SeverityHigh},
		{model.RiskTimeline, `no\s+extensions?\s+(?:will\s+be|shall\s+be|are)\s+(?:granted|permitted|allowed)`, model.SeverityHigh},
		{model.RiskTimeline, `within\s+(?:twenty[-\s]four|24)\s+hours`, model.SeverityHigh},
		{model.RiskTimeline, `(?:must|shall)\s+(?:be\s+)?complet(?:e|ed)\s+(?:no\s+later\s+than|by|within)`, model.SeverityMedium},
		{model.RiskTimeline, `immediate(?:ly)?\s+terminat(?:e|ion)`, model.SeverityMedium},

		// Technical commitments.
		{model.RiskTechnical, `(?:99\.9{1,3}|100)\s*%\s*(?:uptime|availability)`, model.SeverityHigh},
		{model.RiskTechnical, `zero\s+(?:downtime|defects?|data\s+loss)`, model.SeverityHigh},
		{model.RiskTechnical, `(?:must|shall)\s+integrate\s+with\s+all`, model.SeverityMedium},
		{model.RiskTechnical, `legacy\s+system`, model.SeverityMedium},

		// Compliance obligations.
		{model.RiskCompliance, `audit(?:s)?\s+(?:at\s+any\s+time|without\s+(?:prior\s+)?notice)`, model.SeverityHigh},
		{model.RiskCompliance, `right\s+to\s+audit`, model.SeverityMedium},
		{model.RiskCompliance, `\b(?:hipaa|gdpr|pci[-\s]?dss|fedramp|sox|cmmc|fisma)\b`, model.SeverityMedium},
		{model.RiskCompliance, `certif(?:ied|ication)\s+(?:is\s+)?(?:required|mandatory)`, model.SeverityMedium},
	}
}
