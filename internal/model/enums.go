package model

import "strings"

// ParseRequirementCategory matches a raw string against the requirement
// category enumeration, case-insensitively. The second return reports whether
// the raw value was recognized; callers substitute DefaultRequirementCategory
// and log the raw value when it was not.
func ParseRequirementCategory(raw string) (RequirementCategory, bool) {
	switch RequirementCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryTechnical:
		return CategoryTechnical, true
	case CategoryFunctional:
		return CategoryFunctional, true
	case CategorySecurity:
		return CategorySecurity, true
	case CategoryCompliance:
		return CategoryCompliance, true
	case CategoryOperational:
		return CategoryOperational, true
	}
	return DefaultRequirementCategory, false
}

// ParsePriority matches a raw string against the priority enumeration,
// case-insensitively.
func ParsePriority(raw string) (Priority, bool) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityCritical:
		return PriorityCritical, true
	case PriorityHigh:
		return PriorityHigh, true
	case PriorityMedium:
		return PriorityMedium, true
	case PriorityLow:
		return PriorityLow, true
	}
	return DefaultPriority, false
}

// ParseRiskCategory matches a raw string against the risk category
// enumeration, case-insensitively.
func ParseRiskCategory(raw string) (RiskCategory, bool) {
	switch RiskCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case RiskLegal:
		return RiskLegal, true
	case RiskFinancial:
		return RiskFinancial, true
	case RiskTimeline:
		return RiskTimeline, true
	case RiskTechnical:
		return RiskTechnical, true
	case RiskCompliance:
		return RiskCompliance, true
	}
	return DefaultRiskCategory, false
}

// ParseSeverity matches a raw string against the severity enumeration,
// case-insensitively.
func ParseSeverity(raw string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityCritical:
		return SeverityCritical, true
	case SeverityHigh:
		return SeverityHigh, true
	case SeverityMedium:
		return SeverityMedium, true
	case SeverityLow:
		return SeverityLow, true
	}
	return DefaultSeverity, false
}
