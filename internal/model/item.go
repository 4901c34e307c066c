// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// DetectionMethod indicates how an item was produced.
type DetectionMethod string

// Detection method constants.
const (
	MethodPattern    DetectionMethod = "pattern"
	MethodGenerative DetectionMethod = "generative"
	MethodManual     DetectionMethod = "manual"
)

// RequirementCategory classifies a requirement statement.
type RequirementCategory string

// Requirement category constants.
const (
	CategoryTechnical   RequirementCategory = "technical"
	CategoryFunctional  RequirementCategory = "functional"
	CategorySecurity    RequirementCategory = "security"
	CategoryCompliance  RequirementCategory = "compliance"
	CategoryOperational RequirementCategory = "operational"
)

// DefaultRequirementCategory is substituted when a raw category string does
// not match the closed enumeration.
const DefaultRequirementCategory = CategoryTechnical

// RequirementCategories lists every valid requirement category.
var RequirementCategories = []RequirementCategory{
	CategoryTechnical,
	CategoryFunctional,
	CategorySecurity,
	CategoryCompliance,
	CategoryOperational,
}

// Priority expresses how important a requirement is.
type Priority string

// Priority constants.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// DefaultPriority is substituted when a raw priority string does not match
// the closed enumeration.
const DefaultPriority = PriorityMedium

// RiskCategory classifies a risk clause.
type RiskCategory string

// Risk category constants.
const (
	RiskLegal      RiskCategory = "legal"
	RiskFinancial  RiskCategory = "financial"
	RiskTimeline   RiskCategory = "timeline"
	RiskTechnical  RiskCategory = "technical"
	RiskCompliance RiskCategory = "compliance"
)

// DefaultRiskCategory is substituted when a raw category string does not
// match the closed enumeration.
const DefaultRiskCategory = RiskLegal

// Severity expresses how serious a risk clause is.
type Severity string

// Severity constants.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// DefaultSeverity is substituted when a raw severity string does not match
// the closed enumeration.
const DefaultSeverity = SeverityMedium

// Requirement is a single requirement statement extracted from a proposal
// request. The pipeline owns a Requirement until it is emitted in a final
// list; afterwards the caller owns it and may toggle Verified.
type Requirement struct {
	ID          string
	Description string
	Category    RequirementCategory
	Priority    Priority
	Confidence  float64
	SourcePage  int // 0 when the source page is unknown
	Method      DetectionMethod
	Verified    bool
}

// Text returns the deduplication text for the requirement.
func (r Requirement) Text() string { return r.Description }

// ConfidenceScore returns the extraction confidence.
func (r Requirement) ConfidenceScore() float64 { return r.Confidence }

// Validate ensures the Requirement has valid data.
func (r *Requirement) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("requirement description is required")
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", r.Confidence)
	}
	if r.SourcePage < 0 {
		return fmt.Errorf("source page must be positive, got %d", r.SourcePage)
	}
	return nil
}

// Risk is a single risk clause detected in a proposal request. The caller
// owns a Risk once emitted and may toggle Acknowledged.
type Risk struct {
	ID             string
	Clause         string
	Category       RiskCategory
	Severity       Severity
	Confidence     float64
	SourcePage     int // 0 when the source page is unknown
	Method         DetectionMethod
	Recommendation string
	Acknowledged   bool
}

// Text returns the deduplication text for the risk.
func (r Risk) Text() string { return r.Clause }

// ConfidenceScore returns the detection confidence.
func (r Risk) ConfidenceScore() float64 { return r.Confidence }

// Validate ensures the Risk has valid data.
func (r *Risk) Validate() error {
	if r.Clause == "" {
		return fmt.Errorf("risk clause is required")
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", r.Confidence)
	}
	if r.SourcePage < 0 {
		return fmt.Errorf("source page must be positive, got %d", r.SourcePage)
	}
	return nil
}

// Item is the behavior shared by extracted requirement and risk records.
// Deduplication and confidence filtering operate on this interface.
type Item interface {
	Text() string
	ConfidenceScore() float64
}
