package model

import "fmt"

// CatalogEntry describes one service offering in the fixed catalog.
// Entries are immutable once loaded; their lifetime matches the matcher
// instance built from them.
type CatalogEntry struct {
	ID           string
	Name         string
	Category     RequirementCategory
	Description  string
	Capabilities []string
	Tags         []string
	SuccessRate  float64
}

// Validate ensures the CatalogEntry has valid data.
func (e *CatalogEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("catalog entry id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("catalog entry %s: name is required", e.ID)
	}
	if e.Description == "" {
		return fmt.Errorf("catalog entry %s: description is required", e.ID)
	}
	if e.SuccessRate < 0.0 || e.SuccessRate > 1.0 {
		return fmt.Errorf("catalog entry %s: success rate must be between 0.0 and 1.0, got %.2f", e.ID, e.SuccessRate)
	}
	return nil
}
