package catalog

import "rfpscope/internal/model"

// Default returns the built-in catalog used when no catalog file is
// supplied. It covers the most common engagement shapes so matching
// still produces something useful out of the box.
func Default() []model.CatalogEntry {
	return []model.CatalogEntry{
		{
			ID:           "svc-cloud-infra",
			Name:         "Cloud Infrastructure",
			Category:     model.CategoryTechnical,
			Description:  "Design, provisioning, and operation of cloud environments with containerized workloads and auto-scaling",
			Capabilities: []string{"infrastructure as code", "container orchestration", "managed databases"},
			Tags:         []string{"aws", "kubernetes", "docker", "terraform"},
			SuccessRate:  0.91,
		},
		{
			ID:           "svc-security-compliance",
			Name:         "Security and Compliance",
			Category:     model.CategoryCompliance,
			Description:  "Security assessments, audit preparation, and compliance program implementation for regulated environments",
			Capabilities: []string{"penetration testing", "audit readiness", "policy authoring"},
			Tags:         []string{"hipaa", "fedramp", "soc2", "encryption"},
			SuccessRate:  0.87,
		},
		{
			ID:           "svc-software-delivery",
			Name:         "Custom Software Delivery",
			Category:     model.CategoryFunctional,
			Description:  "Full lifecycle design, development, integration, and maintenance of custom applications and APIs",
			Capabilities: []string{"api development", "system integration", "legacy modernization"},
			Tags:         []string{"golang", "postgresql", "rest", "integration"},
			SuccessRate:  0.84,
		},
	}
}
