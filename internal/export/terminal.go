package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rfpscope/internal/matching"
	"rfpscope/internal/model"
	"rfpscope/internal/pipeline"
)

// TerminalFormatter renders an analysis for terminal display.
type TerminalFormatter struct {
	styles *Styles
}

// NewTerminalFormatter creates a formatter with default styles.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{styles: NewStyles()}
}

// FormatSummary creates a high-level summary of an analysis.
func (f *TerminalFormatter) FormatSummary(ac *pipeline.Context) string {
	if ac == nil {
		return f.styles.Error.Render("No analysis available")
	}

	var sections []string
	sections = append(sections, f.formatHeader(ac))
	sections = append(sections, f.formatRequirements(ac.Requirements))
	sections = append(sections, f.formatRisks(ac.Risks))
	if len(ac.Matches) > 0 {
		sections = append(sections, f.formatMatches(ac.Matches))
		sections = append(sections, f.formatCoverage(ac.Coverage))
	}
	return strings.Join(sections, "\n\n")
}

func (f *TerminalFormatter) formatHeader(ac *pipeline.Context) string {
	title := f.styles.Title.Render(fmt.Sprintf("Analysis of %s", ac.DocumentName))
	subtitle := f.styles.Subtitle.Render(fmt.Sprintf("analyzed %s", ac.CreatedAt.Format("2006-01-02 15:04")))
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

func (f *TerminalFormatter) formatRequirements(reqs []model.Requirement) string {
	if len(reqs) == 0 {
		return f.styles.Subtle.Render("No requirements found")
	}

	var b strings.Builder
	b.WriteString(f.styles.Title.Render(fmt.Sprintf("Requirements (%d)", len(reqs))))
	b.WriteString("\n")
	for _, req := range reqs {
		line := fmt.Sprintf("  [%s/%s] %s", req.Category, req.Priority, req.Description)
		if req.SourcePage > 0 {
			line += f.styles.Subtle.Render(fmt.Sprintf(" (p.%d)", req.SourcePage))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *TerminalFormatter) formatRisks(risks []model.Risk) string {
	if len(risks) == 0 {
		return f.styles.Success.Render("No risks detected")
	}

	var b strings.Builder
	b.WriteString(f.styles.Title.Render(fmt.Sprintf("Risks (%d)", len(risks))))
	b.WriteString("\n")
	for _, risk := range risks {
		style := f.severityStyle(risk.Severity)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render(strings.ToUpper(string(risk.Severity))),
			f.styles.Subtle.Render("["+string(risk.Category)+"]"),
			risk.Clause))
		if risk.Recommendation != "" {
			b.WriteString(f.styles.Subtle.Render("    " + risk.Recommendation))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *TerminalFormatter) formatMatches(matches model.MatchResults) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render(fmt.Sprintf("Service Matches (%d)", len(matches))))
	b.WriteString("\n")
	for _, m := range matches {
		approved := " "
		if m.Approved {
			approved = f.styles.Success.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			approved,
			f.scoreStyle(m.Score).Render(fmt.Sprintf("%.2f", m.Score)),
			m.EntryName,
			f.styles.Subtle.Render(m.Rationale)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *TerminalFormatter) formatCoverage(cov model.CoverageSummary) string {
	var b strings.Builder
	b.WriteString(f.styles.Title.Render("Coverage"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Overall: %s (%d/%d approved)\n",
		f.scoreStyle(cov.Overall).Render(fmt.Sprintf("%.0f%%", cov.Overall*100)),
		cov.Approved, cov.Total))
	cats := make([]string, 0, len(cov.ByCategory))
	for cat := range cov.ByCategory {
		cats = append(cats, string(cat))
	}
	sort.Strings(cats)
	for _, cat := range cats {
		score := cov.ByCategory[model.RequirementCategory(cat)]
		b.WriteString(fmt.Sprintf("  %-12s %s\n", cat,
			f.scoreStyle(score).Render(fmt.Sprintf("%.0f%%", score*100))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *TerminalFormatter) severityStyle(severity model.Severity) lipgloss.Style {
	switch severity {
	case model.SeverityCritical:
		return f.styles.Critical
	case model.SeverityHigh:
		return f.styles.High
	case model.SeverityMedium:
		return f.styles.Medium
	default:
		return f.styles.Low
	}
}

func (f *TerminalFormatter) scoreStyle(score float64) lipgloss.Style {
	switch matching.ScoreBand(score) {
	case "green":
		return f.styles.Success
	case "yellow":
		return f.styles.Warning
	default:
		return f.styles.Error
	}
}
