// Package export renders analysis results for terminals, markdown, and
// machine consumers.
package export

import "github.com/charmbracelet/lipgloss"

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7D56F4")
	// SuccessColor indicates healthy coverage and approvals.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates partial coverage.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates critical findings or weak coverage.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")
)

// Styles contains the styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	Critical lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style

	Box lipgloss.Style
}

// NewStyles creates a Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Success: lipgloss.NewStyle().Foreground(SuccessColor),
		Warning: lipgloss.NewStyle().Foreground(WarningColor),
		Error:   lipgloss.NewStyle().Foreground(ErrorColor),
		Subtle:  lipgloss.NewStyle().Foreground(SubtleColor),
		Normal:  lipgloss.NewStyle(),
	}

	s.Critical = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
	s.High = lipgloss.NewStyle().Bold(true).Foreground(WarningColor)
	s.Medium = lipgloss.NewStyle().Foreground(WarningColor)
	s.Low = lipgloss.NewStyle().Foreground(SubtleColor)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Padding(0, 1)

	return s
}
