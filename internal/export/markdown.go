package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"rfpscope/internal/matching"
	"rfpscope/internal/model"
	"rfpscope/internal/pipeline"
)

const markdownTemplate = `# Analysis: {{.DocumentName}}

Analyzed: {{.CreatedAt.Format "2006-01-02 15:04"}}

## Requirements ({{len .Requirements}})

{{- if .Requirements}}
| Category | Priority | Requirement | Confidence | Page |
|----------|----------|-------------|------------|------|
{{- range .Requirements}}
| {{.Category}} | {{.Priority}} | {{escape .Description}} | {{printf "%.2f" .Confidence}} | {{page .SourcePage}} |
{{- end}}
{{- else}}
No requirements found.
{{- end}}

## Risks ({{len .Risks}})

{{- if .Risks}}
{{- range .Risks}}
- **{{.Severity}}** [{{.Category}}] {{escape .Clause}}{{if .Recommendation}}
  - {{escape .Recommendation}}{{end}}
{{- end}}
{{- else}}
No risks detected.
{{- end}}
{{- if .Matches}}

## Service Matches ({{len .Matches}})

| Score | Band | Service | Approved | Rationale |
|-------|------|---------|----------|-----------|
{{- range .Matches}}
| {{printf "%.2f" .Score}} | {{band .Score}} | {{escape .EntryName}} | {{check .Approved}} | {{escape .Rationale}} |
{{- end}}

## Coverage

Overall: **{{printf "%.0f%%" (percent .Coverage.Overall)}}** ({{.Coverage.Approved}}/{{.Coverage.Total}} approved)

{{- range categories .Coverage}}
- {{.Name}}: {{printf "%.0f%%" (percent .Score)}}
{{- end}}
{{- end}}
`

type categoryScore struct {
	Name  string
	Score float64
}

var markdownFuncs = template.FuncMap{
	"escape": func(s string) string {
		return strings.ReplaceAll(strings.ReplaceAll(s, "|", "\\|"), "\n", " ")
	},
	"page": func(p int) string {
		if p <= 0 {
			return "-"
		}
		return fmt.Sprintf("%d", p)
	},
	"band": matching.ScoreBand,
	"check": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
	"percent": func(score float64) float64 { return score * 100 },
	"categories": func(cov model.CoverageSummary) []categoryScore {
		out := make([]categoryScore, 0, len(cov.ByCategory))
		for cat, score := range cov.ByCategory {
			out = append(out, categoryScore{Name: string(cat), Score: score})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out
	},
}

var markdownTmpl = template.Must(template.New("markdown").Funcs(markdownFuncs).Parse(markdownTemplate))

// WriteMarkdown renders an analysis as a markdown report.
func WriteMarkdown(w io.Writer, ac *pipeline.Context) error {
	if ac == nil {
		return fmt.Errorf("analysis context cannot be nil")
	}
	if err := markdownTmpl.Execute(w, ac); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	return nil
}
