package riskscan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"rfpscope/internal/model"
)

// PatternConfidence is the fixed confidence assigned to every pattern hit.
// Rule matches are trusted above generative hits by convention.
const PatternConfidence = 0.85

// contextWindow is how many characters around a match are considered when
// carving out the clause.
const contextWindow = 100

// Page is one page of document text, used for page attribution of matches.
type Page struct {
	Number int
	Text   string
}

// compiledRule holds a compiled regex pattern with its rule metadata.
type compiledRule struct {
	re *regexp.Regexp
	Rule
}

// Scanner finds known-risk language via the rule table. The table is
// immutable after construction.
type Scanner struct {
	rules []compiledRule
}

// NewScanner compiles the given rules into a scanner. Patterns are matched
// case-insensitively across lines.
func NewScanner(rules []Rule) (*Scanner, error) {
	compiled := make([]compiledRule, 0, len(rules))

	for _, r := range rules {
		re, err := regexp.Compile("(?im)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile risk pattern %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, Rule: r})
	}

	return &Scanner{rules: compiled}, nil
}

// NewDefaultScanner compiles the built-in rule table.
func NewDefaultScanner() *Scanner {
	s, err := NewScanner(DefaultRules())
	if err != nil {
		// The built-in table is covered by tests; a compile failure here is
		// a programming error.
		panic(err)
	}
	return s
}

// Scan detects risk clauses in the full document text. When pages are
// provided, each finding is attributed to the page whose cumulative
// character range contains the match offset.
func (s *Scanner) Scan(text string, pages []Page) []model.Risk {
	if text == "" {
		return nil
	}

	attr := newPageAttributor(pages)
	var risks []model.Risk

	for _, rule := range s.rules {
		for _, m := range rule.re.FindAllStringIndex(text, -1) {
			clause := carveClause(text, m[0], m[1])
			if clause == "" {
				continue
			}

			risks = append(risks, model.Risk{
				ID:             uuid.NewString(),
				Clause:         clause,
				Category:       rule.Category,
				Severity:       rule.Severity,
				Confidence:     PatternConfidence,
				SourcePage:     attr.pageAt(m[0]),
				Method:         model.MethodPattern,
				Recommendation: recommendation(rule.Category, clause),
			})
		}
	}

	return risks
}

// carveClause extracts a ±contextWindow span around the match and trims it
// to the nearest sentence boundaries when they exist within the window.
func carveClause(text string, matchStart, matchEnd int) string {
	start := max(0, matchStart-contextWindow)
	end := min(len(text), matchEnd+contextWindow)

	// Trim to the sentence boundary preceding the match.
	if idx := strings.LastIndex(text[start:matchStart], "."); idx >= 0 {
		start += idx + 1
	}
	// Trim to the sentence boundary following the match, keeping the period.
	if idx := strings.Index(text[matchEnd:end], "."); idx >= 0 {
		end = matchEnd + idx + 1
	}

	return strings.TrimSpace(text[start:end])
}

// recommendation synthesizes generic alternative-language guidance for a
// category; this is a template, not a generative call.
func recommendation(category model.RiskCategory, clause string) string {
	excerpt := clause
	if len(excerpt) > 60 {
		excerpt = excerpt[:60] + "..."
	}
	return fmt.Sprintf("Review the %s risk in %q and propose more balanced terms before committing.", category, excerpt)
}

// pageAttributor maps a character offset in the concatenated document text
// to a page number via a prefix-sum walk over ordered page texts.
type pageAttributor struct {
	bounds []int
	pages  []Page
}

func newPageAttributor(pages []Page) *pageAttributor {
	if len(pages) == 0 {
		return &pageAttributor{}
	}

	bounds := make([]int, len(pages))
	total := 0
	for i, p := range pages {
		total += len(p.Text)
		bounds[i] = total
	}

	return &pageAttributor{bounds: bounds, pages: pages}
}

// pageAt returns the page number containing offset, or 0 when no page texts
// are available.
func (a *pageAttributor) pageAt(offset int) int {
	for i, bound := range a.bounds {
		if offset < bound {
			return a.pages[i].Number
		}
	}
	if len(a.pages) > 0 {
		return a.pages[len(a.pages)-1].Number
	}
	return 0
}
