package matching

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"rfpscope/internal/model"
)

const (
	// CategoryBonus is added to the base similarity when the
	// requirement and catalog entry share a category.
	CategoryBonus = 0.15

	// ApproveThreshold is the composite score at or above which a
	// match is approved by default.
	ApproveThreshold = 0.80

	// DefaultTopN bounds results for a single-requirement match.
	DefaultTopN = 3

	// DefaultBatchTopN and DefaultBatchMinScore bound results when
	// matching a whole requirement list at once.
	DefaultBatchTopN     = 5
	DefaultBatchMinScore = 0.25
)

// Options tunes a match call. The zero value means "single-call
// defaults": top 3 results, no minimum score.
type Options struct {
	TopN     int
	MinScore float64
}

func (o Options) withDefaults() Options {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	return o
}

// Matcher scores requirements against a fixed service catalog. The
// vectorizer is fitted once at construction over every entry's name,
// description, capabilities, and tags; after that the matcher is
// read-only and safe for concurrent use.
type Matcher struct {
	entries []model.CatalogEntry
	vec     *Vectorizer
	vectors []vector
	logger  *slog.Logger
}

// NewMatcher fits a matcher over the given catalog.
func NewMatcher(entries []model.CatalogEntry, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	docs := make([]string, len(entries))
	for i, e := range entries {
		docs[i] = entryText(e)
	}
	vec := NewVectorizer(docs)
	vectors := make([]vector, len(docs))
	for i, d := range docs {
		vectors[i] = vec.Transform(d)
	}
	return &Matcher{
		entries: entries,
		vec:     vec,
		vectors: vectors,
		logger:  logger,
	}
}

func entryText(e model.CatalogEntry) string {
	parts := make([]string, 0, 2+len(e.Capabilities)+len(e.Tags))
	parts = append(parts, e.Name, e.Description)
	parts = append(parts, e.Capabilities...)
	parts = append(parts, e.Tags...)
	return strings.Join(parts, " ")
}

// Match ranks catalog entries against one requirement. An empty
// catalog yields an empty result, never an error.
func (m *Matcher) Match(req model.Requirement, opts Options) model.MatchResults {
	opts = opts.withDefaults()
	if len(m.entries) == 0 {
		return nil
	}

	reqVec := m.vec.Transform(req.Description)
	results := make(model.MatchResults, 0, len(m.entries))
	for i, entry := range m.entries {
		base := cosine(reqVec, m.vectors[i])
		score := base
		aligned := entry.Category == req.Category
		if aligned {
			score = clamp01(score + CategoryBonus)
		}
		if score < opts.MinScore {
			continue
		}
		results = append(results, model.MatchResult{
			RequirementID:       req.ID,
			RequirementText:     req.Description,
			RequirementCategory: req.Category,
			EntryID:             entry.ID,
			EntryName:           entry.Name,
			EntryCategory:       entry.Category,
			Score:               score,
			Rationale:           rationale(score, aligned, req.Description, entryText(entry)),
			Approved:            score >= ApproveThreshold,
		})
	}

	results.Sort()
	if len(results) > opts.TopN {
		results = results[:opts.TopN]
	}
	m.logger.Debug("matched requirement",
		"requirement_id", req.ID,
		"candidates", len(m.entries),
		"kept", len(results))
	return results
}

// MatchAll runs Match over every requirement with batch defaults and
// concatenates the results.
func (m *Matcher) MatchAll(reqs []model.Requirement) model.MatchResults {
	opts := Options{TopN: DefaultBatchTopN, MinScore: DefaultBatchMinScore}
	var all model.MatchResults
	for _, req := range reqs {
		all = append(all, m.Match(req, opts)...)
	}
	return all
}

// rationale explains a score deterministically: a strength tier, the
// category bonus when applied, and up to five shared substantive
// tokens in alphabetical order.
func rationale(score float64, aligned bool, reqText, entText string) string {
	var b strings.Builder
	switch {
	case score >= ApproveThreshold:
		b.WriteString("Strong match")
	case score >= 0.50:
		b.WriteString("Moderate match")
	default:
		b.WriteString("Weak match")
	}
	fmt.Fprintf(&b, " (score %.2f).", score)

	if shared := sharedTokens(reqText, entText); len(shared) > 0 {
		fmt.Fprintf(&b, " Shared terms: %s.", strings.Join(shared, ", "))
	}
	if aligned {
		fmt.Fprintf(&b, " Category alignment adds a %.2f bonus.", CategoryBonus)
	}
	return b.String()
}

// sharedTokens returns the intersection of non-stopword tokens longer
// than three characters, alphabetically ordered and capped at five.
func sharedTokens(a, b string) []string {
	bSet := make(map[string]bool)
	for _, t := range tokenize(b) {
		bSet[t] = true
	}
	seen := make(map[string]bool)
	var shared []string
	for _, t := range tokenize(a) {
		if len(t) <= 3 || !bSet[t] || seen[t] {
			continue
		}
		seen[t] = true
		shared = append(shared, t)
	}
	sort.Strings(shared)
	if len(shared) > 5 {
		shared = shared[:5]
	}
	return shared
}
