package matching

import (
	"math"
	"regexp"
	"strings"
)

// tokenRe extracts alphanumeric tokens, keeping hyphenated compounds
// like "auto-scaling" as a single token.
var tokenRe = regexp.MustCompile(`[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*`)

// stopwords are filtered out before weighting so that matches hinge on
// substantive terms rather than connective tissue.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true, "not": true,
	"of": true, "to": true, "in": true, "on": true, "for": true,
	"with": true, "by": true, "at": true, "from": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "has": true, "have": true, "had": true,
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "their": true, "our": true, "your": true,
	"will": true, "would": true, "can": true, "could": true, "may": true,
	"any": true, "all": true, "each": true, "per": true, "via": true,
	"into": true, "over": true, "under": true, "between": true,
	"other": true, "such": true, "than": true, "then": true, "also": true,
}

func tokenize(raw string) []string {
	parts := tokenRe.FindAllString(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(p)
		if stopwords[t] || len(t) <= 1 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// terms expands a token sequence into unigrams plus adjacent bigrams.
func terms(tokens []string) []string {
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// vector is a sparse term-weight mapping, L2-normalized by the
// vectorizer before use so that a dot product is a cosine similarity.
type vector map[string]float64

// Vectorizer holds TF-IDF weights fitted over a fixed document set.
// Every term seen at fit time is kept (rare technical terms matter
// more here, not less); terms unseen at fit time are dropped when
// transforming. Immutable after NewVectorizer, so concurrent reads
// are safe.
type Vectorizer struct {
	idf map[string]float64
}

// NewVectorizer fits inverse document frequencies over docs.
func NewVectorizer(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, d := range docs {
		seen := make(map[string]bool)
		for _, t := range terms(tokenize(d)) {
			if seen[t] {
				continue
			}
			seen[t] = true
			df[t]++
		}
	}
	n := len(docs)
	idf := make(map[string]float64, len(df))
	for t, f := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+f)) + 1.0
	}
	return &Vectorizer{idf: idf}
}

// Transform maps text into the fitted space.
func (v *Vectorizer) Transform(text string) vector {
	tf := make(map[string]float64)
	for _, t := range terms(tokenize(text)) {
		if _, ok := v.idf[t]; !ok {
			continue
		}
		tf[t]++
	}
	vec := make(vector, len(tf))
	var norm float64
	for t, f := range tf {
		w := f * v.idf[t]
		vec[t] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for t := range vec {
			vec[t] /= norm
		}
	}
	return vec
}

// cosine computes the dot product of two normalized vectors.
func cosine(a, b vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return clamp01(dot)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
