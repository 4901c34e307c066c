// Package dedupe merges near-identical findings produced across chunks and
// pages into one representative per cluster.
package dedupe

import (
	"strings"

	"rfpscope/internal/model"
)

// DefaultThreshold is the minimum similarity ratio at which two findings are
// considered the same.
const DefaultThreshold = 0.8

// comparePrefix bounds the similarity computation to the head of each text
// for efficiency.
const comparePrefix = 200

// Dedupe removes exact and near-duplicate items, preserving first-occurrence
// order. Tier one eliminates exact duplicates of the normalized text; tier
// two connects pairs whose similarity ratio meets the threshold and keeps
// the first-seen item of each connected component. Deduplication is
// idempotent.
func Dedupe[T model.Item](items []T, threshold float64) []T {
	if len(items) <= 1 {
		return items
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}

	// Tier 1: exact duplicates after normalization.
	seen := make(map[string]struct{}, len(items))
	survivors := make([]T, 0, len(items))
	keys := make([]string, 0, len(items))

	for _, item := range items {
		key := normalize(item.Text())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		survivors = append(survivors, item)
		keys = append(keys, prefix(key))
	}

	if len(survivors) <= 1 {
		return survivors
	}

	// Tier 2: connect near-duplicate pairs and keep one representative per
	// connected component.
	uf := newUnionFind(len(survivors))
	for i := 0; i < len(survivors); i++ {
		for j := i + 1; j < len(survivors); j++ {
			if Ratio(keys[i], keys[j]) >= threshold {
				uf.union(i, j)
			}
		}
	}

	// First-seen representative: the smallest index in each component.
	firstSeen := make(map[int]int, len(survivors))
	for i := range survivors {
		root := uf.find(i)
		if _, ok := firstSeen[root]; !ok {
			firstSeen[root] = i
		}
	}

	out := make([]T, 0, len(survivors))
	for i, item := range survivors {
		if firstSeen[uf.find(i)] == i {
			out = append(out, item)
		}
	}

	return out
}

// normalize lowercases and trims text for comparison.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// prefix caps text at comparePrefix characters.
func prefix(text string) string {
	if len(text) > comparePrefix {
		return text[:comparePrefix]
	}
	return text
}

// unionFind is a minimal disjoint-set over item indices.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	// Attach the later root under the earlier one so the smallest index
	// stays reachable as the representative.
	if ri < rj {
		u.parent[rj] = ri
	} else {
		u.parent[ri] = rj
	}
}
