// Package chunk splits long document text into bounded, overlapping windows
// so generative prompts stay within provider size limits.
package chunk

import (
	"iter"
	"strings"
)

// Default chunking parameters used by the extraction pipeline.
const (
	DefaultMaxSize = 4000
	DefaultOverlap = 200
)

// Chunks returns a lazy, finite, restartable sequence of substrings of text.
// Each chunk is at most maxSize characters long and consecutive chunks
// overlap by overlap characters unless that would exceed the remaining text.
// Chunk boundaries (other than the last) are pulled backward to the nearest
// ". " found within the trailing overlap characters of the window, to avoid
// cutting mid-sentence. Text no longer than maxSize yields a single chunk.
func Chunks(text string, maxSize, overlap int) iter.Seq[string] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxSize {
		overlap = maxSize - 1
	}

	return func(yield func(string) bool) {
		if len(text) <= maxSize {
			if text != "" {
				yield(text)
			}
			return
		}

		start := 0
		for start < len(text) {
			end := start + maxSize
			if end >= len(text) {
				yield(text[start:])
				return
			}

			// Pull the boundary back to the last sentence end inside the
			// trailing overlap window, when one exists.
			window := text[end-overlap : end]
			if idx := strings.LastIndex(window, ". "); idx >= 0 {
				end = end - overlap + idx + 1
			}

			if !yield(text[start:end]) {
				return
			}

			next := end - overlap
			if next <= start {
				next = end
			}
			start = next
		}
	}
}

// Split collects Chunks into a slice.
func Split(text string, maxSize, overlap int) []string {
	var out []string
	for c := range Chunks(text, maxSize, overlap) {
		out = append(out, c)
	}
	return out
}
