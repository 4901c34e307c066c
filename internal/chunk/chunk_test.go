package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxSize int
	}{
		{name: "empty text", text: "", maxSize: 100},
		{name: "shorter than max", text: "short text", maxSize: 100},
		{name: "exactly max", text: strings.Repeat("a", 100), maxSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, tt.maxSize, 20)
			if tt.text == "" {
				assert.Empty(t, chunks)
				return
			}
			require.Len(t, chunks, 1)
			assert.Equal(t, tt.text, chunks[0])
		})
	}
}

func TestSplit_ChunkLengthBound(t *testing.T) {
	text := strings.Repeat("word ", 1000)

	for _, maxSize := range []int{50, 100, 333} {
		chunks := Split(text, maxSize, 10)
		require.NotEmpty(t, chunks)
		for i, c := range chunks {
			assert.LessOrEqual(t, len(c), maxSize, "chunk %d exceeds max size", i)
		}
	}
}

func TestSplit_CoverageReconstruction(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		maxSize int
		overlap int
	}{
		{
			name:    "plain repeated text",
			text:    strings.Repeat("abcdefghij", 50),
			maxSize: 80,
			overlap: 20,
		},
		{
			name:    "sentence text",
			text:    strings.Repeat("The vendor shall deliver monthly reports. ", 40),
			maxSize: 200,
			overlap: 50,
		},
		{
			name:    "no overlap",
			text:    strings.Repeat("0123456789", 30),
			maxSize: 70,
			overlap: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, tt.maxSize, tt.overlap)
			require.NotEmpty(t, chunks)

			rebuilt := chunks[0]
			for _, c := range chunks[1:] {
				require.GreaterOrEqual(t, len(c), tt.overlap)
				// Each chunk repeats the previous chunk's tail.
				assert.True(t, strings.HasSuffix(rebuilt, c[:tt.overlap]))
				rebuilt += c[tt.overlap:]
			}
			assert.Equal(t, tt.text, rebuilt)
		})
	}
}

func TestSplit_SentenceBoundaryPullback(t *testing.T) {
	// The boundary at maxSize falls mid-sentence, but a ". " exists within the
	// trailing overlap window, so the first chunk should end at the period.
	text := "First sentence here. Second sentence is a bit longer than the first one. Third sentence carries on well past the chunk boundary to force a split."
	chunks := Split(text, 90, 30)

	require.Greater(t, len(chunks), 1)
	assert.True(t, strings.HasSuffix(chunks[0], "."), "chunk should end at a sentence boundary, got %q", chunks[0])
}

func TestSplit_NoBoundaryFallsBackToHardSplit(t *testing.T) {
	text := strings.Repeat("x", 500)
	chunks := Split(text, 100, 25)

	require.Greater(t, len(chunks), 1)
	assert.Len(t, chunks[0], 100)
}

func TestChunks_Restartable(t *testing.T) {
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	seq := Chunks(text, 120, 30)

	first := make([]string, 0)
	for c := range seq {
		first = append(first, c)
	}
	second := make([]string, 0)
	for c := range seq {
		second = append(second, c)
	}

	assert.Equal(t, first, second)
}
