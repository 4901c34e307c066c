package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfpscope/internal/common"
	"rfpscope/internal/llm"
)

func TestExtractor_Requirements(t *testing.T) {
	client := llm.NewMockClient(`[{"description": "Must run on Kubernetes", "category": "technical", "priority": "high", "confidence": 0.9}]`)
	e := NewExtractor(client, Config{}, nil)

	reqs, skipped, err := e.Requirements(context.Background(), "The platform must run on Kubernetes.", 0)

	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Empty(t, skipped)
	assert.Equal(t, "Must run on Kubernetes", reqs[0].Description)
	require.Len(t, client.Prompts, 1)
	assert.Contains(t, client.Prompts[0], "The platform must run on Kubernetes.")
}

func TestExtractor_LongInputIsChunked(t *testing.T) {
	client := llm.NewMockClient(`[{"description": "Chunked requirement"}]`)
	e := NewExtractor(client, Config{ChunkSize: 200, ChunkOverlap: 40}, nil)

	text := strings.Repeat("The vendor shall provide detailed status reports every month. ", 20)
	reqs, _, err := e.Requirements(context.Background(), text, 0)

	require.NoError(t, err)
	assert.Greater(t, len(client.Prompts), 1, "long input should produce one call per chunk")
	// The single mock reply repeats for every chunk.
	assert.Len(t, reqs, len(client.Prompts))
}

func TestExtractor_ParseFailureSkipsChunkOnly(t *testing.T) {
	client := llm.NewMockClient(
		"I found nothing useful to report.",
		`[{"description": "Second chunk requirement"}]`,
	)
	e := NewExtractor(client, Config{ChunkSize: 200, ChunkOverlap: 40}, nil)

	text := strings.Repeat("Deliverables include design documents and source code. ", 10)
	reqs, _, err := e.Requirements(context.Background(), text, 0)

	require.NoError(t, err)
	require.Len(t, client.Prompts, 2)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Second chunk requirement", reqs[0].Description)
}

func TestExtractor_NonRetryableProviderErrorPropagates(t *testing.T) {
	client := llm.NewMockClient().FailWith(&common.RetryableError{
		Err:       assert.AnError,
		Retryable: false,
	})
	e := NewExtractor(client, Config{}, nil)

	_, _, err := e.Requirements(context.Background(), "Some text.", 0)
	require.Error(t, err)
	require.Len(t, client.Prompts, 1, "non-retryable errors must not be retried")
}

func TestExtractor_TransientErrorRetriedThenSurfaced(t *testing.T) {
	client := llm.NewMockClient().FailWith(&common.RetryableError{
		Err:       common.ErrRateLimit,
		Retryable: true,
	})
	e := NewExtractor(client, Config{
		Retry: common.RetryOptions{MaxAttempts: 2, InitialDelay: 1, MaxDelay: 1},
	}, nil)

	_, _, err := e.Requirements(context.Background(), "Some text.", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Len(t, client.Prompts, 2)
}

func TestExtractor_Risks(t *testing.T) {
	client := llm.NewMockClient("```json\n" + `[{"clause": "All IP transfers to the client.", "category": "legal", "severity": "high", "confidence": 0.8}]` + "\n```")
	e := NewExtractor(client, Config{}, nil)

	risks, skipped, err := e.Risks(context.Background(), "All intellectual property transfers to the client upon payment.", 2)

	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, risks, 1)
	assert.Equal(t, 2, risks[0].SourcePage)
}

func TestExtractor_EmptyTextNoCalls(t *testing.T) {
	client := llm.NewMockClient(`[]`)
	e := NewExtractor(client, Config{}, nil)

	reqs, skipped, err := e.Requirements(context.Background(), "", 0)

	require.NoError(t, err)
	assert.Empty(t, reqs)
	assert.Empty(t, skipped)
	assert.Empty(t, client.Prompts)
}
