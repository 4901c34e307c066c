// Package extract turns free-form generative-model output into validated
// typed requirement and risk records.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"rfpscope/internal/chunk"
	"rfpscope/internal/common"
	"rfpscope/internal/llm"
	"rfpscope/internal/model"
)

// Config holds configuration for the structured extractor.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
	Retry        common.RetryOptions

	// OnChunk, when set, is called before each chunk is sent to the
	// provider. The CLI uses it to drive a progress bar.
	OnChunk func(index, total int)
}

// Extractor runs structured extraction over document text: chunking, one
// generation call per chunk, JSON recovery, and field normalization.
type Extractor struct {
	client llm.Client
	cfg    Config
	logger *slog.Logger
}

// NewExtractor creates a structured extractor backed by the given provider
// client.
func NewExtractor(client llm.Client, cfg Config, logger *slog.Logger) *Extractor {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = chunk.DefaultMaxSize
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = chunk.DefaultOverlap
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Extractor{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// Requirements extracts requirement candidates from text. Inputs longer than
// the chunk size are routed through the chunker; per-chunk candidate lists
// are concatenated in chunk order. A chunk whose reply cannot be parsed as
// JSON contributes zero candidates; provider errors that survive the retry
// policy abort the run.
func (e *Extractor) Requirements(ctx context.Context, text string, pageHint int) ([]model.Requirement, []Skipped, error) {
	raws, err := e.collect(ctx, text, requirementPrompt)
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := NormalizeRequirements(raws, pageHint)
	return valid, skipped, nil
}

// Risks extracts risk-clause candidates from text, with the same chunking
// and failure policy as Requirements.
func (e *Extractor) Risks(ctx context.Context, text string, pageHint int) ([]model.Risk, []Skipped, error) {
	raws, err := e.collect(ctx, text, riskPrompt)
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := NormalizeRisks(raws, pageHint)
	return valid, skipped, nil
}

// collect runs the per-chunk generate/recover loop and concatenates raw
// candidate mappings in chunk order.
func (e *Extractor) collect(ctx context.Context, text string, prompt func(string) string) ([]map[string]any, error) {
	chunks := chunk.Split(text, e.cfg.ChunkSize, e.cfg.ChunkOverlap)
	if len(chunks) == 0 {
		return nil, nil
	}

	var raws []map[string]any
	for i, c := range chunks {
		if e.cfg.OnChunk != nil {
			e.cfg.OnChunk(i, len(chunks))
		}

		records, err := e.extractChunk(ctx, prompt(c))
		if err != nil {
			var parseErr *llm.ParseError
			if errors.As(err, &parseErr) {
				// Local to this chunk: contribute zero candidates, keep going.
				e.logger.Warn("unrecoverable JSON in chunk reply, skipping chunk",
					"chunk", i,
					"chunks", len(chunks),
					"error", err)
				continue
			}
			return nil, fmt.Errorf("chunk %d of %d: %w", i+1, len(chunks), err)
		}

		raws = append(raws, records...)
	}

	return raws, nil
}

// extractChunk performs one provider call under the retry policy and
// recovers the JSON payload from the reply.
func (e *Extractor) extractChunk(ctx context.Context, prompt string) ([]map[string]any, error) {
	var reply string

	err := common.WithRetry(ctx, func() error {
		var genErr error
		reply, genErr = e.client.Generate(ctx, prompt)
		return genErr
	}, e.cfg.Retry)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	return llm.ExtractJSON(reply)
}
