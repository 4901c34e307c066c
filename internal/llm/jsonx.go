package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseError indicates that no JSON payload could be recovered from a
// generative reply. Callers treat it as zero candidates for the originating
// chunk rather than a fatal failure.
type ParseError struct {
	Msg string
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to recover JSON from model reply: %s", e.Msg)
}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)```")
	fencedAnyRe  = regexp.MustCompile("(?s)```\\s*(.*?)```")
)

// ExtractJSON recovers a JSON array of objects from a free-form model reply.
// Recovery precedence: a fenced json block, a generic fenced block, a raw
// [...] substring found via the first '[' and last ']', and finally a single
// {...} object wrapped into a one-element array. Failing all four, a
// *ParseError is returned.
func ExtractJSON(text string) ([]map[string]any, error) {
	candidates := make([]string, 0, 4)

	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := fencedAnyRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}

	for _, candidate := range candidates {
		if records, ok := decodeRecords(candidate); ok {
			return records, nil
		}
	}

	return nil, &ParseError{Msg: "no parseable JSON array or object found", Raw: text}
}

// decodeRecords parses a candidate payload as either an array of objects or
// a single object, which is wrapped into a one-element array.
func decodeRecords(payload string) ([]map[string]any, bool) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, false
	}

	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err == nil {
		return records, true
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(payload), &record); err == nil {
		return []map[string]any{record}, true
	}

	return nil, false
}
