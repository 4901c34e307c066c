// Package catalog loads the service catalog that requirements are
// matched against.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"rfpscope/internal/common"
	"rfpscope/internal/model"
)

// Load reads a catalog from a JSON or YAML file. The document must be
// a mapping with a "services" key holding a list of entries; anything
// else is a structural error, reported before any matcher is built.
// An empty path yields the built-in catalog.
func Load(path string) ([]model.CatalogEntry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	var root any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &root)
	default:
		err = json.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, common.NewStructuralError("catalog %s is not well-formed: %v", path, err)
	}

	return parse(root)
}

func parse(root any) ([]model.CatalogEntry, error) {
	mapping, ok := asMapping(root)
	if !ok {
		return nil, common.NewStructuralError("catalog root must be a mapping")
	}
	rawServices, ok := mapping["services"]
	if !ok {
		return nil, common.NewStructuralError("catalog is missing the required services key")
	}
	list, ok := rawServices.([]any)
	if !ok {
		return nil, common.NewStructuralError("catalog services must be a list")
	}

	entries := make([]model.CatalogEntry, 0, len(list))
	for i, raw := range list {
		fields, ok := asMapping(raw)
		if !ok {
			return nil, common.NewStructuralError("catalog service %d must be a mapping", i)
		}
		entry, err := parseEntry(fields)
		if err != nil {
			return nil, common.NewStructuralError("catalog service %d: %v", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(fields map[string]any) (model.CatalogEntry, error) {
	entry := model.CatalogEntry{
		ID:           stringField(fields, "id"),
		Name:         stringField(fields, "name"),
		Description:  stringField(fields, "description"),
		Capabilities: stringListField(fields, "capabilities"),
		Tags:         stringListField(fields, "tags"),
		SuccessRate:  floatField(fields, "success_rate"),
	}

	rawCategory := stringField(fields, "category")
	category, ok := model.ParseRequirementCategory(rawCategory)
	if !ok {
		slog.Warn("unknown catalog category, substituting default",
			"entry", entry.ID, "category", rawCategory)
	}
	entry.Category = category

	if err := entry.Validate(); err != nil {
		return model.CatalogEntry{}, err
	}
	return entry, nil
}

// asMapping accepts both JSON-style and YAML-style decoded mappings.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func stringListField(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func floatField(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
