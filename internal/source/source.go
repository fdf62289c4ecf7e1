// Package source fetches settings documents that are merged into a scope's
// settings file: a github.com blob URL, any http(s) URL, or a local file.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samhoang/claco/internal/settings"
)

// Fetch returns the raw text of src using the matching provider
func Fetch(ctx context.Context, src string, opts FetchOptions) ([]byte, error) {
	p := DetectProvider(src)
	if p == nil {
		return nil, &SourceError{Op: "fetch", Source: src, Err: ErrProviderNotFound}
	}
	return p.Fetch(ctx, src, opts)
}

// Load fetches src and parses it as settings. YAML sources (.yaml, .yml)
// are converted to JSON first.
func Load(ctx context.Context, src string, opts FetchOptions) (*settings.Settings, error) {
	data, err := Fetch(ctx, src, opts)
	if err != nil {
		return nil, err
	}

	if IsYAML(src) {
		data, err = YAMLToJSON(data)
		if err != nil {
			return nil, &SourceError{Op: "decode yaml", Source: src, Err: err}
		}
	}

	return settings.Parse(src, data)
}

// IsYAML reports whether src names a YAML document
func IsYAML(src string) bool {
	if i := strings.IndexAny(src, "?#"); i >= 0 && strings.Contains(src, "://") {
		src = src[:i]
	}
	switch strings.ToLower(path.Ext(src)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// YAMLToJSON re-encodes a YAML document as JSON text
func YAMLToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(normalizeYAML(doc)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalizeYAML turns map[any]any nodes, which encoding/json cannot
// encode, into map[string]any
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[toString(k)] = normalizeYAML(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.Trim(string(data), `"`)
}
