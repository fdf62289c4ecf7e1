// Package settings loads, migrates, merges and saves Claude Code settings.json
// documents, and edits their hooks section.
//
// A Settings value keeps every top-level key it does not model in an
// extension bag so that a load/save cycle never drops user configuration.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// HookTypeCommand is the hook type written for new hooks and assumed for
// legacy hooks that omit it.
const HookTypeCommand = "command"

const hooksKey = "hooks"

// Hook is a single command binding inside a matcher
type Hook struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"` // seconds
}

// HookMatcher groups the hooks that fire for one matcher pattern
type HookMatcher struct {
	Matcher string `json:"matcher"`
	Hooks   []Hook `json:"hooks"`
}

// Settings represents a Claude Code settings.json file.
//
// Hooks is nil when the document has no "hooks" key. Other holds every
// remaining top-level key as compact raw JSON and never contains "hooks".
type Settings struct {
	Hooks map[string][]HookMatcher
	Other map[string]json.RawMessage
}

// New creates an empty Settings value
func New() *Settings {
	return &Settings{
		Other: make(map[string]json.RawMessage),
	}
}

// Get decodes the extension-bag value stored under key
func (s *Settings) Get(key string) (any, bool) {
	raw, ok := s.Other[key]
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

// Set stores value under key in the extension bag. Setting "hooks" is
// rejected; use the hook operations instead.
func (s *Settings) Set(key string, value any) error {
	if key == hooksKey {
		return fmt.Errorf("%q is not an extension field", key)
	}
	data, err := marshalCompact(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if s.Other == nil {
		s.Other = make(map[string]json.RawMessage)
	}
	s.Other[key] = data
	return nil
}

// Clone returns a deep copy of s
func (s *Settings) Clone() *Settings {
	c := New()
	for k, v := range s.Other {
		c.Other[k] = append(json.RawMessage(nil), v...)
	}
	if s.Hooks != nil {
		c.Hooks = make(map[string][]HookMatcher, len(s.Hooks))
		for event, matchers := range s.Hooks {
			c.Hooks[event] = cloneMatchers(matchers)
		}
	}
	return c
}

func cloneMatchers(matchers []HookMatcher) []HookMatcher {
	out := make([]HookMatcher, len(matchers))
	for i, m := range matchers {
		out[i] = HookMatcher{
			Matcher: m.Matcher,
			Hooks:   append([]Hook(nil), m.Hooks...),
		}
	}
	return out
}

// MarshalJSON writes the extension bag and the hooks back into one object
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.Other)+1)
	for k, v := range s.Other {
		if k == hooksKey {
			continue
		}
		out[k] = v
	}
	if s.Hooks != nil {
		hooks, err := marshalCompact(s.Hooks)
		if err != nil {
			return nil, err
		}
		out[hooksKey] = hooks
	}
	return marshalCompact(out)
}

// UnmarshalJSON is the strict parse: hooks must match the current schema
func (s *Settings) UnmarshalJSON(data []byte) error {
	parsed, err := decodeStrict(data)
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}

// schemaError reports a document that is valid JSON but not valid settings.
// Offset follows json.SyntaxError: the offending value starts at byte
// Offset-1. Zero means the location is unknown.
type schemaError struct {
	Path   string
	Msg    string
	Err    error
	Offset int64
}

func (e *schemaError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *schemaError) Unwrap() error {
	return e.Err
}

// jsonPath addresses a value: object keys are strings, array indices ints
type jsonPath []any

func (p jsonPath) at(steps ...any) jsonPath {
	return append(p[:len(p):len(p)], steps...)
}

func (p jsonPath) String() string {
	var b strings.Builder
	for _, step := range p {
		switch step := step.(type) {
		case string:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(step)
		case int:
			fmt.Fprintf(&b, "[%d]", step)
		}
	}
	return b.String()
}

// decoder is the strict parse. Keys are matched exactly; encoding/json
// struct decoding would also accept "Hooks" or "TYPE".
type decoder struct {
	data []byte
}

// fail builds a schemaError located at the value addressed by path
func (d *decoder) fail(path jsonPath, msg string, err error) *schemaError {
	e := &schemaError{Path: path.String(), Msg: msg, Err: err}
	if off, ok := valueOffset(d.data, path); ok {
		e.Offset = off + 1
	}
	return e
}

func (d *decoder) missing(path jsonPath, field string) *schemaError {
	return d.fail(path, fmt.Sprintf("missing field %q", field), nil)
}

// object decodes raw as a JSON object; null is not an object
func (d *decoder) object(path jsonPath, raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, d.fail(path, "", err)
	}
	if fields == nil {
		return nil, d.fail(path, "expected an object, got null", nil)
	}
	return fields, nil
}

func (d *decoder) value(path jsonPath, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return d.fail(path, "", err)
	}
	return nil
}

// decodeStrict parses data into Settings without any legacy fallback
func decodeStrict(data []byte) (*Settings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	d := &decoder{data: data}
	if raw == nil {
		return nil, d.fail(nil, "settings must be a JSON object, got null", nil)
	}

	s := New()
	for k, v := range raw {
		if k == hooksKey {
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return nil, err
		}
		s.Other[k] = buf.Bytes()
	}

	hooksRaw, ok := raw[hooksKey]
	if !ok || isNull(hooksRaw) {
		return s, nil
	}

	hooks, err := d.hooks(jsonPath{hooksKey}, hooksRaw)
	if err != nil {
		return nil, err
	}
	s.Hooks = hooks
	return s, nil
}

func (d *decoder) hooks(path jsonPath, raw json.RawMessage) (map[string][]HookMatcher, error) {
	events, err := d.object(path, raw)
	if err != nil {
		return nil, err
	}

	hooks := make(map[string][]HookMatcher, len(events))
	for event, eventRaw := range events {
		eventPath := path.at(event)
		var matchers []json.RawMessage
		if err := d.value(eventPath, eventRaw, &matchers); err != nil {
			return nil, err
		}

		converted := make([]HookMatcher, 0, len(matchers))
		for i, m := range matchers {
			hm, err := d.matcher(eventPath.at(i), m)
			if err != nil {
				return nil, err
			}
			converted = append(converted, hm)
		}
		hooks[event] = converted
	}
	return hooks, nil
}

func (d *decoder) matcher(path jsonPath, raw json.RawMessage) (HookMatcher, error) {
	var hm HookMatcher
	fields, err := d.object(path, raw)
	if err != nil {
		return hm, err
	}

	if v, ok := fields["matcher"]; ok && !isNull(v) {
		if err := d.value(path.at("matcher"), v, &hm.Matcher); err != nil {
			return hm, err
		}
	}

	hooksRaw, ok := fields["hooks"]
	if !ok || isNull(hooksRaw) {
		return hm, d.missing(path, "hooks")
	}
	var hooks []json.RawMessage
	if err := d.value(path.at("hooks"), hooksRaw, &hooks); err != nil {
		return hm, err
	}

	hm.Hooks = make([]Hook, 0, len(hooks))
	for j, h := range hooks {
		hook, err := d.hook(path.at("hooks", j), h)
		if err != nil {
			return hm, err
		}
		hm.Hooks = append(hm.Hooks, hook)
	}
	return hm, nil
}

func (d *decoder) hook(path jsonPath, raw json.RawMessage) (Hook, error) {
	var h Hook
	fields, err := d.object(path, raw)
	if err != nil {
		return h, err
	}

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"type", &h.Type},
		{"command", &h.Command},
	} {
		v, ok := fields[f.name]
		if !ok || isNull(v) {
			return h, d.missing(path, f.name)
		}
		if err := d.value(path.at(f.name), v, f.dst); err != nil {
			return h, err
		}
	}

	if v, ok := fields["timeout"]; ok && !isNull(v) {
		if err := d.value(path.at("timeout"), v, &h.Timeout); err != nil {
			return h, err
		}
	}
	return h, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// valueOffset returns the byte offset where the value at path starts. With
// duplicate keys the first occurrence is reported.
func valueOffset(data []byte, path jsonPath) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	for _, step := range path {
		tok, err := dec.Token()
		if err != nil {
			return 0, false
		}

		switch step := step.(type) {
		case string:
			if tok != json.Delim('{') {
				return 0, false
			}
		keys:
			for {
				if !dec.More() {
					return 0, false
				}
				key, err := dec.Token()
				if err != nil {
					return 0, false
				}
				if k, ok := key.(string); ok && k == step {
					break keys
				}
				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					return 0, false
				}
			}
		case int:
			if tok != json.Delim('[') {
				return 0, false
			}
			for k := 0; k < step; k++ {
				var skip json.RawMessage
				if !dec.More() || dec.Decode(&skip) != nil {
					return 0, false
				}
			}
			if !dec.More() {
				return 0, false
			}
		}
	}

	// The decoder stops before separators; skip to the value itself
	off := dec.InputOffset()
	for off < int64(len(data)) && strings.IndexByte(" \t\r\n:,", data[off]) >= 0 {
		off++
	}
	return off, true
}

// marshalCompact encodes v without HTML escaping so commands like
// "a && b" stay readable on disk
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
