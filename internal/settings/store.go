package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	errs "github.com/samhoang/claco/internal/errors"
	"github.com/samhoang/claco/internal/logging"
)

// staleTempAge is how old a leftover temp file must be before Save treats it
// as the debris of a crashed writer rather than a concurrent one.
const staleTempAge = time.Minute

// Load reads the settings file at path. A missing file yields an empty
// Settings value. Legacy layouts are migrated in memory; the file itself is
// only rewritten by Save.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("settings file not found, using defaults", "path", path)
			return New(), nil
		}
		return nil, errs.NewPathError(path, "read settings", err)
	}

	logging.Debug("loaded settings file", "path", path, "bytes", len(data))
	s, migrated, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	if migrated {
		logging.Info("migrated legacy settings format", "path", path)
	}
	return s, nil
}

// Parse runs the strict parse, and on failure one migration pass followed by
// a second strict parse. name identifies the content in error messages.
//
// When both attempts fail the returned *errs.ParseError describes the first
// failure and matches errs.ErrMigrationExhausted.
func Parse(name string, content []byte) (*Settings, error) {
	s, _, err := parse(name, content)
	return s, err
}

// parse is Parse that also reports whether the migration pass was needed
func parse(name string, content []byte) (*Settings, bool, error) {
	s, parseErr := decodeStrict(content)
	if parseErr == nil {
		return s, false, nil
	}

	if !json.Valid(content) {
		return nil, false, newParseError(name, content, parseErr, false)
	}

	var doc map[string]any
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil || doc == nil {
		return nil, false, newParseError(name, content, parseErr, false)
	}

	migrated, changed := Migrate(doc)
	logging.Debug("strict parse failed, attempting migration", "source", name, "error", parseErr, "changed", changed)

	data, err := marshalCompact(migrated)
	if err != nil {
		return nil, false, newParseError(name, content, parseErr, true)
	}

	s, err = decodeStrict(data)
	if err != nil {
		logging.Debug("migrated settings still invalid", "source", name, "error", err)
		return nil, false, newParseError(name, content, parseErr, true)
	}

	logging.Debug("migration produced a valid document", "source", name)
	return s, true, nil
}

// NeedsMigration reports whether content is valid JSON that only parses
// after migration
func NeedsMigration(content []byte) bool {
	_, migrated, err := parse("", content)
	return err == nil && migrated
}

// Save writes s to path atomically: the document goes to a temp file in the
// same directory, is synced, and is renamed over path. A failed Save leaves
// path untouched. Concurrent writers do not corrupt the file, but the last
// rename wins.
func Save(path string, s *Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errs.NewPathError(dir, "create directory", err)
	}

	content := encode(s)

	removeStaleTemps(path)

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.NewPathError(path, "create temporary file", err)
	}
	tmpPath := tmp.Name()
	logging.Debug("writing settings", "path", path, "temp", tmpPath)

	if err := writeSynced(tmp, content, mode); err != nil {
		os.Remove(tmpPath)
		return errs.NewPathError(tmpPath, "write temporary file", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errs.NewPathError(path, "save settings", err)
	}

	logging.Debug("saved settings", "path", path)
	return nil
}

// encode pretty-prints s. Any in-memory Settings value is encodable, so a
// failure here is a bug.
func encode(s *Settings) []byte {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		panic(fmt.Sprintf("settings: encode: %v", err))
	}
	return buf.Bytes()
}

func writeSynced(f *os.File, content []byte, mode os.FileMode) error {
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// removeStaleTemps deletes temp files left behind by crashed writers: the
// fixed "<path>.tmp" name and any "<path>.*.tmp" older than staleTempAge.
func removeStaleTemps(path string) {
	if err := os.Remove(path + ".tmp"); err == nil {
		logging.Debug("removed stale temp file", "temp", path+".tmp")
	}

	matches, err := filepath.Glob(escapeGlob(path) + ".*.tmp")
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-staleTempAge)
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(m); err == nil {
			logging.Debug("removed stale temp file", "temp", m)
		}
	}
}

func escapeGlob(path string) string {
	r := strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`)
	return r.Replace(path)
}

// newParseError locates err inside content and builds the user-facing error
func newParseError(name string, content []byte, err error, migrated bool) *errs.ParseError {
	pe := &errs.ParseError{
		Path:     name,
		Content:  string(content),
		Migrated: migrated,
		Err:      err,
	}

	offset, ok := errorOffset(err)
	if !ok {
		return pe
	}

	pe.Line, pe.Column = lineColumn(content, offset)
	pe.Context = errorContext(string(content), pe.Line, pe.Column)
	return pe
}

func errorOffset(err error) (int64, bool) {
	// Checked first: it may wrap a type error whose offset is relative to
	// a nested value
	var schemaErr *schemaError
	if errors.As(err, &schemaErr) {
		return schemaErr.Offset, schemaErr.Offset > 0
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset, true
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset, true
	}
	return 0, false
}

// lineColumn converts a decoder offset (bytes read when the error was
// detected) into a 1-based line and column of the offending byte
func lineColumn(content []byte, offset int64) (line, column int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(content) {
		pos = len(content)
	}
	before := content[:pos]
	line = bytes.Count(before, []byte("\n")) + 1
	lineStart := bytes.LastIndexByte(before, '\n') + 1
	column = pos - lineStart + 1
	return line, column
}

// errorContext renders the previous line, the offending line with a caret
// under the column, and the next line
func errorContext(content string, line, column int) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if line < 1 || line > len(lines) {
		return ""
	}
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	var b strings.Builder
	if line > 1 {
		fmt.Fprintf(&b, "%4d: %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d: %s\n", line, lines[line-1])
	if column > 0 {
		fmt.Fprintf(&b, "      %s^\n", strings.Repeat(" ", column-1))
	}
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d: %s\n", line+1, lines[line])
	}
	return b.String()
}
