package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors
var (
	ErrConflict           = errors.New("settings conflict")
	ErrMigrationExhausted = errors.New("settings migration did not produce a valid document")
	ErrHookNotFound       = errors.New("hook not found")
	ErrInvalidScope       = errors.New("invalid scope: use 'user', 'project' or 'local'")
	ErrUnknownEvent       = errors.New("unknown hook event")
)

// PathError wraps errors with path context
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new path error
func NewPathError(path, op string, err error) *PathError {
	return &PathError{Path: path, Op: op, Err: err}
}

// ParseError reports malformed settings JSON with its location.
// Err is always the error from the first, pre-migration parse attempt.
type ParseError struct {
	Path     string
	Content  string
	Line     int // 1-based, 0 when unknown
	Column   int // 1-based, 0 when unknown
	Context  string
	Migrated bool
	Err      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to parse settings JSON from %s", e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d, column %d", e.Line, e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	if e.Context != "" {
		b.WriteString("\n\n")
		b.WriteString(e.Context)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrMigrationExhausted for errors raised after a failed migration.
func (e *ParseError) Is(target error) bool {
	return target == ErrMigrationExhausted && e.Migrated
}

// ConflictError lists the paths present in both documents of a merge.
// Paths has set semantics; it is sorted only for display.
type ConflictError struct {
	Paths []string
}

func (e *ConflictError) Error() string {
	paths := append([]string(nil), e.Paths...)
	sort.Strings(paths)
	return fmt.Sprintf("conflicts detected at the following paths:\n  %s\n\nUse --overwrite to replace existing settings",
		strings.Join(paths, "\n  "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError creates a new conflict error
func NewConflictError(paths []string) *ConflictError {
	return &ConflictError{Paths: paths}
}
