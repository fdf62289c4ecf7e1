package config

import (
	"os"
	"path/filepath"
	"strings"

	errs "github.com/samhoang/claco/internal/errors"
)

// Scope selects which settings file an operation targets
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeProject Scope = "project"
	ScopeLocal   Scope = "local"
)

// AllScopes returns all scopes in listing order
func AllScopes() []Scope {
	return []Scope{ScopeUser, ScopeProject, ScopeLocal}
}

// ParseScope accepts a scope name as typed on the command line
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return ScopeUser, nil
	case "project":
		return ScopeProject, nil
	case "local", "project-local", "project.local":
		return ScopeLocal, nil
	}
	return "", errs.ErrInvalidScope
}

// Paths holds all resolved paths for claco operations
type Paths struct {
	ClaudeDir  string // ~/.claude (user settings live here)
	ProjectDir string // <cwd>/.claude
	ClacoDir   string // ~/.claco (claco.toml)
}

// ResolvePaths resolves all paths from the process environment
func ResolvePaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewPaths(home, cwd, os.Getenv), nil
}

// NewPaths resolves paths from an explicit home directory, working
// directory and environment lookup
func NewPaths(home, cwd string, getenv func(string) string) *Paths {
	// Claude config directory (can be overridden)
	claudeDir := getenv("CLAUDE_CONFIG_DIR")
	if claudeDir == "" {
		claudeDir = filepath.Join(home, ".claude")
	}

	clacoDir := getenv("CLACO_DIR")
	if clacoDir == "" {
		clacoDir = filepath.Join(home, ".claco")
	}

	return &Paths{
		ClaudeDir:  claudeDir,
		ProjectDir: filepath.Join(cwd, ".claude"),
		ClacoDir:   clacoDir,
	}
}

// SettingsPath returns the settings file for a scope
func (p *Paths) SettingsPath(scope Scope) string {
	switch scope {
	case ScopeProject:
		return filepath.Join(p.ProjectDir, "settings.json")
	case ScopeLocal:
		return filepath.Join(p.ProjectDir, "settings.local.json")
	default:
		return filepath.Join(p.ClaudeDir, "settings.json")
	}
}

// ConfigPath returns the path to claco.toml
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.ClacoDir, "claco.toml")
}
