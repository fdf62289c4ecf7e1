package config

import (
	"errors"
	"path/filepath"
	"testing"

	errs "github.com/samhoang/claco/internal/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestNewPaths_Defaults(t *testing.T) {
	home := filepath.Join("/home", "user")
	cwd := filepath.Join("/work", "repo")

	paths := NewPaths(home, cwd, envMap(nil))

	if want := filepath.Join(home, ".claude"); paths.ClaudeDir != want {
		t.Errorf("ClaudeDir = %q, want %q", paths.ClaudeDir, want)
	}
	if want := filepath.Join(cwd, ".claude"); paths.ProjectDir != want {
		t.Errorf("ProjectDir = %q, want %q", paths.ProjectDir, want)
	}
	if want := filepath.Join(home, ".claco", "claco.toml"); paths.ConfigPath() != want {
		t.Errorf("ConfigPath() = %q, want %q", paths.ConfigPath(), want)
	}
}

func TestNewPaths_EnvOverrides(t *testing.T) {
	paths := NewPaths("/home/user", "/work", envMap(map[string]string{
		"CLAUDE_CONFIG_DIR": "/custom/claude",
		"CLACO_DIR":         "/custom/claco",
	}))

	if paths.ClaudeDir != "/custom/claude" {
		t.Errorf("ClaudeDir = %q, want /custom/claude", paths.ClaudeDir)
	}
	if paths.ClacoDir != "/custom/claco" {
		t.Errorf("ClacoDir = %q, want /custom/claco", paths.ClacoDir)
	}
}

func TestResolvePaths(t *testing.T) {
	testDir := t.TempDir()
	t.Setenv("CLAUDE_CONFIG_DIR", testDir)

	paths, err := ResolvePaths()
	if err != nil {
		t.Fatalf("ResolvePaths() error: %v", err)
	}

	if got, want := paths.SettingsPath(ScopeUser), filepath.Join(testDir, "settings.json"); got != want {
		t.Errorf("SettingsPath(user) = %q, want %q", got, want)
	}
}

func TestPathsSettingsPath(t *testing.T) {
	paths := &Paths{
		ClaudeDir:  "/home/user/.claude",
		ProjectDir: "/work/repo/.claude",
	}

	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeUser, "/home/user/.claude/settings.json"},
		{ScopeProject, "/work/repo/.claude/settings.json"},
		{ScopeLocal, "/work/repo/.claude/settings.local.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			if got := paths.SettingsPath(tt.scope); got != filepath.FromSlash(tt.want) {
				t.Errorf("SettingsPath(%s) = %q, want %q", tt.scope, got, tt.want)
			}
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		input string
		want  Scope
	}{
		{"user", ScopeUser},
		{"Project", ScopeProject},
		{"local", ScopeLocal},
		{"project-local", ScopeLocal},
		{"project.local", ScopeLocal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if err != nil {
				t.Fatalf("ParseScope(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := ParseScope("global"); !errors.Is(err, errs.ErrInvalidScope) {
		t.Errorf("ParseScope(global) error = %v, want ErrInvalidScope", err)
	}
}

func TestAllScopes(t *testing.T) {
	scopes := AllScopes()
	expected := []Scope{ScopeUser, ScopeProject, ScopeLocal}
	if len(scopes) != len(expected) {
		t.Fatalf("AllScopes() returned %d scopes, want %d", len(scopes), len(expected))
	}
	for i, s := range scopes {
		if s != expected[i] {
			t.Errorf("scopes[%d] = %q, want %q", i, s, expected[i])
		}
	}
}
