package settings

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/samhoang/claco/internal/errors"
)

func cmdHook(command string) Hook {
	return Hook{Type: HookTypeCommand, Command: command}
}

func TestAddHook(t *testing.T) {
	s := New()

	s.AddHook("PreToolUse", "Bash", "one", 0)
	s.AddHook("PreToolUse", "Bash", "two", 10)
	s.AddHook("PreToolUse", "", "three", 0)
	s.AddHook("PreToolUse", "", "four", 0)
	s.AddHook("Stop", "", "five", 0)

	want := map[string][]HookMatcher{
		"PreToolUse": {
			{Matcher: "Bash", Hooks: []Hook{cmdHook("one"), {Type: "command", Command: "two", Timeout: 10}}},
			{Matcher: "", Hooks: []Hook{cmdHook("three"), cmdHook("four")}},
		},
		"Stop": {
			{Matcher: "", Hooks: []Hook{cmdHook("five")}},
		},
	}
	if diff := cmp.Diff(want, s.Hooks); diff != "" {
		t.Errorf("hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestAddHook_MatcherIsExactString(t *testing.T) {
	s := New()
	s.AddHook("PreToolUse", "Bash", "a", 0)
	s.AddHook("PreToolUse", "bash", "b", 0)
	s.AddHook("PreToolUse", "Bash ", "c", 0)

	assert.Len(t, s.Hooks["PreToolUse"], 3)
}

func TestListHooks(t *testing.T) {
	s := New()
	s.AddHook("Stop", "", "s0", 0)
	s.AddHook("PreToolUse", "Bash", "p0", 0)
	s.AddHook("PreToolUse", "Bash", "p1", 0)
	s.AddHook("PreToolUse", "Edit", "p2", 0)

	refs := s.ListHooks()
	require.Len(t, refs, 4)

	got := make([]string, len(refs))
	for i, r := range refs {
		got[i] = r.Coord.String() + " " + r.Hook.Command
	}
	assert.Equal(t, []string{
		"PreToolUse:0:0 p0",
		"PreToolUse:0:1 p1",
		"PreToolUse:1:0 p2",
		"Stop:0:0 s0",
	}, got)
	assert.Equal(t, "Edit", refs[2].Matcher)

	assert.Empty(t, New().ListHooks())
}

func TestDeleteHooks_DescendingOrder(t *testing.T) {
	s := New()
	s.AddHook("PreToolUse", "Bash", "first", 0)
	s.AddHook("PreToolUse", "Bash", "middle", 0)
	s.AddHook("PreToolUse", "Bash", "last", 0)

	n, err := s.DeleteHooks([]Coord{
		{Event: "PreToolUse", MatcherIndex: 0, HookIndex: 0},
		{Event: "PreToolUse", MatcherIndex: 0, HookIndex: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, s.Hooks["PreToolUse"], 1)
	assert.Equal(t, []Hook{cmdHook("middle")}, s.Hooks["PreToolUse"][0].Hooks)
}

func TestDeleteHooks_RemovesEmptyContainers(t *testing.T) {
	s := New()
	s.AddHook("Stop", "", "only", 0)

	n, err := s.DeleteHooks([]Coord{{Event: "Stop"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.NotContains(t, s.Hooks, "Stop")
	assert.NotNil(t, s.Hooks)
	assert.Empty(t, s.Hooks)
}

func TestDeleteHooks_SeveralMatchersOfOneEvent(t *testing.T) {
	s := New()
	s.AddHook("PreToolUse", "A", "a", 0)
	s.AddHook("PreToolUse", "B", "b", 0)
	s.AddHook("PreToolUse", "C", "c1", 0)
	s.AddHook("PreToolUse", "C", "c2", 0)
	s.AddHook("PreToolUse", "D", "d", 0)
	s.AddHook("Stop", "", "s", 0)

	_, err := s.DeleteHooks([]Coord{
		{Event: "PreToolUse", MatcherIndex: 0, HookIndex: 0},
		{Event: "PreToolUse", MatcherIndex: 2, HookIndex: 1},
		{Event: "PreToolUse", MatcherIndex: 3, HookIndex: 0},
		{Event: "Stop", MatcherIndex: 0, HookIndex: 0},
	})
	require.NoError(t, err)

	want := map[string][]HookMatcher{
		"PreToolUse": {
			{Matcher: "B", Hooks: []Hook{cmdHook("b")}},
			{Matcher: "C", Hooks: []Hook{cmdHook("c1")}},
		},
	}
	if diff := cmp.Diff(want, s.Hooks); diff != "" {
		t.Errorf("hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteHooks_DuplicateCoordinatesCountOnce(t *testing.T) {
	s := New()
	s.AddHook("Stop", "", "a", 0)
	s.AddHook("Stop", "", "b", 0)

	c := Coord{Event: "Stop", MatcherIndex: 0, HookIndex: 0}
	n, err := s.DeleteHooks([]Coord{c, c})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Hook{cmdHook("b")}, s.Hooks["Stop"][0].Hooks)
}

func TestDeleteHooks_UnknownCoordinateChangesNothing(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
	}{
		{"unknown event", Coord{Event: "Nope"}},
		{"matcher out of range", Coord{Event: "Stop", MatcherIndex: 1}},
		{"hook out of range", Coord{Event: "Stop", HookIndex: 5}},
		{"negative index", Coord{Event: "Stop", HookIndex: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.AddHook("Stop", "", "a", 0)
			before := s.Clone()

			_, err := s.DeleteHooks([]Coord{{Event: "Stop"}, tt.coord})
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrHookNotFound))
			assert.Empty(t, cmp.Diff(before, s))
		})
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		input   string
		want    Coord
		wantErr bool
	}{
		{input: "PreToolUse:0:1", want: Coord{Event: "PreToolUse", MatcherIndex: 0, HookIndex: 1}},
		{input: "mcp:server:2:3", want: Coord{Event: "mcp:server", MatcherIndex: 2, HookIndex: 3}},
		{input: "Stop:0", wantErr: true},
		{input: ":0:1", wantErr: true},
		{input: "Stop:x:1", wantErr: true},
		{input: "Stop:0:1abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCoord(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestFormatHook(t *testing.T) {
	tests := []struct {
		name    string
		matcher string
		hook    Hook
		want    string
	}{
		{"command only", "", cmdHook("ls"), `command="ls"`},
		{"with matcher", "Bash", cmdHook("ls"), `matcher=Bash command="ls"`},
		{"other type", "", Hook{Type: "prompt", Command: "x"}, `command="x" type=prompt`},
		{"timeout", "Edit", Hook{Type: "command", Command: "fmt", Timeout: 30}, `matcher=Edit command="fmt" timeout=30s`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHook(tt.matcher, tt.hook))
		})
	}
}
