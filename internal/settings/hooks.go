package settings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	errs "github.com/samhoang/claco/internal/errors"
)

// Coord addresses one hook by its position in the current document.
// Coordinates are invalidated by any mutation of the document.
type Coord struct {
	Event        string
	MatcherIndex int
	HookIndex    int
}

func (c Coord) String() string {
	return fmt.Sprintf("%s:%d:%d", c.Event, c.MatcherIndex, c.HookIndex)
}

// ParseCoord parses the "event:matcher:hook" form produced by Coord.String
func ParseCoord(s string) (Coord, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return Coord{}, fmt.Errorf("invalid hook coordinate %q: want event:matcher:hook", s)
	}
	j := strings.LastIndex(s[:i], ":")
	if j <= 0 {
		return Coord{}, fmt.Errorf("invalid hook coordinate %q: want event:matcher:hook", s)
	}

	matcherIndex, err := strconv.Atoi(s[j+1 : i])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid matcher index in %q: %w", s, err)
	}
	hookIndex, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return Coord{}, fmt.Errorf("invalid hook index in %q: %w", s, err)
	}
	return Coord{Event: s[:j], MatcherIndex: matcherIndex, HookIndex: hookIndex}, nil
}

// HookRef is one hook of a listing, with the coordinate that addresses it
type HookRef struct {
	Coord
	Matcher string
	Hook    Hook
}

// AddHook binds command to event under matcher. The hook joins an existing
// matcher with exactly the same pattern, or a new matcher is appended.
func (s *Settings) AddHook(event, matcher, command string, timeout int) {
	if s.Hooks == nil {
		s.Hooks = make(map[string][]HookMatcher)
	}

	hook := Hook{Type: HookTypeCommand, Command: command, Timeout: timeout}

	matchers := s.Hooks[event]
	for i := range matchers {
		if matchers[i].Matcher == matcher {
			matchers[i].Hooks = append(matchers[i].Hooks, hook)
			s.Hooks[event] = matchers
			return
		}
	}

	s.Hooks[event] = append(matchers, HookMatcher{
		Matcher: matcher,
		Hooks:   []Hook{hook},
	})
}

// ListHooks flattens the hooks section. Events are sorted by name; matchers
// and hooks keep document order.
func (s *Settings) ListHooks() []HookRef {
	events := make([]string, 0, len(s.Hooks))
	for event := range s.Hooks {
		events = append(events, event)
	}
	sort.Strings(events)

	var refs []HookRef
	for _, event := range events {
		for mi, m := range s.Hooks[event] {
			for hi, h := range m.Hooks {
				refs = append(refs, HookRef{
					Coord:   Coord{Event: event, MatcherIndex: mi, HookIndex: hi},
					Matcher: m.Matcher,
					Hook:    h,
				})
			}
		}
	}
	return refs
}

// DeleteHooks removes the hooks at coords and returns how many were removed.
// Matchers left without hooks are removed, and so are events left without
// matchers. Every coordinate is checked first: if one does not address a
// hook, nothing is removed and the error wraps errs.ErrHookNotFound.
func (s *Settings) DeleteHooks(coords []Coord) (int, error) {
	for _, c := range coords {
		if !s.hasHook(c) {
			return 0, fmt.Errorf("%w: %s", errs.ErrHookNotFound, c)
		}
	}

	// event -> matcher index -> set of hook indices
	groups := make(map[string]map[int]map[int]struct{})
	for _, c := range coords {
		byMatcher, ok := groups[c.Event]
		if !ok {
			byMatcher = make(map[int]map[int]struct{})
			groups[c.Event] = byMatcher
		}
		if byMatcher[c.MatcherIndex] == nil {
			byMatcher[c.MatcherIndex] = make(map[int]struct{})
		}
		byMatcher[c.MatcherIndex][c.HookIndex] = struct{}{}
	}

	removed := 0
	for event, byMatcher := range groups {
		matchers := s.Hooks[event]

		for _, mi := range descending(byMatcher) {
			hooks := matchers[mi].Hooks
			for _, hi := range descending(byMatcher[mi]) {
				hooks = append(hooks[:hi], hooks[hi+1:]...)
				removed++
			}
			matchers[mi].Hooks = hooks
			if len(hooks) == 0 {
				matchers = append(matchers[:mi], matchers[mi+1:]...)
			}
		}

		if len(matchers) == 0 {
			delete(s.Hooks, event)
		} else {
			s.Hooks[event] = matchers
		}
	}

	return removed, nil
}

func (s *Settings) hasHook(c Coord) bool {
	matchers, ok := s.Hooks[c.Event]
	if !ok || c.MatcherIndex < 0 || c.MatcherIndex >= len(matchers) {
		return false
	}
	return c.HookIndex >= 0 && c.HookIndex < len(matchers[c.MatcherIndex].Hooks)
}

func descending[V any](set map[int]V) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return keys
}

// FormatHook renders a hook the way listings show it
func FormatHook(matcher string, h Hook) string {
	var parts []string
	if matcher != "" {
		parts = append(parts, "matcher="+matcher)
	}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("command=%q", h.Command))
	}
	if h.Type != "" && h.Type != HookTypeCommand {
		parts = append(parts, "type="+h.Type)
	}
	if h.Timeout > 0 {
		parts = append(parts, fmt.Sprintf("timeout=%ds", h.Timeout))
	}
	return strings.Join(parts, " ")
}
