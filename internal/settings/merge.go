package settings

import (
	"encoding/json"

	errs "github.com/samhoang/claco/internal/errors"
	"github.com/samhoang/claco/internal/logging"
)

// Merge merges source into target.
//
// Without overwrite, every hook event and extension key present in both
// documents is a conflict; if there is any, Merge returns an
// *errs.ConflictError listing them all and leaves target untouched. With
// overwrite, source wins: hook events are replaced wholesale and extension
// values are replaced.
func Merge(target, source *Settings, overwrite bool) error {
	if !overwrite {
		if conflicts := Conflicts(target, source); len(conflicts) > 0 {
			logging.Debug("merge aborted", "conflicts", len(conflicts))
			return errs.NewConflictError(conflicts)
		}
	}

	if source.Hooks != nil {
		if target.Hooks == nil {
			target.Hooks = make(map[string][]HookMatcher)
		}
		for event, matchers := range source.Hooks {
			if _, exists := target.Hooks[event]; exists && !overwrite {
				continue
			}
			target.Hooks[event] = cloneMatchers(matchers)
		}
	}

	if target.Other == nil && len(source.Other) > 0 {
		target.Other = make(map[string]json.RawMessage, len(source.Other))
	}
	for key, value := range source.Other {
		if key == hooksKey {
			continue
		}
		if _, exists := target.Other[key]; exists && !overwrite {
			continue
		}
		target.Other[key] = append(json.RawMessage(nil), value...)
	}

	return nil
}

// Conflicts lists the paths that exist in both target and source: hook
// events as "hooks.<event>" and extension keys by name. The order is
// unspecified.
func Conflicts(target, source *Settings) []string {
	var conflicts []string

	if target.Hooks != nil {
		for event := range source.Hooks {
			if _, ok := target.Hooks[event]; ok {
				conflicts = append(conflicts, hooksKey+"."+event)
			}
		}
	}

	for key := range source.Other {
		if _, ok := target.Other[key]; ok {
			conflicts = append(conflicts, key)
		}
	}

	return conflicts
}
