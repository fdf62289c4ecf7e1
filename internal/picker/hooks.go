package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samhoang/claco/internal/settings"
)

// HookSet is the hook listing of one settings file, named by its scope
type HookSet struct {
	Name string
	Refs []settings.HookRef
}

// HookItems turns hook listings into picker items. Item IDs are
// "<set>/<event>:<matcher>:<hook>" and items are grouped per set and event.
func HookItems(sets []HookSet) []Item {
	var items []Item
	for _, set := range sets {
		for _, ref := range set.Refs {
			items = append(items, Item{
				ID:    set.Name + "/" + ref.Coord.String(),
				Group: fmt.Sprintf("%s: %s", set.Name, ref.Event),
				Label: settings.FormatHook(ref.Matcher, ref.Hook),
			})
		}
	}
	return items
}

// PickHooks lets the user choose hooks and returns their coordinates keyed
// by set name. It returns nil when the user quits or selects nothing.
func PickHooks(title string, sets []HookSet, opts ...tea.ProgramOption) (map[string][]settings.Coord, error) {
	ids, err := Run(title, HookItems(sets), opts...)
	if err != nil {
		return nil, err
	}
	return coordsFromIDs(ids)
}

func coordsFromIDs(ids []string) (map[string][]settings.Coord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	picked := make(map[string][]settings.Coord)
	for _, id := range ids {
		name, coord, ok := strings.Cut(id, "/")
		if !ok {
			return nil, fmt.Errorf("picker returned %q: missing set name", id)
		}
		c, err := settings.ParseCoord(coord)
		if err != nil {
			return nil, fmt.Errorf("picker returned %q: %w", id, err)
		}
		picked[name] = append(picked[name], c)
	}
	return picked, nil
}
