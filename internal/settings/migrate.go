package settings

// Migrate rewrites legacy settings shapes in a generically decoded document.
// It unwraps a "hooks.events" wrapper object and gives every hook that lacks
// a "type" the type "command". Everything else is left as it was. The
// returned bool reports whether the document changed.
//
// Migrate is a single best-effort pass: the result is not guaranteed to
// satisfy the strict schema.
func Migrate(doc map[string]any) (map[string]any, bool) {
	changed := false

	hooks, ok := doc[hooksKey].(map[string]any)
	if !ok {
		return doc, false
	}

	if events, ok := hooks["events"]; ok {
		doc[hooksKey] = events
		changed = true
		hooks, ok = events.(map[string]any)
		if !ok {
			return doc, changed
		}
	}

	for _, matchers := range hooks {
		list, ok := matchers.([]any)
		if !ok {
			continue
		}
		for _, m := range list {
			matcher, ok := m.(map[string]any)
			if !ok {
				continue
			}
			entries, ok := matcher[hooksKey].([]any)
			if !ok {
				continue
			}
			for _, h := range entries {
				hook, ok := h.(map[string]any)
				if !ok {
					continue
				}
				if _, has := hook["type"]; !has {
					hook["type"] = HookTypeCommand
					changed = true
				}
			}
		}
	}

	return doc, changed
}
