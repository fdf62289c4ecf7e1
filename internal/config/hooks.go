package config

import "slices"

// HookEvent is a Claude Code hook trigger point
type HookEvent string

const (
	HookPreToolUse       HookEvent = "PreToolUse"
	HookPostToolUse      HookEvent = "PostToolUse"
	HookNotification     HookEvent = "Notification"
	HookUserPromptSubmit HookEvent = "UserPromptSubmit"
	HookStop             HookEvent = "Stop"
	HookSubagentStop     HookEvent = "SubagentStop"
	HookPreCompact       HookEvent = "PreCompact"
	HookSessionStart     HookEvent = "SessionStart"
	HookSessionEnd       HookEvent = "SessionEnd"
)

// AllHookEvents returns all hook events Claude Code fires
func AllHookEvents() []HookEvent {
	return []HookEvent{
		HookPreToolUse,
		HookPostToolUse,
		HookNotification,
		HookUserPromptSubmit,
		HookStop,
		HookSubagentStop,
		HookPreCompact,
		HookSessionStart,
		HookSessionEnd,
	}
}

// IsKnownHookEvent reports whether name is an event Claude Code fires
func IsKnownHookEvent(name string) bool {
	return slices.Contains(AllHookEvents(), HookEvent(name))
}
