// Package roster defines the fixed squad of agents CrewDeck mirrors.
// Identity is by id; the reconciler never invents agents outside this set
// and never drops one that is missing from a status table.
package roster

import "strings"

// Member is one squad agent. SoulPath points at the agent's persona file
// in the workspace; SessionKey follows the agent:<id>:main convention.
type Member struct {
	ID                       string
	Name                     string
	Emoji                    string
	Domain                   string
	Description              string
	SoulPath                 string
	HeartbeatSchedule        string
	HeartbeatIntervalMinutes int
}

// SessionKey returns the conventional session key for the member.
func (m Member) SessionKey() string {
	return "agent:" + m.ID + ":main"
}

// squad is the full roster. Order matters: sync output preserves it.
var squad = []Member{
	{ID: "forge", Name: "Forge", Emoji: "🔨", Domain: "backend", Description: "Core services and APIs", SoulPath: "souls/forge.md", HeartbeatSchedule: "*/30 * * * *", HeartbeatIntervalMinutes: 30},
	{ID: "scout", Name: "Scout", Emoji: "🔭", Domain: "research", Description: "Investigation and prototyping", SoulPath: "souls/scout.md", HeartbeatSchedule: "0 * * * *", HeartbeatIntervalMinutes: 60},
	{ID: "quill", Name: "Quill", Emoji: "🪶", Domain: "docs", Description: "Documentation and changelogs", SoulPath: "souls/quill.md", HeartbeatSchedule: "0 */2 * * *", HeartbeatIntervalMinutes: 120},
	{ID: "atlas", Name: "Atlas", Emoji: "🗺️", Domain: "infra", Description: "Deployment and infrastructure", SoulPath: "souls/atlas.md", HeartbeatSchedule: "*/15 * * * *", HeartbeatIntervalMinutes: 15},
	{ID: "nova", Name: "Nova", Emoji: "✨", Domain: "frontend", Description: "UI implementation", SoulPath: "souls/nova.md", HeartbeatSchedule: "*/30 * * * *", HeartbeatIntervalMinutes: 30},
	{ID: "cipher", Name: "Cipher", Emoji: "🔐", Domain: "security", Description: "Security review and hardening", SoulPath: "souls/cipher.md", HeartbeatSchedule: "0 */4 * * *", HeartbeatIntervalMinutes: 240},
	{ID: "patch", Name: "Patch", Emoji: "🩹", Domain: "qa", Description: "Testing and bug triage", SoulPath: "souls/patch.md", HeartbeatSchedule: "*/30 * * * *", HeartbeatIntervalMinutes: 30},
	{ID: "relay", Name: "Relay", Emoji: "📡", Domain: "comms", Description: "Inbox triage and routing", SoulPath: "souls/relay.md", HeartbeatSchedule: "*/10 * * * *", HeartbeatIntervalMinutes: 10},
	{ID: "sage", Name: "Sage", Emoji: "🌿", Domain: "planning", Description: "Roadmap and task breakdown", SoulPath: "souls/sage.md", HeartbeatSchedule: "0 * * * *", HeartbeatIntervalMinutes: 60},
	{ID: "ember", Name: "Ember", Emoji: "🔥", Domain: "design", Description: "Visual and interaction design", SoulPath: "souls/ember.md", HeartbeatSchedule: "0 */2 * * *", HeartbeatIntervalMinutes: 120},
	{ID: "drift", Name: "Drift", Emoji: "🌊", Domain: "data", Description: "Pipelines and analytics", SoulPath: "souls/drift.md", HeartbeatSchedule: "0 * * * *", HeartbeatIntervalMinutes: 60},
	{ID: "warden", Name: "Warden", Emoji: "🛡️", Domain: "ops", Description: "Monitoring and incident response", SoulPath: "souls/warden.md", HeartbeatSchedule: "*/15 * * * *", HeartbeatIntervalMinutes: 15},
	{ID: "echo", Name: "Echo", Emoji: "🔊", Domain: "support", Description: "User feedback and follow-ups", SoulPath: "souls/echo.md", HeartbeatSchedule: "0 */3 * * *", HeartbeatIntervalMinutes: 180},
}

// Squad returns a copy of the full roster.
func Squad() []Member {
	out := make([]Member, len(squad))
	copy(out, squad)
	return out
}

// Lookup returns the member with the given id (case-insensitive).
func Lookup(id string) (Member, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, m := range squad {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}
