// Package workspace parses human-edited markdown workspace documents — a
// kanban task board, an async task log, a squad status table, free-text
// agent reports — and reconciles them with the static roster into one
// snapshot ready for persistence.
//
// Parsing is deliberately permissive: a missing section yields zero items,
// a malformed item is skipped, and an absent document degrades that source
// to empty input. Only the persistence boundary surfaces hard errors.
package workspace

import "time"

// TaskStatus is the closed set of task states.
type TaskStatus string

const (
	StatusInbox      TaskStatus = "inbox"
	StatusAssigned   TaskStatus = "assigned"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// TaskPriority is the closed set of task priorities.
type TaskPriority string

const (
	PriorityUrgent TaskPriority = "urgent"
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// AgentStatus is the closed set of agent liveness states. Unrecognized
// source glyphs decode to StatusOffline, never to an error.
type AgentStatus string

const (
	AgentOnline  AgentStatus = "online"
	AgentBusy    AgentStatus = "busy"
	AgentOffline AgentStatus = "offline"
	AgentError   AgentStatus = "error"
)

// Task is a normalized work item decoded from a document. ID is a pure
// function of title and source prefix, making repeated syncs idempotent.
type Task struct {
	ID            string
	Title         string
	Description   string
	Status        TaskStatus
	Priority      TaskPriority
	AssignedAgent string
	Context       map[string]string
	Tags          []string
	CompletedAt   *time.Time
}

// Activity is an append-only event decoded from a document. CreatedAt is
// taken from the source text when available, not from parse time.
type Activity struct {
	ID          string
	Type        string
	Title       string
	Description string
	AgentID     string
	TaskID      string
	Metadata    map[string]string
	CreatedAt   time.Time
}

// Heartbeat is one row of the squad status table, keyed by agent id.
type Heartbeat struct {
	LastSeen *time.Time
	Status   AgentStatus
}

// Agent is the reconciled view of one roster member.
type Agent struct {
	ID                       string
	Name                     string
	DisplayName              string
	Emoji                    string
	Domain                   string
	Description              string
	SoulPath                 string
	SessionKey               string
	Status                   AgentStatus
	LastHeartbeat            *time.Time
	CurrentTaskID            *string
	HeartbeatSchedule        string
	HeartbeatIntervalMinutes int
}

// Snapshot is one atomic reconciliation result. SyncedAt stamps the whole
// batch, not any individual record.
type Snapshot struct {
	Agents     []Agent
	Tasks      []Task
	Activities []Activity
	SyncedAt   time.Time
}
