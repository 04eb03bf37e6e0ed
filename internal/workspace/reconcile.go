package workspace

import (
	"time"

	"github.com/crewdeck/crewdeck/internal/roster"
)

// Documents holds the raw text of the three workspace sources. An absent
// document is represented as the empty string and degrades to empty input.
type Documents struct {
	Board   string // kanban task board (checklist dialect)
	Pending string // async task log (heading dialect)
	Squad   string // status table + agent reports
}

// BoardRules maps the four board sections to their default status and
// priority, in board order. The mapping is total: every extracted item
// gets exactly one rule.
var BoardRules = []SectionRule{
	{Marker: "## 📥 Inbox", Status: StatusInbox, Priority: PriorityUrgent, Prefix: "task-"},
	{Marker: "## 🎯 Assigned", Status: StatusAssigned, Priority: PriorityHigh, Prefix: "task-"},
	{Marker: "## 🔄 In Progress", Status: StatusInProgress, Priority: PriorityMedium, Prefix: "task-"},
	{Marker: "## ✅ Done", Status: StatusDone, Priority: PriorityMedium, Prefix: "task-"},
}

// PendingRules maps the async task log sections.
var PendingRules = []SectionRule{
	{Marker: "## 📬 Pending", Status: StatusAssigned, Priority: PriorityHigh, Prefix: "pending-"},
	{Marker: "## ✅ Completed", Status: StatusDone, Priority: PriorityMedium, Prefix: "pending-"},
}

// Markers for the squad document.
const (
	StatusTableMarker = "## 📊 Squad Status"
	ReportsMarker     = "## 📝 Agent Reports"
)

// Reconcile combines the decoded documents with the static roster into one
// atomic snapshot. Tasks keep source order; every roster member yields an
// agent record whether or not the status table mentions it; the snapshot
// carries a single synchronization timestamp.
func Reconcile(docs Documents, squad []roster.Member, now time.Time) Snapshot {
	snap := Snapshot{SyncedAt: now}

	for _, rule := range BoardRules {
		snap.Tasks = append(snap.Tasks, DecodeSection(docs.Board, rule, now)...)
	}
	for _, rule := range PendingRules {
		snap.Tasks = append(snap.Tasks, DecodeSection(docs.Pending, rule, now)...)
	}

	heartbeats := DecodeStatusTable(docs.Squad, StatusTableMarker)

	// First in-progress task per agent becomes its current task.
	current := make(map[string]string)
	for _, t := range snap.Tasks {
		if t.Status == StatusInProgress && t.AssignedAgent != "" {
			if _, ok := current[t.AssignedAgent]; !ok {
				current[t.AssignedAgent] = t.ID
			}
		}
	}

	for _, m := range squad {
		a := Agent{
			ID:                       m.ID,
			Name:                     m.ID,
			DisplayName:              m.Name,
			Emoji:                    m.Emoji,
			Domain:                   m.Domain,
			Description:              m.Description,
			SoulPath:                 m.SoulPath,
			SessionKey:               m.SessionKey(),
			Status:                   AgentOffline,
			HeartbeatSchedule:        m.HeartbeatSchedule,
			HeartbeatIntervalMinutes: m.HeartbeatIntervalMinutes,
		}
		if hb, ok := heartbeats[m.ID]; ok {
			a.Status = hb.Status
			a.LastHeartbeat = hb.LastSeen
		}
		if taskID, ok := current[m.ID]; ok {
			id := taskID
			a.CurrentTaskID = &id
		}
		snap.Agents = append(snap.Agents, a)
	}

	snap.Activities = DecodeReports(docs.Squad, ReportsMarker, now)
	return snap
}
