// Package store writes reconciled snapshots into the relational store.
// Agents and tasks are upserted by id; activities are append-only with an
// id pre-check. Failures are scoped per collection so a retry knows which
// sub-step to repeat.
package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/workspace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncResult reports what a snapshot write accomplished, collection by
// collection. Failed names the sub-steps that errored.
type SyncResult struct {
	AgentsUpserted     int
	TasksUpserted      int
	ActivitiesInserted int
	SyncedAt           string
	Failed             []string
}

// agentColumns are the columns refreshed on agent upsert.
var agentColumns = []string{
	"name", "display_name", "emoji", "domain", "description", "soul_path",
	"status", "session_key", "last_heartbeat", "current_task_id",
	"heartbeat_schedule", "heartbeat_interval_minutes", "updated_at",
}

// taskColumns are the columns refreshed on task upsert. Last parse wins:
// a re-decoded task with the same id overwrites all mutable fields.
var taskColumns = []string{
	"title", "description", "status", "priority", "assigned_agent_id",
	"context", "tags", "completed_at", "updated_at",
}

// SaveSnapshot persists one snapshot. Each collection is written
// independently; a failure in one is recorded and the others still run.
// The returned error, if any, names every failed sub-step.
func SaveSnapshot(db *gorm.DB, snap workspace.Snapshot) (SyncResult, error) {
	res := SyncResult{SyncedAt: snap.SyncedAt.UTC().Format("2006-01-02T15:04:05Z07:00")}
	var errs []string

	if err := upsertAgents(db, snap); err != nil {
		res.Failed = append(res.Failed, "agents")
		errs = append(errs, err.Error())
	} else {
		res.AgentsUpserted = len(snap.Agents)
	}

	if err := upsertTasks(db, snap); err != nil {
		res.Failed = append(res.Failed, "tasks")
		errs = append(errs, err.Error())
	} else {
		res.TasksUpserted = len(snap.Tasks)
	}

	n, err := insertActivities(db, snap)
	res.ActivitiesInserted = n
	if err != nil {
		res.Failed = append(res.Failed, "activities")
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return res, fmt.Errorf("store: sync failed for %s: %s",
			strings.Join(res.Failed, ", "), strings.Join(errs, "; "))
	}
	return res, nil
}

func upsertAgents(db *gorm.DB, snap workspace.Snapshot) error {
	for _, a := range snap.Agents {
		row := models.Agent{
			ID:                       a.ID,
			Name:                     a.Name,
			DisplayName:              a.DisplayName,
			Emoji:                    a.Emoji,
			Domain:                   a.Domain,
			Description:              a.Description,
			SoulPath:                 a.SoulPath,
			Status:                   string(a.Status),
			SessionKey:               a.SessionKey,
			LastHeartbeat:            a.LastHeartbeat,
			CurrentTaskID:            a.CurrentTaskID,
			HeartbeatSchedule:        a.HeartbeatSchedule,
			HeartbeatIntervalMinutes: a.HeartbeatIntervalMinutes,
			UpdatedAt:                snap.SyncedAt,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(agentColumns),
		}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("store: upsert agent %q: %w", a.ID, result.Error)
		}
	}
	return nil
}

func upsertTasks(db *gorm.DB, snap workspace.Snapshot) error {
	for _, t := range snap.Tasks {
		contextJSON, err := marshalMap(t.Context)
		if err != nil {
			return fmt.Errorf("store: marshal context for task %q: %w", t.ID, err)
		}
		tagsJSON, err := marshalTags(t.Tags)
		if err != nil {
			return fmt.Errorf("store: marshal tags for task %q: %w", t.ID, err)
		}
		row := models.Task{
			ID:              t.ID,
			Title:           t.Title,
			Description:     t.Description,
			Status:          string(t.Status),
			Priority:        string(t.Priority),
			AssignedAgentID: t.AssignedAgent,
			Context:         contextJSON,
			Tags:            tagsJSON,
			CompletedAt:     t.CompletedAt,
			UpdatedAt:       snap.SyncedAt,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(taskColumns),
		}).Create(&row)
		if result.Error != nil {
			return fmt.Errorf("store: upsert task %q: %w", t.ID, result.Error)
		}
	}
	return nil
}

// insertActivities appends activities not already present by id. Rows are
// never updated after insert.
func insertActivities(db *gorm.DB, snap workspace.Snapshot) (int, error) {
	inserted := 0
	for _, act := range snap.Activities {
		var count int64
		if err := db.Model(&models.Activity{}).Where("id = ?", act.ID).Count(&count).Error; err != nil {
			return inserted, fmt.Errorf("store: check activity %q: %w", act.ID, err)
		}
		if count > 0 {
			continue
		}
		meta, err := marshalMap(act.Metadata)
		if err != nil {
			return inserted, fmt.Errorf("store: marshal metadata for activity %q: %w", act.ID, err)
		}
		row := models.Activity{
			ID:           act.ID,
			ActivityType: act.Type,
			Title:        act.Title,
			Description:  act.Description,
			AgentID:      act.AgentID,
			TaskID:       act.TaskID,
			Metadata:     meta,
			CreatedAt:    act.CreatedAt,
		}
		if err := db.Create(&row).Error; err != nil {
			return inserted, fmt.Errorf("store: insert activity %q: %w", act.ID, err)
		}
		inserted++
	}
	return inserted, nil
}

// marshalMap marshals a string map to JSON, returning "{}" for nil.
func marshalMap(m map[string]string) (string, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// marshalTags marshals a tag list to JSON, returning "[]" for nil.
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		return "[]", nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
