package dashboard

import (
	"encoding/json"
	"time"

	"github.com/crewdeck/crewdeck/internal/budget"
	"github.com/crewdeck/crewdeck/internal/models"
	"gorm.io/gorm"
)

// AgentRow holds agent data for display.
type AgentRow struct {
	ID            string     `json:"id"`
	DisplayName   string     `json:"display_name"`
	Emoji         string     `json:"emoji"`
	Domain        string     `json:"domain"`
	Status        string     `json:"status"`
	LastHeartbeat *time.Time `json:"last_heartbeat"`
	CurrentTaskID *string    `json:"current_task_id"`
}

// AgentRows returns all agents in roster order (by id).
func AgentRows(db *gorm.DB) ([]AgentRow, error) {
	var agents []models.Agent
	if err := db.Order("id ASC").Find(&agents).Error; err != nil {
		return nil, err
	}
	rows := make([]AgentRow, len(agents))
	for i, a := range agents {
		rows[i] = AgentRow{
			ID:            a.ID,
			DisplayName:   a.DisplayName,
			Emoji:         a.Emoji,
			Domain:        a.Domain,
			Status:        a.Status,
			LastHeartbeat: a.LastHeartbeat,
			CurrentTaskID: a.CurrentTaskID,
		}
	}
	return rows, nil
}

// TaskRow holds task data for display, with the context map decoded.
type TaskRow struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Status        string            `json:"status"`
	Priority      string            `json:"priority"`
	AssignedAgent string            `json:"assigned_agent_id"`
	Context       map[string]string `json:"context"`
	CompletedAt   *time.Time        `json:"completed_at"`
}

// TaskRows returns tasks, optionally filtered by status.
func TaskRows(db *gorm.DB, status string) ([]TaskRow, error) {
	q := db.Order("updated_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.Task
	if err := q.Find(&tasks).Error; err != nil {
		return nil, err
	}
	rows := make([]TaskRow, len(tasks))
	for i, t := range tasks {
		ctx := map[string]string{}
		json.Unmarshal([]byte(t.Context), &ctx)
		rows[i] = TaskRow{
			ID:            t.ID,
			Title:         t.Title,
			Status:        t.Status,
			Priority:      t.Priority,
			AssignedAgent: t.AssignedAgentID,
			Context:       ctx,
			CompletedAt:   t.CompletedAt,
		}
	}
	return rows, nil
}

// ActivityRow holds activity data for display.
type ActivityRow struct {
	ID        string    `json:"id"`
	Type      string    `json:"activity_type"`
	Title     string    `json:"title"`
	AgentID   string    `json:"agent_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentActivity returns the newest activities, alerts excluded.
func RecentActivity(db *gorm.DB, limit int) ([]ActivityRow, error) {
	var acts []models.Activity
	if err := db.Where("activity_type != ?", budget.AlertActivityType).
		Order("created_at DESC").Limit(limit).Find(&acts).Error; err != nil {
		return nil, err
	}
	rows := make([]ActivityRow, len(acts))
	for i, a := range acts {
		rows[i] = ActivityRow{
			ID:        a.ID,
			Type:      a.ActivityType,
			Title:     a.Title,
			AgentID:   a.AgentID,
			CreatedAt: a.CreatedAt,
		}
	}
	return rows, nil
}

// AlertRow holds a stored budget alert for display.
type AlertRow struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata"`
	CreatedAt time.Time       `json:"created_at"`
}

// RecentAlerts returns the newest stored budget alerts.
func RecentAlerts(db *gorm.DB, limit int) ([]AlertRow, error) {
	var acts []models.Activity
	if err := db.Where("activity_type = ?", budget.AlertActivityType).
		Order("created_at DESC").Limit(limit).Find(&acts).Error; err != nil {
		return nil, err
	}
	rows := make([]AlertRow, len(acts))
	for i, a := range acts {
		rows[i] = AlertRow{
			ID:        a.ID,
			Title:     a.Title,
			Message:   a.Description,
			Metadata:  json.RawMessage(a.Metadata),
			CreatedAt: a.CreatedAt,
		}
	}
	return rows, nil
}

