package models

import "time"

// Task is a work item decoded from a workspace document. The id is a
// deterministic slug of the title plus a source prefix, so re-syncing the
// same document upserts instead of duplicating.
type Task struct {
	ID              string     `gorm:"primaryKey;size:64"`
	Title           string     `gorm:"not null"`
	Description     string     `gorm:"type:text"`
	Status          string     `gorm:"size:16;default:inbox;index"`
	Priority        string     `gorm:"size:8;default:medium"`
	AssignedAgentID string     `gorm:"size:32;index"`
	CreatedBy       string     `gorm:"size:32"`
	ParentTaskID    *string    `gorm:"size:64"`
	Context         string     `gorm:"type:json"`
	Tags            string     `gorm:"type:json"`
	DueDate         *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
