package models

import "time"

// Activity is an append-only event row. Rows are never updated after
// insert; duplicate suppression happens by id at the insert boundary.
// Budget alerts are stored as activities of type "budget_alert" with the
// alert fields carried in Metadata.
type Activity struct {
	ID           string    `gorm:"primaryKey;size:128"`
	ActivityType string    `gorm:"size:32;index"`
	Title        string    `gorm:"size:256"`
	Description  string    `gorm:"type:text"`
	AgentID      string    `gorm:"size:32;index"`
	TaskID       string    `gorm:"size:64"`
	MessageID    string    `gorm:"size:64"`
	Metadata     string    `gorm:"type:json"`
	CreatedAt    time.Time `gorm:"index"`
}
