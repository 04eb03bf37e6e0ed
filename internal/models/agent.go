package models

import "time"

// Agent mirrors one squad member into the relational store. Rows are
// upserted by id on every sync; the roster fixes the set of ids.
type Agent struct {
	ID                       string `gorm:"primaryKey;size:32"`
	Name                     string `gorm:"size:64;not null"`
	DisplayName              string `gorm:"size:64"`
	Emoji                    string `gorm:"size:8"`
	Domain                   string `gorm:"size:64"`
	Description              string `gorm:"type:text"`
	SoulPath                 string `gorm:"size:128"`
	Status                   string `gorm:"size:16;default:offline;index"`
	SessionKey               string `gorm:"size:128"`
	LastHeartbeat            *time.Time
	CurrentTaskID            *string `gorm:"size:64"`
	HeartbeatSchedule        string  `gorm:"size:64"`
	HeartbeatIntervalMinutes int     `gorm:"default:0"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
