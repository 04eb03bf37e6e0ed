package db

import (
	"fmt"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/roster"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Agent{},
		&models.Task{},
		&models.Activity{},
		&models.UsageLog{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// seedColumns are the roster-derived columns refreshed on seed. Status and
// heartbeat are left alone: the reconciler owns those.
var seedColumns = []string{
	"name", "display_name", "emoji", "domain", "description", "soul_path",
	"session_key", "heartbeat_schedule", "heartbeat_interval_minutes",
}

// SeedAgents upserts one row per roster member so the dashboard shows the
// full squad before the first document sync runs.
func SeedAgents(db *gorm.DB, squad []roster.Member) error {
	for _, m := range squad {
		agent := models.Agent{
			ID:                       m.ID,
			Name:                     m.ID,
			DisplayName:              m.Name,
			Emoji:                    m.Emoji,
			Domain:                   m.Domain,
			Description:              m.Description,
			SoulPath:                 m.SoulPath,
			Status:                   "offline",
			SessionKey:               m.SessionKey(),
			HeartbeatSchedule:        m.HeartbeatSchedule,
			HeartbeatIntervalMinutes: m.HeartbeatIntervalMinutes,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(seedColumns),
		}).Create(&agent)
		if result.Error != nil {
			return fmt.Errorf("db: seed agent %q: %w", m.ID, result.Error)
		}
	}
	return nil
}
