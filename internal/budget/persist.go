package budget

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/usage"
	"gorm.io/gorm"
)

// DedupWindow is the recent-alert lookback. An alert with the same
// (type, period, agent) tuple stored within this window suppresses a new
// one. Fixed at one hour regardless of the alert's own period.
const DedupWindow = time.Hour

// AlertActivityType is the reserved activity type for persisted alerts.
const AlertActivityType = "budget_alert"

// alertMetadata is the metadata payload stored with an alert activity.
type alertMetadata struct {
	AlertType    string  `json:"alert_type"`
	Severity     string  `json:"severity"`
	Title        string  `json:"title"`
	Period       string  `json:"period"`
	AgentID      string  `json:"agent_id,omitempty"`
	Threshold    float64 `json:"threshold"`
	Current      float64 `json:"current_value"`
	Percentage   float64 `json:"percentage"`
	Acknowledged bool    `json:"acknowledged"`
}

// RecentAlertExists reports whether the store already holds an alert with
// the identical (type, period, agent) tuple inside the dedup window.
func RecentAlertExists(db *gorm.DB, a Alert, now time.Time) (bool, error) {
	var rows []models.Activity
	cutoff := now.Add(-DedupWindow)
	if err := db.Where("activity_type = ? AND created_at > ?", AlertActivityType, cutoff).
		Find(&rows).Error; err != nil {
		return false, fmt.Errorf("budget: query recent alerts: %w", err)
	}
	for _, row := range rows {
		var meta alertMetadata
		if err := json.Unmarshal([]byte(row.Metadata), &meta); err != nil {
			continue
		}
		if meta.AlertType == a.Type && meta.Period == string(a.Period) && meta.AgentID == a.AgentID {
			return true, nil
		}
	}
	return false, nil
}

// StoreAlert persists an alert as an append-only activity of the reserved
// budget_alert type, with alert fields carried in metadata.
func StoreAlert(db *gorm.DB, a Alert, now time.Time) error {
	meta, err := json.Marshal(alertMetadata{
		AlertType:  a.Type,
		Severity:   a.Severity,
		Title:      a.Title,
		Period:     string(a.Period),
		AgentID:    a.AgentID,
		Threshold:  a.Threshold,
		Current:    a.Current,
		Percentage: a.Percentage,
	})
	if err != nil {
		return fmt.Errorf("budget: marshal alert metadata: %w", err)
	}

	scope := a.AgentID
	if scope == "" {
		scope = "global"
	}
	row := models.Activity{
		ID:           "alert-" + a.Type + "-" + string(a.Period) + "-" + scope + "-" + strconv.FormatInt(now.Unix(), 10),
		ActivityType: AlertActivityType,
		Title:        a.Title,
		Description:  a.Message,
		AgentID:      a.AgentID,
		Metadata:     string(meta),
		CreatedAt:    now,
	}
	if err := db.Create(&row).Error; err != nil {
		return fmt.Errorf("budget: store alert: %w", err)
	}
	return nil
}

// Run evaluates the settings against the summaries and, unless dryRun is
// set, stores each alert that has no duplicate inside the dedup window.
// The check-then-insert pair is not atomic across overlapping runs; the
// window is coarse enough that a rare double notification is acceptable.
// Returned alerts are the ones actually stored (all of them under dryRun).
func Run(db *gorm.DB, summaries map[usage.Period]usage.Summary, s Settings, now time.Time, dryRun bool) ([]Alert, error) {
	alerts := Evaluate(summaries, s)
	if dryRun {
		return alerts, nil
	}

	var stored []Alert
	for _, a := range alerts {
		exists, err := RecentAlertExists(db, a, now)
		if err != nil {
			return stored, err
		}
		if exists {
			continue
		}
		if err := StoreAlert(db, a, now); err != nil {
			return stored, err
		}
		stored = append(stored, a)
	}
	return stored, nil
}
