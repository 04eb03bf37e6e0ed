package usage

import (
	"fmt"
	"time"

	"github.com/crewdeck/crewdeck/internal/models"
	"gorm.io/gorm"
)

// LoadEntries reads usage log rows created after since into entries.
func LoadEntries(db *gorm.DB, since time.Time) ([]Entry, error) {
	var rows []models.UsageLog
	if err := db.Where("created_at > ?", since).
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("usage: load entries: %w", err)
	}

	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{
			SessionKey:   r.SessionKey,
			AgentID:      r.AgentID,
			Model:        r.Model,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			Timestamp:    r.CreatedAt,
		}
	}
	return entries, nil
}

// LoadForPeriod reads enough history to summarize the period: the trailing
// window plus the preceding window of equal length.
func LoadForPeriod(db *gorm.DB, period Period, now time.Time) ([]Entry, error) {
	window := time.Duration(period.Days()) * 24 * time.Hour
	return LoadEntries(db, now.Add(-2*window))
}

// Summaries computes all three period summaries from the usage log. One
// read covers the longest window; the shorter periods filter from it.
func Summaries(db *gorm.DB, now time.Time) (map[Period]Summary, error) {
	entries, err := LoadForPeriod(db, PeriodMonth, now)
	if err != nil {
		return nil, err
	}
	out := make(map[Period]Summary, 3)
	for _, p := range []Period{PeriodDay, PeriodWeek, PeriodMonth} {
		out[p] = Summarize(entries, p, now)
	}
	return out, nil
}
