package models

import "time"

// UsageLog is one raw token-usage event streamed in from the agent
// activity log. The cost subsystem reads these; it never writes them.
type UsageLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SessionKey   string    `gorm:"size:128;index"`
	AgentID      string    `gorm:"size:32"`
	Model        string    `gorm:"size:64"`
	InputTokens  int       `gorm:"default:0"`
	OutputTokens int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"index"`
}
