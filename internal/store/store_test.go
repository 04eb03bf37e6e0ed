package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/crewdeck/crewdeck/internal/models"
	"github.com/crewdeck/crewdeck/internal/workspace"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openStoreTestDB opens an in-memory SQLite DB with all mirror tables.
func openStoreTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Agent{}, &models.Task{}, &models.Activity{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func sampleSnapshot(syncedAt time.Time) workspace.Snapshot {
	completed := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return workspace.Snapshot{
		SyncedAt: syncedAt,
		Agents: []workspace.Agent{
			{ID: "forge", Name: "forge", DisplayName: "Forge", Emoji: "🔨", Domain: "backend",
				SessionKey: "agent:forge:main", Status: workspace.AgentOnline},
		},
		Tasks: []workspace.Task{
			{ID: "task-fix-login-bug", Title: "Fix login bug", Status: workspace.StatusDone,
				Priority: workspace.PriorityMedium, AssignedAgent: "forge",
				Context: map[string]string{"added": "2026-01-30"}, CompletedAt: &completed},
		},
		Activities: []workspace.Activity{
			{ID: "report-forge-1770000000", Type: "agent_status_change", Title: "Forge heartbeat report",
				AgentID: "forge", Metadata: map[string]string{"report": "all green"},
				CreatedAt: time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)},
		},
	}
}

func TestSaveSnapshot_Counts(t *testing.T) {
	db := openStoreTestDB(t)
	res, err := SaveSnapshot(db, sampleSnapshot(time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AgentsUpserted != 1 || res.TasksUpserted != 1 || res.ActivitiesInserted != 1 {
		t.Errorf("result = %+v", res)
	}
	if len(res.Failed) != 0 {
		t.Errorf("Failed = %v, want empty", res.Failed)
	}
}

func TestSaveSnapshot_IdempotentUpsert(t *testing.T) {
	db := openStoreTestDB(t)
	snap := sampleSnapshot(time.Now())

	if _, err := SaveSnapshot(db, snap); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := SaveSnapshot(db, snap); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var tasks, agents int64
	db.Model(&models.Task{}).Count(&tasks)
	db.Model(&models.Agent{}).Count(&agents)
	if tasks != 1 {
		t.Errorf("tasks = %d, want 1 after repeated sync", tasks)
	}
	if agents != 1 {
		t.Errorf("agents = %d, want 1 after repeated sync", agents)
	}
}

func TestSaveSnapshot_LastParseWins(t *testing.T) {
	db := openStoreTestDB(t)
	snap := sampleSnapshot(time.Now())
	if _, err := SaveSnapshot(db, snap); err != nil {
		t.Fatalf("first save: %v", err)
	}

	snap.Tasks[0].Status = workspace.StatusInProgress
	snap.Tasks[0].AssignedAgent = "patch"
	if _, err := SaveSnapshot(db, snap); err != nil {
		t.Fatalf("second save: %v", err)
	}

	var row models.Task
	if err := db.First(&row, "id = ?", "task-fix-login-bug").Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	if row.Status != "in_progress" || row.AssignedAgentID != "patch" {
		t.Errorf("row = %s/%s, want in_progress/patch (full overwrite)", row.Status, row.AssignedAgentID)
	}
}

func TestSaveSnapshot_ActivityAppendOnly(t *testing.T) {
	db := openStoreTestDB(t)
	snap := sampleSnapshot(time.Now())

	if _, err := SaveSnapshot(db, snap); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Re-sync with the same activity id plus a new one.
	snap.Activities = append(snap.Activities, workspace.Activity{
		ID: "report-forge-1770003600", Type: "agent_status_change",
		Title: "Forge heartbeat report", AgentID: "forge", CreatedAt: time.Now(),
	})
	res, err := SaveSnapshot(db, snap)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if res.ActivitiesInserted != 1 {
		t.Errorf("inserted = %d, want 1 (duplicate suppressed)", res.ActivitiesInserted)
	}

	var n int64
	db.Model(&models.Activity{}).Count(&n)
	if n != 2 {
		t.Errorf("activities = %d, want 2", n)
	}
}

func TestSaveSnapshot_ContextRoundTrip(t *testing.T) {
	db := openStoreTestDB(t)
	if _, err := SaveSnapshot(db, sampleSnapshot(time.Now())); err != nil {
		t.Fatalf("save: %v", err)
	}

	var row models.Task
	if err := db.First(&row, "id = ?", "task-fix-login-bug").Error; err != nil {
		t.Fatalf("load task: %v", err)
	}
	var ctx map[string]string
	if err := json.Unmarshal([]byte(row.Context), &ctx); err != nil {
		t.Fatalf("unmarshal context: %v", err)
	}
	if ctx["added"] != "2026-01-30" {
		t.Errorf("context = %v", ctx)
	}
	if row.Tags != "[]" {
		t.Errorf("tags = %q, want []", row.Tags)
	}
}

func TestSaveSnapshot_EmptySnapshot(t *testing.T) {
	db := openStoreTestDB(t)
	res, err := SaveSnapshot(db, workspace.Snapshot{SyncedAt: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AgentsUpserted != 0 || res.TasksUpserted != 0 || res.ActivitiesInserted != 0 {
		t.Errorf("result = %+v, want zero counts", res)
	}
}
