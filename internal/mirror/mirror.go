// Package mirror is the shared sync core: it loads workspace documents,
// reconciles them with the roster, and writes the snapshot to the store.
// The CLI, the scheduler, and the dashboard sync endpoint all call into
// this package rather than carrying their own copy of the pipeline.
package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdeck/crewdeck/internal/roster"
	"github.com/crewdeck/crewdeck/internal/source"
	"github.com/crewdeck/crewdeck/internal/store"
	"github.com/crewdeck/crewdeck/internal/workspace"
	"gorm.io/gorm"
)

// Run executes one full reconciliation pass. Document-level failures have
// already degraded to empty input inside the provider; the only hard
// errors surfaced here come from the persistence boundary.
func Run(ctx context.Context, db *gorm.DB, provider source.Provider) (store.SyncResult, error) {
	docs, err := provider.Load(ctx)
	if err != nil {
		return store.SyncResult{}, fmt.Errorf("mirror: load documents: %w", err)
	}
	snap := workspace.Reconcile(docs, roster.Squad(), time.Now())
	return store.SaveSnapshot(db, snap)
}
