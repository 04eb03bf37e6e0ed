package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/crewdeck/crewdeck/internal/budget"
	"github.com/crewdeck/crewdeck/internal/mirror"
	"github.com/crewdeck/crewdeck/internal/notify"
	"github.com/crewdeck/crewdeck/internal/scheduler"
	"github.com/crewdeck/crewdeck/internal/usage"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run periodic sync and budget checks until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gdb, err := openDB(cfg)
			if err != nil {
				return err
			}
			provider := buildProvider(cfg)
			notifiers := buildNotifiers(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched, err := scheduler.New(scheduler.Opts{
				SyncSpec:   cfg.Schedule.Sync,
				BudgetSpec: cfg.Schedule.Budget,
				SyncJob: func() error {
					_, err := mirror.Run(ctx, gdb, provider)
					return err
				},
				BudgetJob: func() error {
					return runBudgetJob(ctx, gdb, cfg.Budget.Settings(), notifiers)
				},
			})
			if err != nil {
				return err
			}

			sched.Start()
			fmt.Fprintf(cmd.OutOrStdout(), "Watching (sync %q, budget %q)\n", cfg.Schedule.Sync, cfg.Schedule.Budget)
			<-ctx.Done()
			sched.Stop()
			return nil
		},
	}
}

// runBudgetJob evaluates budgets, stores non-duplicate alerts, and fans
// the stored ones out to the configured channels.
func runBudgetJob(ctx context.Context, gdb *gorm.DB, settings budget.Settings, notifiers []notify.Notifier) error {
	now := time.Now()
	summaries, err := usage.Summaries(gdb, now)
	if err != nil {
		return err
	}
	stored, err := budget.Run(gdb, summaries, settings, now, false)
	if err != nil {
		return err
	}
	notify.Broadcast(ctx, notifiers, stored)
	return nil
}
