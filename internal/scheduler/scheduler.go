// Package scheduler drives the periodic document sync and budget
// evaluation runs from cron expressions.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Opts holds the cron expressions and the jobs they trigger. Specs use
// the standard 5-field form (minute, hour, dom, month, dow).
type Opts struct {
	SyncSpec   string
	BudgetSpec string
	SyncJob    func() error
	BudgetJob  func() error
}

// Scheduler wraps a cron runner with logging job adapters. Job errors are
// logged and the schedule keeps running.
type Scheduler struct {
	c *cron.Cron
}

// New builds a scheduler from opts. Jobs without a spec are skipped.
func New(opts Opts) (*Scheduler, error) {
	c := cron.New()
	if opts.SyncSpec != "" && opts.SyncJob != nil {
		if _, err := c.AddFunc(opts.SyncSpec, logged("sync", opts.SyncJob)); err != nil {
			return nil, fmt.Errorf("scheduler: sync spec %q: %w", opts.SyncSpec, err)
		}
	}
	if opts.BudgetSpec != "" && opts.BudgetJob != nil {
		if _, err := c.AddFunc(opts.BudgetSpec, logged("budget", opts.BudgetJob)); err != nil {
			return nil, fmt.Errorf("scheduler: budget spec %q: %w", opts.BudgetSpec, err)
		}
	}
	return &Scheduler{c: c}, nil
}

// Start begins running jobs on their schedules.
func (s *Scheduler) Start() { s.c.Start() }

// Stop halts the schedule and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.c.Stop()
	<-ctx.Done()
}

// logged wraps a job so a failure logs instead of killing the scheduler.
func logged(name string, job func() error) func() {
	return func() {
		if err := job(); err != nil {
			log.Printf("scheduler: %s run: %v", name, err)
		}
	}
}
