package main

import (
	"fmt"
	"time"

	"github.com/crewdeck/crewdeck/internal/budget"
	"github.com/crewdeck/crewdeck/internal/usage"
	"github.com/spf13/cobra"
)

func newBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget evaluation",
	}
	cmd.AddCommand(newBudgetCheckCmd())
	return cmd
}

func newBudgetCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate budgets now; --dry-run skips dedup and storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gdb, err := openDB(cfg)
			if err != nil {
				return err
			}
			now := time.Now()
			summaries, err := usage.Summaries(gdb, now)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			alerts, err := budget.Run(gdb, summaries, cfg.Budget.Settings(), now, dryRun)
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No alerts")
				return nil
			}
			for _, a := range alerts {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s — $%.2f of $%.2f (%.0f%%)\n",
					a.Severity, a.Title, a.Current, a.Threshold, a.Percentage)
			}
			if !dryRun {
				notifiers := buildNotifiers(cfg)
				if len(notifiers) > 0 {
					broadcastAlerts(cmd, notifiers, alerts)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "compute alerts without dedup or storage")
	return cmd
}
