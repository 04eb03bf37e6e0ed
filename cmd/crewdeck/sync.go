package main

import (
	"fmt"
	"strings"

	"github.com/crewdeck/crewdeck/internal/mirror"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one reconciliation pass: documents → store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gdb, err := openDB(cfg)
			if err != nil {
				return err
			}
			result, err := mirror.Run(cmd.Context(), gdb, buildProvider(cfg))
			if err != nil {
				if len(result.Failed) > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "Partial sync, failed: %s\n", strings.Join(result.Failed, ", "))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Synced at %s: %d agents, %d tasks, %d activities\n",
				result.SyncedAt, result.AgentsUpserted, result.TasksUpserted, result.ActivitiesInserted)
			return nil
		},
	}
}
