package main

import (
	"github.com/crewdeck/crewdeck/internal/dashboard"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gdb, err := openDB(cfg)
			if err != nil {
				return err
			}
			port, _ := cmd.Flags().GetInt("port")
			if port == 0 {
				port = cfg.Dashboard.Port
			}
			return dashboard.Start(cmd.Context(), dashboard.StartOpts{
				DB:       gdb,
				Port:     port,
				Provider: buildProvider(cfg),
				Budget:   cfg.Budget.Settings(),
			})
		},
	}
	cmd.Flags().Int("port", 0, "listen port (overrides config)")
	return cmd
}
