package main

import (
	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/db"
	"github.com/crewdeck/crewdeck/internal/source"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// loadConfig reads the config file named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// openDB connects to the mirror database from config.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	return db.Connect(cfg.DB.User, cfg.DB.Host, cfg.DB.Port, cfg.DB.Database)
}

// buildProvider picks the document source: a GitHub repo when configured,
// the local workspace directory otherwise.
func buildProvider(cfg *config.Config) source.Provider {
	if cfg.GitHub.Enabled() {
		return source.NewGitHub(source.GitHubOpts{
			Owner: cfg.GitHub.Owner,
			Repo:  cfg.GitHub.Repo,
			Path:  cfg.GitHub.Path,
			Ref:   cfg.GitHub.Ref,
			Token: cfg.GitHub.Token(),
		})
	}
	return source.NewDir(cfg.Workspace.Dir)
}
