// Package config provides YAML-based configuration loading for CrewDeck.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/crewdeck/crewdeck/internal/budget"
	"gopkg.in/yaml.v3"
)

// Config is the top-level CrewDeck configuration, loaded from config.yaml.
type Config struct {
	DB        DBConfig        `yaml:"db"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	GitHub    GitHubConfig    `yaml:"github"`
	Budget    BudgetConfig    `yaml:"budget"`
	Notify    NotifyConfig    `yaml:"notify"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

// DBConfig holds connection settings for the mirror database.
type DBConfig struct {
	User     string `yaml:"user"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
}

// WorkspaceConfig locates the workspace documents on disk.
type WorkspaceConfig struct {
	Dir string `yaml:"dir"`
}

// GitHubConfig optionally sources workspace documents from a repository
// instead of a local directory.
type GitHubConfig struct {
	Owner    string `yaml:"owner"`
	Repo     string `yaml:"repo"`
	Path     string `yaml:"path"`
	Ref      string `yaml:"ref"`
	TokenEnv string `yaml:"token_env"`
}

// Enabled reports whether the GitHub source is configured.
func (g GitHubConfig) Enabled() bool {
	return g.Owner != "" && g.Repo != ""
}

// Token reads the access token from the configured environment variable.
func (g GitHubConfig) Token() string {
	if g.TokenEnv == "" {
		return ""
	}
	return os.Getenv(g.TokenEnv)
}

// LimitsConfig holds optional per-period dollar thresholds.
type LimitsConfig struct {
	Daily   *float64 `yaml:"daily"`
	Weekly  *float64 `yaml:"weekly"`
	Monthly *float64 `yaml:"monthly"`
}

// BudgetConfig configures the budget evaluator.
type BudgetConfig struct {
	WarningPct float64                 `yaml:"warning_pct"`
	Global     LimitsConfig            `yaml:"global"`
	PerAgent   map[string]LimitsConfig `yaml:"per_agent"`
}

// Settings converts the YAML shape into evaluator settings.
func (b BudgetConfig) Settings() budget.Settings {
	s := budget.Settings{
		WarningPct: b.WarningPct,
		Global:     budget.Limits{Daily: b.Global.Daily, Weekly: b.Global.Weekly, Monthly: b.Global.Monthly},
	}
	if len(b.PerAgent) > 0 {
		s.PerAgent = make(map[string]budget.Limits, len(b.PerAgent))
		for id, l := range b.PerAgent {
			s.PerAgent[id] = budget.Limits{Daily: l.Daily, Weekly: l.Weekly, Monthly: l.Monthly}
		}
	}
	return s
}

// NotifyConfig configures alert delivery channels.
type NotifyConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
}

// SlackConfig holds Slack delivery settings. The token is read from the
// environment so it never lands in the config file.
type SlackConfig struct {
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// DiscordConfig holds Discord delivery settings.
type DiscordConfig struct {
	TokenEnv  string `yaml:"token_env"`
	ChannelID string `yaml:"channel_id"`
}

// ScheduleConfig holds cron expressions for the background runs.
type ScheduleConfig struct {
	Sync   string `yaml:"sync"`
	Budget string `yaml:"budget"`
}

// DashboardConfig holds settings for the HTTP API.
type DashboardConfig struct {
	Port int `yaml:"port"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.DB.User == "" {
		c.DB.User = "root"
	}
	if c.DB.Host == "" {
		c.DB.Host = "127.0.0.1"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 3306
	}
	if c.DB.Database == "" {
		c.DB.Database = "crewdeck"
	}
	if c.Budget.WarningPct == 0 {
		c.Budget.WarningPct = 80
	}
	if c.Schedule.Sync == "" {
		c.Schedule.Sync = "*/5 * * * *"
	}
	if c.Schedule.Budget == "" {
		c.Schedule.Budget = "0 * * * *"
	}
	if c.Dashboard.Port == 0 {
		c.Dashboard.Port = 8080
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Workspace.Dir == "" && !c.GitHub.Enabled() {
		errs = append(errs, "workspace.dir or a github source is required")
	}
	if c.Budget.WarningPct < 0 || c.Budget.WarningPct > 100 {
		errs = append(errs, "budget.warning_pct must be between 0 and 100")
	}
	for id, l := range c.Budget.PerAgent {
		if id == "" {
			errs = append(errs, "budget.per_agent keys must be agent ids")
		}
		for _, v := range []*float64{l.Daily, l.Weekly, l.Monthly} {
			if v != nil && *v < 0 {
				errs = append(errs, fmt.Sprintf("budget.per_agent[%s] limits must be non-negative", id))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
