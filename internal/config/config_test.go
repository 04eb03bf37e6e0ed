package config

import (
	"strings"
	"testing"
)

const sampleYAML = `
db:
  host: 10.0.0.9
  database: crewdeck_test
workspace:
  dir: /srv/workspace
budget:
  warning_pct: 75
  global:
    daily: 10
    monthly: 200
  per_agent:
    forge:
      daily: 3
notify:
  slack:
    token_env: SLACK_TOKEN
    channel: "#crew-alerts"
schedule:
  sync: "*/2 * * * *"
`

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.Host != "10.0.0.9" || cfg.DB.Database != "crewdeck_test" {
		t.Errorf("db = %+v", cfg.DB)
	}
	if cfg.Budget.WarningPct != 75 {
		t.Errorf("warning_pct = %f", cfg.Budget.WarningPct)
	}
	if cfg.Budget.Global.Daily == nil || *cfg.Budget.Global.Daily != 10 {
		t.Errorf("global daily = %v", cfg.Budget.Global.Daily)
	}
	if cfg.Budget.Global.Weekly != nil {
		t.Error("unset weekly limit should stay nil")
	}
	if l := cfg.Budget.PerAgent["forge"]; l.Daily == nil || *l.Daily != 3 {
		t.Errorf("per-agent forge = %+v", l)
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("workspace:\n  dir: /tmp/ws\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.User != "root" || cfg.DB.Host != "127.0.0.1" || cfg.DB.Port != 3306 {
		t.Errorf("db defaults = %+v", cfg.DB)
	}
	if cfg.DB.Database != "crewdeck" {
		t.Errorf("database default = %q", cfg.DB.Database)
	}
	if cfg.Budget.WarningPct != 80 {
		t.Errorf("warning_pct default = %f", cfg.Budget.WarningPct)
	}
	if cfg.Schedule.Sync == "" || cfg.Schedule.Budget == "" {
		t.Errorf("schedule defaults = %+v", cfg.Schedule)
	}
	if cfg.Dashboard.Port != 8080 {
		t.Errorf("port default = %d", cfg.Dashboard.Port)
	}
}

func TestParse_MissingSource(t *testing.T) {
	_, err := Parse([]byte("db:\n  host: localhost\n"))
	if err == nil {
		t.Fatal("expected validation error without a document source")
	}
	if !strings.Contains(err.Error(), "workspace.dir or a github source") {
		t.Errorf("error = %v", err)
	}
}

func TestParse_GitHubSourceSatisfiesValidation(t *testing.T) {
	cfg, err := Parse([]byte("github:\n  owner: crewdeck\n  repo: workspace\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.GitHub.Enabled() {
		t.Error("github source should be enabled")
	}
}

func TestParse_InvalidWarningPct(t *testing.T) {
	_, err := Parse([]byte("workspace:\n  dir: /tmp\nbudget:\n  warning_pct: 150\n"))
	if err == nil {
		t.Fatal("expected validation error for warning_pct > 100")
	}
}

func TestParse_NegativePerAgentLimit(t *testing.T) {
	_, err := Parse([]byte("workspace:\n  dir: /tmp\nbudget:\n  per_agent:\n    forge:\n      daily: -1\n"))
	if err == nil {
		t.Fatal("expected validation error for negative limit")
	}
}

func TestSettings_Conversion(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := cfg.Budget.Settings()
	if s.WarningPct != 75 {
		t.Errorf("WarningPct = %f", s.WarningPct)
	}
	if s.Global.Daily == nil || *s.Global.Daily != 10 {
		t.Errorf("Global.Daily = %v", s.Global.Daily)
	}
	if l, ok := s.PerAgent["forge"]; !ok || l.Daily == nil || *l.Daily != 3 {
		t.Errorf("PerAgent[forge] = %+v", l)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Fatal("expected parse error")
	}
}
