// Package budget compares aggregated usage costs against configured
// thresholds and emits alerts, suppressing near-duplicates within a
// cooldown window against the external store.
package budget

import (
	"fmt"
	"sort"

	"github.com/crewdeck/crewdeck/internal/usage"
)

// Alert types and severities.
const (
	TypeExceeded = "budget_exceeded"
	TypeWarning  = "budget_warning"

	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// Limits holds optional thresholds per period. A nil limit means that
// (scope, period) pair is simply not evaluated.
type Limits struct {
	Daily   *float64
	Weekly  *float64
	Monthly *float64
}

// For returns the limit configured for a period, if any.
func (l Limits) For(p usage.Period) *float64 {
	switch p {
	case usage.PeriodDay:
		return l.Daily
	case usage.PeriodWeek:
		return l.Weekly
	case usage.PeriodMonth:
		return l.Monthly
	}
	return nil
}

// Settings configures the evaluator. WarningPct is the fraction of a
// threshold (as a percentage, e.g. 80) at which a warning fires.
type Settings struct {
	WarningPct float64
	Global     Limits
	PerAgent   map[string]Limits
}

// Alert is an ephemeral evaluation result. Persistence and deduplication
// happen at the boundary, not here.
type Alert struct {
	Type       string
	Severity   string
	Title      string
	Message    string
	Period     usage.Period
	AgentID    string // empty for global scope
	Threshold  float64
	Current    float64
	Percentage float64
}

// check evaluates one (scope, period) pair. current == threshold triggers
// exceeded, not warning; current exactly at the warning line triggers
// warning.
func check(current, threshold, warningPct float64, period usage.Period, agentID string) *Alert {
	pct := current / threshold * 100
	scope := "Global"
	if agentID != "" {
		scope = agentID
	}
	switch {
	case current >= threshold:
		return &Alert{
			Type:       TypeExceeded,
			Severity:   SeverityCritical,
			Title:      fmt.Sprintf("%s %s budget exceeded", scope, period),
			Message:    fmt.Sprintf("Spend $%.2f is over the $%.2f %s limit (%.0f%%)", current, threshold, period, pct),
			Period:     period,
			AgentID:    agentID,
			Threshold:  threshold,
			Current:    current,
			Percentage: pct,
		}
	case current >= threshold*warningPct/100:
		return &Alert{
			Type:       TypeWarning,
			Severity:   SeverityWarning,
			Title:      fmt.Sprintf("%s %s budget at %.0f%%", scope, period, pct),
			Message:    fmt.Sprintf("Spend $%.2f is approaching the $%.2f %s limit", current, threshold, period),
			Period:     period,
			AgentID:    agentID,
			Threshold:  threshold,
			Current:    current,
			Percentage: pct,
		}
	}
	return nil
}

// Evaluate runs every configured (scope, period) pair against the given
// summaries. Periods without a summary or without a configured threshold
// evaluate to nothing; that is a configuration gap, not an error.
func Evaluate(summaries map[usage.Period]usage.Summary, s Settings) []Alert {
	warningPct := s.WarningPct
	if warningPct <= 0 {
		warningPct = 80
	}

	var alerts []Alert
	for _, period := range []usage.Period{usage.PeriodDay, usage.PeriodWeek, usage.PeriodMonth} {
		summary, ok := summaries[period]
		if !ok {
			continue
		}
		if limit := s.Global.For(period); limit != nil {
			if a := check(summary.TotalCost, *limit, warningPct, period, ""); a != nil {
				alerts = append(alerts, *a)
			}
		}
		agentIDs := make([]string, 0, len(s.PerAgent))
		for agentID := range s.PerAgent {
			agentIDs = append(agentIDs, agentID)
		}
		sort.Strings(agentIDs)
		for _, agentID := range agentIDs {
			limit := s.PerAgent[agentID].For(period)
			if limit == nil {
				continue
			}
			if a := check(summary.ByAgent[agentID], *limit, warningPct, period, agentID); a != nil {
				alerts = append(alerts, *a)
			}
		}
	}
	return alerts
}
