// Package usage folds raw token-usage events into cost figures grouped by
// agent, by date, and by trailing period, with percentage change against
// the preceding period of equal length.
package usage

import (
	"sort"
	"strings"
	"time"
)

// Entry is one raw token-usage event from the agent activity log.
type Entry struct {
	SessionKey   string
	AgentID      string
	Model        string
	InputTokens  int
	OutputTokens int
	Timestamp    time.Time
}

// Period is the closed set of summary window kinds.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Days returns the trailing window length of the period.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodMonth:
		return 30
	default:
		return 1
	}
}

// AgentDayStat aggregates one (agent, calendar date) group.
type AgentDayStat struct {
	AgentID      string
	Date         string // YYYY-MM-DD
	Runs         int
	InputTokens  int64
	OutputTokens int64
	Cost         float64
}

// DayStat aggregates one calendar date across all agents.
type DayStat struct {
	Date        string
	Runs        int
	TotalTokens int64
	Cost        float64
	ByAgent     map[string]float64
}

// Summary is a derived period cost report, recomputed on demand.
type Summary struct {
	Period      Period
	TotalCost   float64
	TotalTokens int64
	Runs        int
	ChangePct   float64
	ByAgent     map[string]float64
	ByDay       []DayStat
}

// AgentFor recovers the agent id of an entry: session keys follow the
// agent:<id>:... convention, then the explicit field, then "unknown".
func AgentFor(e Entry) string {
	if parts := strings.Split(e.SessionKey, ":"); len(parts) >= 2 && parts[0] == "agent" && parts[1] != "" {
		return parts[1]
	}
	if e.AgentID != "" {
		return e.AgentID
	}
	return "unknown"
}

// AggregateByAgentDate folds entries into (agent, date) groups, sorted by
// date then agent for stable output.
func AggregateByAgentDate(entries []Entry) []AgentDayStat {
	type key struct{ agent, date string }
	groups := make(map[key]*AgentDayStat)
	for _, e := range entries {
		k := key{AgentFor(e), e.Timestamp.Format("2006-01-02")}
		g, ok := groups[k]
		if !ok {
			g = &AgentDayStat{AgentID: k.agent, Date: k.date}
			groups[k] = g
		}
		g.Runs++
		g.InputTokens += int64(e.InputTokens)
		g.OutputTokens += int64(e.OutputTokens)
		g.Cost += Cost(e.Model, e.InputTokens, e.OutputTokens)
	}

	out := make([]AgentDayStat, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].AgentID < out[j].AgentID
	})
	return out
}

// AggregateByDate folds per-agent-date groups into per-date totals with a
// per-agent cost breakdown for each date.
func AggregateByDate(stats []AgentDayStat) []DayStat {
	byDate := make(map[string]*DayStat)
	for _, s := range stats {
		d, ok := byDate[s.Date]
		if !ok {
			d = &DayStat{Date: s.Date, ByAgent: map[string]float64{}}
			byDate[s.Date] = d
		}
		d.Runs += s.Runs
		d.TotalTokens += s.InputTokens + s.OutputTokens
		d.Cost += s.Cost
		d.ByAgent[s.AgentID] += s.Cost
	}

	out := make([]DayStat, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PercentChange is (current-previous)/previous × 100, defined as exactly 0
// when previous is 0.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Summarize aggregates the trailing window of the period ending at now,
// then the immediately preceding window of equal length, and reports the
// percentage change between them.
func Summarize(entries []Entry, period Period, now time.Time) Summary {
	window := time.Duration(period.Days()) * 24 * time.Hour
	cutoff := now.Add(-window)
	prevCutoff := cutoff.Add(-window)

	var current, previous []Entry
	for _, e := range entries {
		switch {
		case e.Timestamp.After(cutoff) && !e.Timestamp.After(now):
			current = append(current, e)
		case e.Timestamp.After(prevCutoff) && !e.Timestamp.After(cutoff):
			previous = append(previous, e)
		}
	}

	perAgent := AggregateByAgentDate(current)
	s := Summary{
		Period:  period,
		ByAgent: map[string]float64{},
		ByDay:   AggregateByDate(perAgent),
	}
	for _, g := range perAgent {
		s.Runs += g.Runs
		s.TotalTokens += g.InputTokens + g.OutputTokens
		s.TotalCost += g.Cost
		s.ByAgent[g.AgentID] += g.Cost
	}

	var prevCost float64
	for _, e := range previous {
		prevCost += Cost(e.Model, e.InputTokens, e.OutputTokens)
	}
	s.ChangePct = PercentChange(s.TotalCost, prevCost)
	return s
}
