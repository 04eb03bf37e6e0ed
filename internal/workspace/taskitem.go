package workspace

import (
	"regexp"
	"strings"
	"time"
)

// SectionRule fixes the default status/priority and the id prefix for
// every item extracted from one document section. The mapping is total:
// which section an item came from deterministically sets its defaults,
// overridden only by an explicit [x] checkbox.
type SectionRule struct {
	Marker   string
	Status   TaskStatus
	Priority TaskPriority
	Prefix   string
}

// maxSlugLen bounds the slug part of a task id.
const maxSlugLen = 48

var (
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	assigneeRe = regexp.MustCompile(`@([A-Za-z][A-Za-z0-9_-]*)`)
	contextRe  = regexp.MustCompile(`^\s+-\s+([^:]+):\s*(.*)$`)
	ownerRe    = regexp.MustCompile(`^\*\*Owner:\*\*\s*(.+)$`)
	completeRe = regexp.MustCompile(`^\*\*Completed:\*\*\s*(.+)$`)
	slugStrip  = regexp.MustCompile(`[^a-z0-9]+`)
)

// timeFormats are tried in order when parsing timestamps out of documents.
var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime parses a document timestamp permissively. Returns nil when no
// format matches.
func parseTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, f := range timeFormats {
		if t, err := time.Parse(f, s); err == nil {
			return &t
		}
	}
	return nil
}

// Slugify derives the id fragment from a task title: lowercase, runs of
// non-alphanumerics collapsed to single dashes, truncated. The result is a
// pure function of the title, which is what makes upserts idempotent.
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.Trim(s[:maxSlugLen], "-")
	}
	return s
}

// DecodeItem decodes one raw item block under the given section rule.
// Items without a recognizable title decode to nil rather than an error;
// the caller skips them and continues the section.
func DecodeItem(raw string, rule SectionRule, now time.Time) *Task {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return nil
	}
	first := lines[0]
	switch {
	case strings.HasPrefix(first, "- ["):
		return decodeChecklistItem(lines, rule, now)
	case strings.HasPrefix(first, "### "):
		return decodeHeadingItem(lines, rule)
	default:
		return nil
	}
}

// decodeChecklistItem handles the `- [ ] **Title** — @agent` dialect with
// indented `- key: value` context lines.
func decodeChecklistItem(lines []string, rule SectionRule, now time.Time) *Task {
	first := lines[0]
	m := boldRe.FindStringSubmatch(first)
	if m == nil {
		return nil
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return nil
	}

	t := &Task{
		ID:       rule.Prefix + Slugify(title),
		Title:    title,
		Status:   rule.Status,
		Priority: rule.Priority,
		Context:  map[string]string{},
	}

	checked := strings.HasPrefix(first, "- [x]") || strings.HasPrefix(first, "- [X]")

	var desc []string
	for _, line := range lines {
		if am := assigneeRe.FindStringSubmatch(line); am != nil && t.AssignedAgent == "" {
			t.AssignedAgent = strings.ToLower(am[1])
		}
		if cm := contextRe.FindStringSubmatch(line); cm != nil {
			key := strings.ToLower(strings.TrimSpace(cm[1]))
			t.Context[key] = strings.TrimSpace(cm[2])
			continue
		}
		if line != first && strings.TrimSpace(line) != "" {
			desc = append(desc, strings.TrimSpace(line))
		}
	}
	if len(desc) > 0 {
		t.Description = strings.Join(desc, "\n")
	}

	if checked {
		t.Status = StatusDone
	}
	if t.Status == StatusDone {
		if ts := parseTime(t.Context["completed"]); ts != nil {
			t.CompletedAt = ts
		} else {
			done := now
			t.CompletedAt = &done
		}
	}
	return t
}

// decodeHeadingItem handles the `### Title — trailing` dialect with
// `**Owner:**` and `**Completed:**` marker lines.
func decodeHeadingItem(lines []string, rule SectionRule) *Task {
	title := strings.TrimSpace(strings.TrimPrefix(lines[0], "### "))
	// Trailing text after an em-dash is not part of the title.
	if i := strings.Index(title, "—"); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	if title == "" {
		return nil
	}

	t := &Task{
		ID:       rule.Prefix + Slugify(title),
		Title:    title,
		Status:   rule.Status,
		Priority: rule.Priority,
		Context:  map[string]string{},
	}

	var desc []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if om := ownerRe.FindStringSubmatch(trimmed); om != nil {
			t.AssignedAgent = strings.ToLower(strings.TrimSpace(om[1]))
			continue
		}
		if cm := completeRe.FindStringSubmatch(trimmed); cm != nil {
			if t.Status == StatusDone {
				t.CompletedAt = parseTime(cm[1])
			}
			continue
		}
		if trimmed != "" {
			desc = append(desc, trimmed)
		}
	}
	if len(desc) > 0 {
		t.Description = strings.Join(desc, "\n")
	}
	return t
}

// DecodeSection extracts a section's items and decodes each one under its
// rule. Malformed items are skipped, the rest of the section continues.
func DecodeSection(doc string, rule SectionRule, now time.Time) []Task {
	var tasks []Task
	for _, raw := range ExtractItems(doc, rule.Marker) {
		if t := DecodeItem(raw, rule, now); t != nil {
			tasks = append(tasks, *t)
		}
	}
	return tasks
}
