package workspace

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxReportDescription caps the stored description of a report activity.
// The untruncated text is kept in metadata for audit.
const maxReportDescription = 500

var lastCheckRe = regexp.MustCompile(`^[*_]last check:\s*(.+?)[*_]$`)

// DecodeReports parses free-text agent report blocks found under marker.
// Each block starts with a #### agent-name heading, followed by an italic
// "last check" timestamp line and free-form prose until the next block.
// The block timestamp is trusted as written, not re-validated; a block
// without one is stamped with now.
func DecodeReports(doc, marker string, now time.Time) []Activity {
	section := ExtractSection(doc, marker)
	if section == "" {
		return nil
	}

	var activities []Activity
	var name string
	var body []string
	var checkedAt *time.Time

	flush := func() {
		if name == "" {
			return
		}
		prose := strings.TrimSpace(strings.Join(body, "\n"))
		created := now
		if checkedAt != nil {
			created = *checkedAt
		}
		desc := prose
		if len(desc) > maxReportDescription {
			desc = desc[:maxReportDescription]
		}
		activities = append(activities, Activity{
			ID:          fmt.Sprintf("report-%s-%d", strings.ToLower(name), created.Unix()),
			Type:        "agent_status_change",
			Title:       name + " heartbeat report",
			Description: desc,
			AgentID:     strings.ToLower(name),
			Metadata:    map[string]string{"report": prose},
			CreatedAt:   created,
		})
		name, body, checkedAt = "", nil, nil
	}

	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#### ") {
			flush()
			name = strings.TrimSpace(strings.TrimPrefix(trimmed, "#### "))
			continue
		}
		if name == "" {
			continue
		}
		if m := lastCheckRe.FindStringSubmatch(trimmed); m != nil && checkedAt == nil {
			checkedAt = parseTime(m[1])
			continue
		}
		body = append(body, line)
	}
	flush()
	return activities
}
