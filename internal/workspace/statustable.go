package workspace

import "strings"

// glyphStatus maps a status-table glyph to an agent status. Anything not
// in the table decodes to offline.
var glyphStatus = map[string]AgentStatus{
	"🟢": AgentOnline,
	"🟡": AgentBusy,
	"🔴": AgentError,
}

// DecodeGlyph returns the agent status for a table glyph. Unknown glyphs
// map to offline, never to an error.
func DecodeGlyph(glyph string) AgentStatus {
	if s, ok := glyphStatus[strings.TrimSpace(glyph)]; ok {
		return s
	}
	return AgentOffline
}

// DecodeStatusTable parses the pipe-delimited squad status table found
// under marker in doc. Cells map positionally to (agent name, domain,
// last heartbeat, status glyph); the agent name is case-folded to form
// the join key against the roster. A missing or malformed table yields
// an empty map.
func DecodeStatusTable(doc, marker string) map[string]Heartbeat {
	out := make(map[string]Heartbeat)
	section := ExtractSection(doc, marker)
	if section == "" {
		return out
	}

	sawHeader := false
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if strings.Contains(line, "---") {
			sawHeader = true
			continue
		}
		if !sawHeader {
			// Header row, before the separator.
			continue
		}
		cells := splitRow(line)
		if len(cells) < 4 {
			continue
		}
		name := strings.ToLower(cells[0])
		if name == "" {
			continue
		}
		out[name] = Heartbeat{
			LastSeen: parseTime(cells[2]),
			Status:   DecodeGlyph(cells[3]),
		}
	}
	return out
}

// splitRow splits a markdown table row into trimmed cell values.
func splitRow(line string) []string {
	line = strings.Trim(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
