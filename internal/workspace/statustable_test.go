package workspace

import (
	"testing"
	"time"
)

const sampleSquadDoc = `# Squad

## 📊 Squad Status

| Agent | Domain | Last Heartbeat | Status |
|-------|--------|----------------|--------|
| Forge | backend | 2026-02-10 08:30 | 🟢 |
| Scout | research | 2026-02-10 07:00 | 🟡 |
| Atlas | infra | 2026-02-09 23:45 | 🔴 |
| Quill | docs | | ⚪ |

## 📝 Agent Reports

#### Forge
*last check: 2026-02-10 08:30*
All services green. Session cache refactor is halfway done and the
remaining work is tracked on the board.

#### Scout
*last check: 2026-02-10 07:00*
Benchmarking the new retrieval index.
`

func TestDecodeStatusTable(t *testing.T) {
	hb := DecodeStatusTable(sampleSquadDoc, StatusTableMarker)
	if len(hb) != 4 {
		t.Fatalf("rows = %d, want 4", len(hb))
	}

	tests := []struct {
		agent string
		want  AgentStatus
	}{
		{"forge", AgentOnline},
		{"scout", AgentBusy},
		{"atlas", AgentError},
		{"quill", AgentOffline},
	}
	for _, tt := range tests {
		got, ok := hb[tt.agent]
		if !ok {
			t.Errorf("agent %q missing from table", tt.agent)
			continue
		}
		if got.Status != tt.want {
			t.Errorf("%s status = %q, want %q", tt.agent, got.Status, tt.want)
		}
	}

	want := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	if forge := hb["forge"]; forge.LastSeen == nil || !forge.LastSeen.Equal(want) {
		t.Errorf("forge LastSeen = %v, want %v", forge.LastSeen, want)
	}
	if quill := hb["quill"]; quill.LastSeen != nil {
		t.Errorf("quill LastSeen = %v, want nil for empty cell", quill.LastSeen)
	}
}

func TestDecodeStatusTable_MissingSection(t *testing.T) {
	hb := DecodeStatusTable("# nothing here", StatusTableMarker)
	if len(hb) != 0 {
		t.Errorf("expected empty map, got %v", hb)
	}
}

func TestDecodeStatusTable_MalformedRows(t *testing.T) {
	doc := "## 📊 Squad Status\n\n| Agent | Domain |\n|---|---|\n| short row |\nnot a row at all\n"
	hb := DecodeStatusTable(doc, StatusTableMarker)
	if len(hb) != 0 {
		t.Errorf("malformed rows should be skipped, got %v", hb)
	}
}

func TestDecodeGlyph_Totality(t *testing.T) {
	tests := []struct {
		glyph string
		want  AgentStatus
	}{
		{"🟢", AgentOnline},
		{"🟡", AgentBusy},
		{"🔴", AgentError},
		{"⚪", AgentOffline},
		{"🔵", AgentOffline},
		{"", AgentOffline},
		{"banana", AgentOffline},
	}
	for _, tt := range tests {
		if got := DecodeGlyph(tt.glyph); got != tt.want {
			t.Errorf("DecodeGlyph(%q) = %q, want %q", tt.glyph, got, tt.want)
		}
	}
}
