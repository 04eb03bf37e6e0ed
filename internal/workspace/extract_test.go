package workspace

import (
	"strings"
	"testing"
)

const sampleBoard = `# Task Board

<!-- edited by hand, keep sections in order -->

## 📥 Inbox

- [ ] **Review webhook retries** — @Relay
- [ ] **Audit login flow**
  - reported: 2026-02-10

## 🎯 Assigned

- [ ] **Write migration guide** — @Quill

## 🔄 In Progress

- [ ] **Refactor session cache** — @Forge
  continues from last sprint

## ✅ Done

- [x] **Fix login bug** — @Forge
  - Added: 2026-01-30
`

func TestExtractSection_Found(t *testing.T) {
	body := ExtractSection(sampleBoard, "## 📥 Inbox")
	if !strings.Contains(body, "Review webhook retries") {
		t.Errorf("section body missing first item: %q", body)
	}
	if strings.Contains(body, "Write migration guide") {
		t.Errorf("section body leaked into next section: %q", body)
	}
}

func TestExtractSection_Missing(t *testing.T) {
	if got := ExtractSection(sampleBoard, "## 🧊 Frozen"); got != "" {
		t.Errorf("missing section = %q, want empty", got)
	}
}

func TestExtractSection_RunsToEOF(t *testing.T) {
	body := ExtractSection(sampleBoard, "## ✅ Done")
	if !strings.Contains(body, "Fix login bug") {
		t.Errorf("last section should run to end of document: %q", body)
	}
}

func TestSplitItems_Counts(t *testing.T) {
	tests := []struct {
		marker string
		want   int
	}{
		{"## 📥 Inbox", 2},
		{"## 🎯 Assigned", 1},
		{"## 🔄 In Progress", 1},
		{"## ✅ Done", 1},
	}
	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			items := ExtractItems(sampleBoard, tt.marker)
			if len(items) != tt.want {
				t.Errorf("items = %d, want %d: %#v", len(items), tt.want, items)
			}
		})
	}
}

func TestSplitItems_ContinuationAttaches(t *testing.T) {
	items := ExtractItems(sampleBoard, "## 🔄 In Progress")
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if !strings.Contains(items[0], "continues from last sprint") {
		t.Errorf("continuation line not attached: %q", items[0])
	}
}

func TestSplitItems_SkipsCommentsAndBlanks(t *testing.T) {
	section := "<!-- hidden -->\n\n- [ ] **One**\n\n<!-- note -->\n- [ ] **Two**\n"
	items := SplitItems(section)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2: %#v", len(items), items)
	}
	for _, item := range items {
		if strings.Contains(item, "<!--") {
			t.Errorf("comment leaked into item: %q", item)
		}
	}
}

func TestSplitItems_HeadingDialect(t *testing.T) {
	section := "### First task\n**Owner:** atlas\nprose line\n### Second task\n"
	items := SplitItems(section)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2: %#v", len(items), items)
	}
	if !strings.Contains(items[0], "prose line") {
		t.Errorf("first item lost its body: %q", items[0])
	}
}
