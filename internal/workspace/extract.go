package workspace

import "strings"

// itemStart reports whether a line begins a new item: a checkbox list
// marker or a level-3 heading.
func itemStart(line string) bool {
	return strings.HasPrefix(line, "- [ ] ") ||
		strings.HasPrefix(line, "- [x] ") ||
		strings.HasPrefix(line, "- [X] ") ||
		strings.HasPrefix(line, "### ")
}

// ExtractSection returns the body of the section whose heading line starts
// with marker, up to the next top-level heading or end of document. A
// missing section returns the empty string.
func ExtractSection(doc, marker string) string {
	lines := strings.Split(doc, "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), marker) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

// SplitItems slices a section body into raw item strings. An item starts
// at a checkbox marker or a ### heading; later lines attach to the current
// item as continuation. Blank lines and HTML comments never start an item
// and are dropped from the item text. Text before the first item start is
// ignored.
func SplitItems(section string) []string {
	var items []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			items = append(items, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(section, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<!--") {
			continue
		}
		if itemStart(line) {
			flush()
			cur = []string{line}
			continue
		}
		if len(cur) > 0 {
			cur = append(cur, line)
		}
	}
	flush()
	return items
}

// ExtractItems is ExtractSection followed by SplitItems.
func ExtractItems(doc, marker string) []string {
	return SplitItems(ExtractSection(doc, marker))
}
