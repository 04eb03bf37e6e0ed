package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_LoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		BoardFile:   "## 📥 Inbox\n- [ ] **One**\n",
		PendingFile: "## 📬 Pending\n### Two\n",
		SquadFile:   "## 📊 Squad Status\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	docs, err := NewDir(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs.Board != files[BoardFile] {
		t.Errorf("Board = %q", docs.Board)
	}
	if docs.Pending != files[PendingFile] {
		t.Errorf("Pending = %q", docs.Pending)
	}
	if docs.Squad != files[SquadFile] {
		t.Errorf("Squad = %q", docs.Squad)
	}
}

func TestDir_MissingFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BoardFile), []byte("board"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	docs, err := NewDir(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("a missing document must not fail the load: %v", err)
	}
	if docs.Board != "board" {
		t.Errorf("Board = %q", docs.Board)
	}
	if docs.Pending != "" || docs.Squad != "" {
		t.Errorf("missing documents should be empty, got %q / %q", docs.Pending, docs.Squad)
	}
}

func TestDir_MissingDirectory(t *testing.T) {
	docs, err := NewDir("/nonexistent/workspace").Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if docs.Board != "" || docs.Pending != "" || docs.Squad != "" {
		t.Errorf("expected all-empty documents, got %+v", docs)
	}
}
