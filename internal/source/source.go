// Package source loads workspace documents from their storage backend.
// Document reads are independent and issued concurrently; a document that
// cannot be read degrades to empty text so the reconciler still runs.
package source

import (
	"context"

	"github.com/crewdeck/crewdeck/internal/workspace"
)

// Default workspace document file names.
const (
	BoardFile   = "BOARD.md"
	PendingFile = "PENDING.md"
	SquadFile   = "SQUAD.md"
)

// Provider loads the three workspace documents.
type Provider interface {
	Load(ctx context.Context) (workspace.Documents, error)
}

// loadThree runs the three fetch functions concurrently and assembles the
// result. Individual failures are handled by the fetchers themselves.
func loadThree(board, pending, squad func() string) workspace.Documents {
	var docs workspace.Documents
	done := make(chan struct{}, 3)
	go func() { docs.Board = board(); done <- struct{}{} }()
	go func() { docs.Pending = pending(); done <- struct{}{} }()
	go func() { docs.Squad = squad(); done <- struct{}{} }()
	for i := 0; i < 3; i++ {
		<-done
	}
	return docs
}
