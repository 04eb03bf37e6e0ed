package source

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/crewdeck/crewdeck/internal/workspace"
)

// Dir reads workspace documents from a local directory.
type Dir struct {
	Path    string
	Board   string
	Pending string
	Squad   string
}

// NewDir creates a Dir provider with the default file names.
func NewDir(path string) *Dir {
	return &Dir{Path: path, Board: BoardFile, Pending: PendingFile, Squad: SquadFile}
}

// Load reads the three documents concurrently. A missing file yields an
// empty document, not an error; other read failures are logged and also
// degrade to empty.
func (d *Dir) Load(ctx context.Context) (workspace.Documents, error) {
	read := func(name string) func() string {
		return func() string {
			data, err := os.ReadFile(filepath.Join(d.Path, name))
			if err != nil {
				if !os.IsNotExist(err) {
					log.Printf("source: read %s: %v", name, err)
				}
				return ""
			}
			return string(data)
		}
	}
	return loadThree(read(d.Board), read(d.Pending), read(d.Squad)), nil
}
