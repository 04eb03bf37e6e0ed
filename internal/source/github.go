package source

import (
	"context"
	"log"
	"path"

	"github.com/crewdeck/crewdeck/internal/workspace"
	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// GitHub reads workspace documents from a path inside a GitHub repository.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
	path   string
	ref    string
}

// GitHubOpts holds parameters for creating a GitHub provider.
type GitHubOpts struct {
	Owner string
	Repo  string
	Path  string // directory inside the repo holding the documents
	Ref   string // branch or tag; empty means the default branch
	Token string // personal access token; empty means unauthenticated

	// For testing: inject a pre-built client.
	Client *github.Client
}

// NewGitHub creates a GitHub provider.
func NewGitHub(opts GitHubOpts) *GitHub {
	client := opts.Client
	if client == nil {
		var hc = oauth2.NewClient(context.Background(), nil)
		if opts.Token != "" {
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			hc = oauth2.NewClient(context.Background(), ts)
		}
		client = github.NewClient(hc)
	}
	return &GitHub{
		client: client,
		owner:  opts.Owner,
		repo:   opts.Repo,
		path:   opts.Path,
		ref:    opts.Ref,
	}
}

// Load fetches the three documents concurrently via the contents API. A
// fetch failure (404 included) degrades that document to empty text.
func (g *GitHub) Load(ctx context.Context) (workspace.Documents, error) {
	fetch := func(name string) func() string {
		return func() string {
			opts := &github.RepositoryContentGetOptions{Ref: g.ref}
			file, _, _, err := g.client.Repositories.GetContents(
				ctx, g.owner, g.repo, path.Join(g.path, name), opts)
			if err != nil || file == nil {
				if err != nil {
					log.Printf("source: github fetch %s: %v", name, err)
				}
				return ""
			}
			content, err := file.GetContent()
			if err != nil {
				log.Printf("source: github decode %s: %v", name, err)
				return ""
			}
			return content
		}
	}
	return loadThree(fetch(BoardFile), fetch(PendingFile), fetch(SquadFile)), nil
}
