package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v71/github"
	"golang.org/x/oauth2"

	"github.com/klauern/labelsync/internal/label"
	"github.com/klauern/labelsync/internal/logging"
)

// issuesService is the slice of go-github's IssuesService the adapter uses,
// extracted as an interface so tests can stub the API.
type issuesService interface {
	ListLabels(ctx context.Context, owner, repo string, opts *github.ListOptions) ([]*github.Label, *github.Response, error)
	GetLabel(ctx context.Context, owner, repo, name string) (*github.Label, *github.Response, error)
	CreateLabel(ctx context.Context, owner, repo string, lbl *github.Label) (*github.Label, *github.Response, error)
	EditLabel(ctx context.Context, owner, repo, name string, lbl *github.Label) (*github.Label, *github.Response, error)
	DeleteLabel(ctx context.Context, owner, repo, name string) (*github.Response, error)
}

// GitHub is a Store backed by the GitHub REST API. With DryRun set, mutating
// calls are suppressed and return nil, which the engine records as success.
type GitHub struct {
	issues issuesService
	owner  string
	repo   string
	dryRun bool
}

// GitHubOptions configures a GitHub store.
type GitHubOptions struct {
	// Token authenticates API calls. Required for mutations.
	Token string
	// Owner and Repo identify the repository whose labels are managed.
	Owner string
	Repo  string
	// DryRun suppresses all mutations.
	DryRun bool
}

// NewGitHub creates a GitHub label store for owner/repo.
func NewGitHub(opts GitHubOptions) (*GitHub, error) {
	if opts.Owner == "" || opts.Repo == "" {
		return nil, fmt.Errorf("github store requires owner and repo")
	}
	httpClient := http.DefaultClient
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	client := github.NewClient(httpClient)
	return &GitHub{
		issues: client.Issues,
		owner:  opts.Owner,
		repo:   opts.Repo,
		dryRun: opts.DryRun,
	}, nil
}

// List fetches every label in the repository, following pagination.
func (g *GitHub) List(ctx context.Context) ([]label.RemoteLabel, error) {
	var out []label.RemoteLabel
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := g.issues.ListLabels(ctx, g.owner, g.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing labels for %s/%s: %w", g.owner, g.repo, err)
		}
		for _, l := range page {
			out = append(out, remoteLabel(l))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	logging.Debug("listed remote labels",
		logging.Repo(g.owner+"/"+g.repo),
		logging.Count(len(out)),
	)
	return out, nil
}

// Get fetches a single label, returning (nil, nil) when it does not exist.
func (g *GitHub) Get(ctx context.Context, name string) (*label.RemoteLabel, error) {
	l, _, err := g.issues.GetLabel(ctx, g.owner, g.repo, name)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting label %q: %w", name, err)
	}
	rl := remoteLabel(l)
	return &rl, nil
}

// Create creates a new label. In dry-run mode it returns (nil, nil).
func (g *GitHub) Create(ctx context.Context, opts CreateOptions) (*label.RemoteLabel, error) {
	if g.dryRun {
		logging.Debug("dry-run: skipping create", logging.Label(opts.Name))
		return nil, nil
	}
	lbl := &github.Label{
		Name:        github.Ptr(opts.Name),
		Description: github.Ptr(opts.Description),
	}
	if opts.Color != "" {
		lbl.Color = github.Ptr(opts.Color)
	}
	created, _, err := g.issues.CreateLabel(ctx, g.owner, g.repo, lbl)
	if err != nil {
		return nil, err
	}
	rl := remoteLabel(created)
	return &rl, nil
}

// Update edits the named label, renaming it when opts.NewName is set. An
// empty Color leaves the remote color untouched. In dry-run mode it returns
// (nil, nil).
func (g *GitHub) Update(ctx context.Context, name string, opts UpdateOptions) (*label.RemoteLabel, error) {
	if g.dryRun {
		logging.Debug("dry-run: skipping update", logging.Label(name))
		return nil, nil
	}
	newName := name
	if opts.NewName != "" {
		newName = opts.NewName
	}
	lbl := &github.Label{
		Name:        github.Ptr(newName),
		Description: github.Ptr(opts.Description),
	}
	if opts.Color != "" {
		lbl.Color = github.Ptr(opts.Color)
	}
	updated, _, err := g.issues.EditLabel(ctx, g.owner, g.repo, name, lbl)
	if err != nil {
		return nil, err
	}
	rl := remoteLabel(updated)
	return &rl, nil
}

// Delete removes the named label. Dry-run mode is a no-op.
func (g *GitHub) Delete(ctx context.Context, name string) error {
	if g.dryRun {
		logging.Debug("dry-run: skipping delete", logging.Label(name))
		return nil
	}
	_, err := g.issues.DeleteLabel(ctx, g.owner, g.repo, name)
	return err
}

func remoteLabel(l *github.Label) label.RemoteLabel {
	return label.RemoteLabel{
		Name:        l.GetName(),
		Color:       l.GetColor(),
		Description: l.GetDescription(),
	}
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}
