package lintci

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-github/v56/github"
)

// Status is the commit status payload reported to the code host.
type Status struct {
	Owner string
	Repo  string
	SHA   string

	State       string // "success" or "failure"
	TargetURL   string
	Description string
	Context     string
}

// stateFor maps the lint error total to a commit status state.
func stateFor(errorCount int) string {
	if errorCount == 0 {
		return "success"
	}
	return "failure"
}

// statusPoster sends a commit status to the code host.
type statusPoster interface {
	post(ctx context.Context, s *Status) error
}

// githubPoster posts commit statuses through the GitHub REST API.
type githubPoster struct {
	token string

	// baseURL is an alternative API base URL, for testing.
	baseURL *url.URL
}

func newGitHubPoster(token string) *githubPoster {
	return &githubPoster{token: token}
}

func (p *githubPoster) post(ctx context.Context, s *Status) error {
	client := github.NewClient(nil).WithAuthToken(p.token)
	if p.baseURL != nil {
		client.BaseURL = p.baseURL
	}

	repoStatus := &github.RepoStatus{
		State:       github.String(s.State),
		Description: github.String(s.Description),
		Context:     github.String(s.Context),
	}
	if s.TargetURL != "" {
		repoStatus.TargetURL = github.String(s.TargetURL)
	}

	_, _, err := client.Repositories.CreateStatus(
		ctx, s.Owner, s.Repo, s.SHA, repoStatus,
	)
	if err != nil {
		return fmt.Errorf("create commit status: %w", err)
	}
	return nil
}
