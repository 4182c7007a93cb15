package gh

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"emperror.dev/errors"
)

// RepoStats carries the activity counters and bookkeeping timestamps of a
// repository.
type RepoStats struct {
	ForksCount int
	Stars      int
	// DefaultBranch is the branch GitHub serves by default (usually "main").
	DefaultBranch string
	// OpenIssuesAndPRs is GitHub's combined open_issues counter, which
	// counts open pull requests as issues.
	OpenIssuesAndPRs int
	Topics           []string
	Archived         bool
	PushedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Repository is the metadata of a single GitHub repository.
type Repository struct {
	FullName    string
	Description string
	IsFork      bool
	Owner       User
	URL         string
	Stats       RepoStats
}

type repositoryPayload struct {
	FullName        string       `json:"full_name"`
	Description     string       `json:"description"`
	Fork            bool         `json:"fork"`
	HTMLURL         string       `json:"html_url"`
	Owner           *userPayload `json:"owner"`
	ForksCount      int          `json:"forks_count"`
	StargazersCount int          `json:"stargazers_count"`
	DefaultBranch   string       `json:"default_branch"`
	OpenIssues      int          `json:"open_issues"`
	Topics          []string     `json:"topics"`
	Archived        bool         `json:"archived"`
	PushedAt        string       `json:"pushed_at"`
	CreatedAt       string       `json:"created_at"`
	UpdatedAt       string       `json:"updated_at"`
}

// FetchRepository returns the metadata of the repository owner/name.
func (c *Client) FetchRepository(ctx context.Context, owner string, name string) (*Repository, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	var payload repositoryPayload
	if err := c.restGet(ctx, endpoint, &payload); err != nil {
		return nil, errors.WrapIff(err, "failed to fetch repository %s/%s", owner, name)
	}
	return mapRepository(&payload)
}

func mapRepository(payload *repositoryPayload) (*Repository, error) {
	// The owner sub-object is load-bearing: without it we can't attribute
	// the repository, so a response lacking it is rejected outright.
	if payload.Owner == nil {
		return nil, errors.Wrap(ErrMalformedResponse, "repository response has no owner")
	}
	createdAt, err := requiredTimestamp(payload.CreatedAt, "created_at")
	if err != nil {
		return nil, err
	}
	pushedAt, err := ParseTimestamp(payload.PushedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseTimestamp(payload.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &Repository{
		FullName:    payload.FullName,
		Description: payload.Description,
		IsFork:      payload.Fork,
		Owner:       mapUser(payload.Owner),
		URL:         payload.HTMLURL,
		Stats: RepoStats{
			ForksCount:       payload.ForksCount,
			Stars:            payload.StargazersCount,
			DefaultBranch:    payload.DefaultBranch,
			OpenIssuesAndPRs: payload.OpenIssues,
			Topics:           payload.Topics,
			Archived:         payload.Archived,
			PushedAt:         pushedAt,
			CreatedAt:        createdAt,
			UpdatedAt:        updatedAt,
		},
	}, nil
}
