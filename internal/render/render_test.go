package render_test

import (
	"strings"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/mentions"
	"github.com/prismo-bot/prismo/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestRepository(t *testing.T) {
	created := time.Now().Add(-48 * time.Hour)
	pushed := time.Now().Add(-2 * time.Hour)
	repo := &gh.Repository{
		FullName:    "octo/spoon",
		Description: "A repository about spoons.",
		IsFork:      true,
		Owner:       gh.User{Kind: gh.UserKindIndividual, Name: "octocat"},
		URL:         "https://github.com/octo/spoon",
		Stats: gh.RepoStats{
			ForksCount:       56,
			Stars:            1234,
			DefaultBranch:    "main",
			OpenIssuesAndPRs: 7,
			Topics:           []string{"cutlery", "metal"},
			PushedAt:         &pushed,
			CreatedAt:        created,
		},
	}

	want := strings.Join([]string{
		"**octo/spoon** (fork)",
		"A repository about spoons.",
		"Owner: octocat (individual)",
		"Stars: 1,234 | Forks: 56 | Open issues & PRs: 7",
		"Default branch: main",
		"Topics: cutlery, metal",
		"Created " + humanize.Time(created) + ", last push " + humanize.Time(pushed),
		"<https://github.com/octo/spoon>",
	}, "\n")
	assert.Equal(t, want, render.Repository(repo))
}

func TestRepositoryMinimal(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	repo := &gh.Repository{
		FullName: "octo/spoon",
		Owner:    gh.User{Kind: gh.UserKindOrganization, Name: "octo"},
		URL:      "https://github.com/octo/spoon",
		Stats: gh.RepoStats{
			DefaultBranch: "main",
			CreatedAt:     created,
		},
	}

	got := render.Repository(repo)
	// No description, topics, or push time, so none of those lines appear.
	want := strings.Join([]string{
		"**octo/spoon**",
		"Owner: octo (organization)",
		"Stars: 0 | Forks: 0 | Open issues & PRs: 0",
		"Default branch: main",
		"Created " + humanize.Time(created),
		"<https://github.com/octo/spoon>",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestIssue(t *testing.T) {
	created := time.Now().Add(-72 * time.Hour)
	closed := time.Now().Add(-24 * time.Hour)
	issue := &gh.Issue{
		Kind:         gh.IssueKindIssue,
		URL:          "https://api.github.com/repos/octo/spoon/issues/123",
		Number:       123,
		State:        "closed",
		StateReason:  "completed",
		Title:        "Fix the handle",
		CommentCount: 7,
		ClosedAt:     &closed,
		CreatedAt:    created,
		Author:       gh.User{Kind: gh.UserKindIndividual, Name: "octocat"},
	}

	want := strings.Join([]string{
		"**#123 Fix the handle**",
		"State: closed (completed)",
		"Author: octocat",
		"Comments: 7",
		"Created " + humanize.Time(created) + ", closed " + humanize.Time(closed),
		"<https://api.github.com/repos/octo/spoon/issues/123>",
	}, "\n")
	assert.Equal(t, want, render.Issue(issue))
}

func TestIssuePullRequestMarker(t *testing.T) {
	issue := &gh.Issue{
		Kind:      gh.IssueKindPullRequest,
		URL:       "https://api.github.com/repos/octo/spoon/pulls/99",
		Number:    99,
		State:     "open",
		Title:     "Add forks",
		CreatedAt: time.Now().Add(-time.Hour),
		Author:    gh.User{Kind: gh.UserKindIndividual, Name: "octocat"},
	}
	got := render.Issue(issue)
	assert.True(t, strings.HasPrefix(got, "**#99 Add forks** (pull request)\n"), got)
}

func TestResolution(t *testing.T) {
	issue := &gh.Issue{
		Kind:      gh.IssueKindPullRequest,
		URL:       "https://api.github.com/repos/octo/spoon/pulls/99",
		Number:    99,
		State:     "open",
		Title:     "Add forks",
		CreatedAt: time.Now(),
		Author:    gh.User{Kind: gh.UserKindIndividual, Name: "octocat"},
	}
	res := mentions.Resolution{
		Ref:   mentions.Reference{Org: "octo", Repo: "spoon", Number: 99},
		Issue: issue,
	}
	assert.Equal(
		t,
		"**octo/spoon#99** Add forks (pull request, open) <https://api.github.com/repos/octo/spoon/pulls/99>",
		render.Resolution(res),
	)
}

func TestResolutionErrors(t *testing.T) {
	ref := mentions.Reference{Org: "octo", Repo: "spoon", Number: 1}
	for _, tt := range []struct {
		Name string
		Err  error
		Want string
	}{
		{
			Name: "not found",
			Err:  errors.Wrap(gh.ErrNotFound, "failed to fetch issue octo/spoon#1"),
			Want: "**octo/spoon#1** not found on GitHub",
		},
		{
			Name: "unauthorized",
			Err:  gh.ErrUnauthorized,
			Want: "**octo/spoon#1** GitHub rejected the configured token",
		},
		{
			Name: "no scope",
			Err:  mentions.ErrNoDefaultScope,
			Want: "**octo/spoon#1** no default repository is configured",
		},
		{
			Name: "anything else",
			Err:  errors.New("boom"),
			Want: "**octo/spoon#1** GitHub request failed",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			got := render.Resolution(mentions.Resolution{Ref: ref, Err: tt.Err})
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestResolutions(t *testing.T) {
	assert.Empty(t, render.Resolutions(nil))

	results := []mentions.Resolution{
		{Ref: mentions.Reference{Number: 1}, Err: gh.ErrNotFound},
		{Ref: mentions.Reference{Number: 2}, Err: mentions.ErrNoDefaultScope},
	}
	assert.Equal(
		t,
		"**#1** not found on GitHub\n**#2** no default repository is configured",
		render.Resolutions(results),
	)
}
