package bot_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prismo-bot/prismo/internal/bot"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoBody = `{
	"full_name": "octo/spoon",
	"description": "Bendy cutlery",
	"fork": false,
	"html_url": "https://github.com/octo/spoon",
	"owner": {
		"login": "octo",
		"type": "Organization",
		"avatar_url": "https://example.com/octo.png",
		"html_url": "https://github.com/octo"
	},
	"forks_count": 7,
	"stargazers_count": 42,
	"default_branch": "main",
	"open_issues": 3,
	"topics": ["cutlery"],
	"archived": false,
	"pushed_at": "2023-02-01T10:00:00Z",
	"created_at": "2020-01-01T00:00:00Z",
	"updated_at": "2023-02-01T10:00:00Z"
}`

func issueBody(number int) string {
	return fmt.Sprintf(`{
		"url": "https://api.github.com/repos/Disnake/disnake/issues/%[1]d",
		"comments_url": "https://api.github.com/repos/Disnake/disnake/issues/%[1]d/comments",
		"number": %[1]d,
		"state": "open",
		"title": "issue %[1]d",
		"body": "",
		"comments": 2,
		"created_at": "2023-01-02T15:04:05Z",
		"user": {
			"login": "octocat",
			"type": "User",
			"avatar_url": "https://example.com/octocat.png",
			"html_url": "https://github.com/octocat"
		}
	}`, number)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octo/spoon":
			fmt.Fprint(w, repoBody)
		case "/repos/Disnake/disnake/issues/123":
			fmt.Fprint(w, issueBody(123))
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message": "Not Found"}`)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func startTestBot(t *testing.T, defaultScope scope.Scope) *bot.Bot {
	t.Helper()
	server := newTestServer(t)
	b := bot.New("!", defaultScope)
	require.NoError(t, b.Start("test-token", gh.WithBaseURL(server.URL)))
	t.Cleanup(func() { _ = b.Stop() })
	return b
}

func TestHandleMessageBeforeStart(t *testing.T) {
	b := bot.New("!", scope.Scope{})
	_, err := b.HandleMessage(context.Background(), "!ping")
	assert.ErrorIs(t, err, gh.ErrNotReady)
}

func TestStopAndRestart(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	b := bot.New("!", scope.Scope{})

	require.NoError(t, b.Start("test-token", gh.WithBaseURL(server.URL)))
	_, err := b.HandleMessage(ctx, "!ping")
	require.NoError(t, err)

	require.NoError(t, b.Stop())
	_, err = b.HandleMessage(ctx, "!ping")
	assert.ErrorIs(t, err, gh.ErrNotReady)

	// Start builds a fresh session, so a stopped bot can come back.
	require.NoError(t, b.Start("test-token", gh.WithBaseURL(server.URL)))
	reply, err := b.HandleMessage(ctx, "!ping")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "pong!"), reply)
	require.NoError(t, b.Stop())
}

func TestRepoCommand(t *testing.T) {
	ctx := context.Background()
	b := startTestBot(t, scope.Scope{})

	reply, err := b.HandleMessage(ctx, "!repo octo/spoon")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "**octo/spoon**"), reply)
	assert.Contains(t, reply, "Default branch: main")

	// The two-argument form, quoting, and casing all reach the same place.
	for _, message := range []string{"!repo octo spoon", `!repo "octo" "spoon"`, "!REPO octo/spoon"} {
		other, err := b.HandleMessage(ctx, message)
		require.NoError(t, err)
		assert.Equal(t, reply, other, message)
	}
}

func TestRepoCommandProblems(t *testing.T) {
	ctx := context.Background()
	b := startTestBot(t, scope.Scope{})

	reply, err := b.HandleMessage(ctx, "!repo octo/nope")
	require.NoError(t, err)
	assert.Equal(t, "could not fetch octo/nope: not found on GitHub", reply)

	reply, err = b.HandleMessage(ctx, "!repo")
	require.NoError(t, err)
	assert.Equal(t, "usage: !repo <owner>/<repo>", reply)

	reply, err = b.HandleMessage(ctx, "!repo not-a-slug")
	require.NoError(t, err)
	assert.Contains(t, reply, "doesn't look like a repository")
}

func TestIssueCommand(t *testing.T) {
	ctx := context.Background()
	b := startTestBot(t, scope.Scope{Owner: "Disnake", Repo: "disnake"})

	// A bare number resolves against the default scope.
	reply, err := b.HandleMessage(ctx, "!issue 123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "**#123 issue 123**"), reply)
	assert.Contains(t, reply, "Author: octocat")

	reply, err = b.HandleMessage(ctx, "!issue Disnake/disnake#123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "**#123 issue 123**"), reply)

	reply, err = b.HandleMessage(ctx, "!issue nope")
	require.NoError(t, err)
	assert.Equal(t, `"nope" doesn't look like an issue reference`, reply)

	reply, err = b.HandleMessage(ctx, "!issue 456")
	require.NoError(t, err)
	assert.Equal(t, "could not fetch Disnake/disnake#456: not found on GitHub", reply)
}

func TestMentionScan(t *testing.T) {
	ctx := context.Background()
	b := startTestBot(t, scope.Scope{Owner: "Disnake", Repo: "disnake"})

	reply, err := b.HandleMessage(ctx, "fix Disnake/disnake#123 and #456")
	require.NoError(t, err)
	lines := strings.Split(reply, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "**Disnake/disnake#123**")
	assert.Contains(t, lines[0], "issue 123")
	assert.Equal(t, "**Disnake/disnake#456** not found on GitHub", lines[1])

	// Messages without references get no reply at all.
	reply, err = b.HandleMessage(ctx, "nothing interesting here")
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestPingHelpAndUnknown(t *testing.T) {
	ctx := context.Background()
	b := startTestBot(t, scope.Scope{})

	reply, err := b.HandleMessage(ctx, "!ping")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(reply, "pong! up for "), reply)

	reply, err = b.HandleMessage(ctx, "!help")
	require.NoError(t, err)
	assert.Contains(t, reply, "!repo <owner>/<repo>")
	assert.Contains(t, reply, "!issue")

	reply, err = b.HandleMessage(ctx, "!frobnicate")
	require.NoError(t, err)
	assert.Equal(t, `unknown command "frobnicate", try !help`, reply)
}
