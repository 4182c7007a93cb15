// Package render turns fetched GitHub records into chat-ready reply text.
// Replies are plain markdown so they read the same in a chat channel and
// on a terminal; URLs are wrapped in angle brackets to suppress link
// previews.
package render

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/mentions"
)

// Repository renders the reply for a repository lookup.
func Repository(repo *gh.Repository) string {
	sb := strings.Builder{}
	sb.WriteString("**" + repo.FullName + "**")
	if repo.IsFork {
		sb.WriteString(" (fork)")
	}
	if repo.Stats.Archived {
		sb.WriteString(" (archived)")
	}
	sb.WriteString("\n")
	if repo.Description != "" {
		sb.WriteString(repo.Description + "\n")
	}
	sb.WriteString("Owner: " + repo.Owner.Name + " (" + string(repo.Owner.Kind) + ")\n")
	sb.WriteString(
		"Stars: " + humanize.Comma(int64(repo.Stats.Stars)) +
			" | Forks: " + humanize.Comma(int64(repo.Stats.ForksCount)) +
			" | Open issues & PRs: " + humanize.Comma(int64(repo.Stats.OpenIssuesAndPRs)) + "\n",
	)
	sb.WriteString("Default branch: " + repo.Stats.DefaultBranch + "\n")
	if len(repo.Stats.Topics) > 0 {
		sb.WriteString("Topics: " + strings.Join(repo.Stats.Topics, ", ") + "\n")
	}
	sb.WriteString("Created " + humanize.Time(repo.Stats.CreatedAt))
	if repo.Stats.PushedAt != nil {
		sb.WriteString(", last push " + humanize.Time(*repo.Stats.PushedAt))
	}
	sb.WriteString("\n")
	sb.WriteString("<" + repo.URL + ">")
	return sb.String()
}

// Issue renders the reply for an issue or pull request lookup.
func Issue(issue *gh.Issue) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("**#%d %s**", issue.Number, issue.Title))
	if issue.Kind == gh.IssueKindPullRequest {
		sb.WriteString(" (pull request)")
	}
	sb.WriteString("\n")
	sb.WriteString("State: " + issue.State)
	if issue.StateReason != "" {
		sb.WriteString(" (" + issue.StateReason + ")")
	}
	sb.WriteString("\n")
	sb.WriteString("Author: " + issue.Author.Name + "\n")
	sb.WriteString("Comments: " + humanize.Comma(int64(issue.CommentCount)) + "\n")
	sb.WriteString("Created " + humanize.Time(issue.CreatedAt))
	if issue.ClosedAt != nil {
		sb.WriteString(", closed " + humanize.Time(*issue.ClosedAt))
	}
	sb.WriteString("\n")
	sb.WriteString("<" + issue.URL + ">")
	return sb.String()
}

// Resolution renders one scanned reference as a single reply line.
func Resolution(res mentions.Resolution) string {
	if res.Err != nil {
		return "**" + res.Ref.String() + "** " + ErrorDescription(res.Err)
	}
	issue := res.Issue
	state := issue.State
	if issue.Kind == gh.IssueKindPullRequest {
		state = "pull request, " + state
	}
	return fmt.Sprintf("**%s** %s (%s) <%s>", res.Ref, issue.Title, state, issue.URL)
}

// Resolutions renders the reply for a whole scanned message, one line per
// reference. An empty result set renders as the empty string, which
// callers treat as "no reply".
func Resolutions(results []mentions.Resolution) string {
	lines := make([]string, len(results))
	for i, res := range results {
		lines[i] = Resolution(res)
	}
	return strings.Join(lines, "\n")
}

// ErrorDescription says what went wrong with a lookup in words fit for a
// chat reply. The full error chain still goes to the log; replies only
// carry the category.
func ErrorDescription(err error) string {
	switch {
	case errors.Is(err, mentions.ErrNoDefaultScope):
		return "no default repository is configured"
	case errors.Is(err, gh.ErrNotFound):
		return "not found on GitHub"
	case errors.Is(err, gh.ErrUnauthorized):
		return "GitHub rejected the configured token"
	case errors.Is(err, gh.ErrMalformedResponse), errors.Is(err, gh.ErrParseTimestamp):
		return "GitHub sent a response that could not be read"
	default:
		return "GitHub request failed"
	}
}
