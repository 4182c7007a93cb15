package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/kr/text"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/mentions"
	"github.com/prismo-bot/prismo/internal/utils/browser"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/prismo-bot/prismo/internal/utils/timeutils"
	"github.com/spf13/cobra"
)

var issueFlags struct {
	Web bool
}

var issueCmd = &cobra.Command{
	Use:          "issue <number | repo#number | org/repo#number>",
	Aliases:      []string{"pr"},
	Short:        "Look up an issue or pull request on GitHub",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, ok := mentions.ParseReference(args[0])
		if !ok {
			return errors.Errorf("%q doesn't look like an issue reference", args[0])
		}
		ref, err := ref.Qualify(defaultScope())
		if err != nil {
			return err
		}

		client, err := getClient()
		if err != nil {
			return err
		}
		issue, err := client.FetchIssueOrPR(context.Background(), ref.Org, ref.Repo, ref.Number)
		if err != nil {
			return err
		}

		if issueFlags.Web {
			// github.com redirects the issues path to the pull request page,
			// but linking the right one directly saves the round trip.
			kindPath := "issues"
			if issue.Kind == gh.IssueKindPullRequest {
				kindPath = "pull"
			}
			url := fmt.Sprintf(
				"https://github.com/%s/%s/%s/%d",
				ref.Org, ref.Repo, kindPath, ref.Number,
			)
			return browser.Open(context.Background(), url)
		}
		printIssue(issue)
		return nil
	},
}

func init() {
	issueCmd.Flags().BoolVar(
		&issueFlags.Web, "web", false,
		"open the issue in a web browser",
	)
}

func printIssue(issue *gh.Issue) {
	indent := "    "
	fmt.Fprint(os.Stderr, "#", issue.Number, " ", colors.UserInput(issue.Title))
	if issue.Kind == gh.IssueKindPullRequest {
		fmt.Fprint(os.Stderr, " (pull request)")
	}
	fmt.Fprint(os.Stderr, "\n")

	fmt.Fprint(os.Stderr, indent, "State: ", colors.UserInput(issue.State))
	if issue.StateReason != "" {
		fmt.Fprint(os.Stderr, " (", colors.UserInput(issue.StateReason), ")")
	}
	fmt.Fprint(os.Stderr, "\n")

	fmt.Fprint(os.Stderr, indent, "Author: ", colors.UserInput(issue.Author.Name), "\n")
	fmt.Fprint(os.Stderr, indent, "Comments: ", colors.UserInput(issue.CommentCount), "\n")
	fmt.Fprint(
		os.Stderr,
		indent,
		"Created at: ",
		colors.UserInput(timeutils.FormatLocal(issue.CreatedAt)),
		"\n",
	)
	if issue.ClosedAt != nil {
		fmt.Fprint(
			os.Stderr,
			indent,
			"Closed at: ",
			colors.UserInput(timeutils.FormatLocal(*issue.ClosedAt)),
			"\n",
		)
	}
	fmt.Fprint(os.Stderr, indent, "URL: ", colors.UserInput(issue.URL), "\n")

	if desc := strings.TrimSpace(issue.Description); desc != "" {
		fmt.Fprint(os.Stderr, "\n", colors.Faint(text.Indent(desc, indent)), "\n")
	}
}
