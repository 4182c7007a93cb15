package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/dustin/go-humanize"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/prismo-bot/prismo/internal/utils/browser"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/prismo-bot/prismo/internal/utils/timeutils"
	"github.com/spf13/cobra"
)

var repoFlags struct {
	Web bool
}

var repoCmd = &cobra.Command{
	Use:          "repo [<owner>/<repo>]",
	Short:        "Look up a repository on GitHub",
	SilenceUsage: true,
	Args:         cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := defaultScope()
		if len(args) == 1 {
			parsed, err := scope.Parse(args[0])
			if err != nil {
				return err
			}
			target = parsed
		}
		if target.IsZero() {
			return errors.New(
				"no repository given (pass <owner>/<repo> or run inside a checkout)",
			)
		}

		client, err := getClient()
		if err != nil {
			return err
		}
		repo, err := client.FetchRepository(context.Background(), target.Owner, target.Repo)
		if err != nil {
			return err
		}

		if repoFlags.Web {
			return browser.Open(context.Background(), repo.URL)
		}
		printRepo(repo)
		return nil
	},
}

func init() {
	repoCmd.Flags().BoolVar(
		&repoFlags.Web, "web", false,
		"open the repository in a web browser",
	)
}

func printRepo(repo *gh.Repository) {
	indent := "    "
	fmt.Fprint(os.Stderr, colors.UserInput(repo.FullName))
	if repo.IsFork {
		fmt.Fprint(os.Stderr, " (fork)")
	}
	if repo.Stats.Archived {
		fmt.Fprint(os.Stderr, " (archived)")
	}
	fmt.Fprint(os.Stderr, "\n")
	if repo.Description != "" {
		fmt.Fprint(os.Stderr, indent, colors.Faint(repo.Description), "\n")
	}
	fmt.Fprint(
		os.Stderr,
		indent,
		"Owner: ",
		colors.UserInput(repo.Owner.Name),
		" (", string(repo.Owner.Kind), ")",
		"\n",
	)
	fmt.Fprint(
		os.Stderr,
		indent,
		"Stars: ",
		colors.UserInput(humanize.Comma(int64(repo.Stats.Stars))),
		"  Forks: ",
		colors.UserInput(humanize.Comma(int64(repo.Stats.ForksCount))),
		"  Open issues & PRs: ",
		colors.UserInput(humanize.Comma(int64(repo.Stats.OpenIssuesAndPRs))),
		"\n",
	)
	fmt.Fprint(
		os.Stderr,
		indent,
		"Default branch: ",
		colors.UserInput(repo.Stats.DefaultBranch),
		"\n",
	)
	if len(repo.Stats.Topics) > 0 {
		fmt.Fprint(
			os.Stderr,
			indent,
			"Topics: ",
			colors.UserInput(strings.Join(repo.Stats.Topics, ", ")),
			"\n",
		)
	}
	fmt.Fprint(
		os.Stderr,
		indent,
		"Created at: ",
		colors.UserInput(timeutils.FormatLocal(repo.Stats.CreatedAt)),
		"\n",
	)
	if repo.Stats.PushedAt != nil {
		fmt.Fprint(
			os.Stderr,
			indent,
			"Last push: ",
			colors.UserInput(timeutils.FormatLocal(*repo.Stats.PushedAt)),
			"\n",
		)
	}
	fmt.Fprint(os.Stderr, indent, "URL: ", colors.UserInput(repo.URL), "\n")
}
