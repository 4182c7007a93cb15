package main

import (
	"context"
	"fmt"
	"os"

	"emperror.dev/errors"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/prismo-bot/prismo/internal/utils/uiutils"
	"github.com/spf13/cobra"
)

var authStatusCmd = &cobra.Command{
	Use:          "status",
	Short:        "check auth status",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		viewer, err := client.Viewer(context.Background())
		if errors.Is(err, gh.ErrUnauthorized) {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Failure(
					"You are not logged in. Please verify that your API token is correct.\n",
				),
			)
			return uiutils.ErrExitSilently{ExitCode: 1}
		}
		if err != nil {
			return err
		}

		_, _ = fmt.Fprint(os.Stderr, "Logged in as ", colors.UserInput(viewer.Login), ".\n")
		return nil
	},
}
