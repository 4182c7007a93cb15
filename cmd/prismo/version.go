package main

import (
	"fmt"
	"os"
	"strings"

	"emperror.dev/errors"
	"github.com/prismo-bot/prismo/internal/config"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

var versionFlags struct {
	Check bool
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.Version)
		if !versionFlags.Check {
			return nil
		}

		latest, err := config.FetchLatestVersion()
		if err != nil {
			return errors.Wrap(err, "failed to determine the latest release")
		}
		if config.Version == config.VersionDev {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Warning("This is a development build; the latest release is ", latest, ".\n"),
			)
			return nil
		}
		if semver.Compare(withV(config.Version), withV(latest)) < 0 {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Warning("A newer release ", latest, " is available.\n"),
			)
			return nil
		}
		_, _ = fmt.Fprint(os.Stderr, colors.Success("You are on the latest release.\n"))
		return nil
	},
}

// withV normalizes a release name to the "vX.Y.Z" form semver expects.
func withV(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

func init() {
	versionCmd.Flags().BoolVar(
		&versionFlags.Check, "check", false,
		"check whether a newer release is available",
	)
}
