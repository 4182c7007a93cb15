package main

import (
	"fmt"
	"os"
	"path/filepath"

	"emperror.dev/errors"
	"github.com/kr/text"
	"github.com/prismo-bot/prismo/internal/config"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/prismo-bot/prismo/internal/utils/colors"
	"github.com/prismo-bot/prismo/internal/utils/errutils"
	"github.com/prismo-bot/prismo/internal/utils/uiutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Debug bool
	Repo  scope.Scope
}

var RootCmd = &cobra.Command{
	Use: "prismo",

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("prismo_version", config.Version).Debug("enabled debug logging")
		}

		var configDirs []string
		gitDir, err := localGitDir()
		// If we weren't able to find a Git repo, that probably just means the
		// command isn't being run from inside a checkout. That's fine, we
		// just don't need to bother reading repo-local config.
		if err != nil {
			logrus.WithError(err).Debug("unable to find a Git repo (probably not inside one)")
		} else {
			configDirs = append(configDirs, filepath.Join(gitDir, "prismo"))
			logrus.WithField("git_dir", gitDir).Debug("found enclosing Git repo")
		}

		// Note: this only returns an error if config exists and it can't be
		// read/parsed. It doesn't return an error if no config file exists.
		didLoadConfig, err := config.Load(configDirs)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().Var(
		&rootFlags.Repo, "repo",
		"repository that unqualified issue references resolve against",
	)
	RootCmd.AddCommand(
		authCmd,
		consoleCmd,
		issueCmd,
		repoCmd,
		scanCmd,
		versionCmd,
	)
}

func main() {
	colors.SetupBackgroundColorTypeFromEnv()
	err := RootCmd.Execute()
	if err == nil {
		return
	}
	if exitSilently, ok := errutils.As[uiutils.ErrExitSilently](err); ok {
		os.Exit(exitSilently.ExitCode)
	}

	// In debug mode, show more detailed information about the error
	// (including the stack trace if using pkg/errors).
	if rootFlags.Debug {
		stackTrace := fmt.Sprintf("%+v", err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n%s\n", err, text.Indent(stackTrace, "\t"))
	} else {
		_, _ = fmt.Fprint(os.Stderr, uiutils.RenderError(err))
	}
	os.Exit(1)
}
