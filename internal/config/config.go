package config

import (
	"os"

	"emperror.dev/errors"
	"github.com/spf13/viper"
)

type GitHub struct {
	Token string
}

type Bot struct {
	// Prefix starts a command message (e.g. "!repo octo/spoon").
	Prefix string
	// DefaultRepo is the owner/repo pair that bare "#123" references
	// resolve against. Usually set per deployment; the CLI falls back to
	// the enclosing git checkout's origin remote when unset.
	DefaultRepo string
}

var Prismo = struct {
	GitHub GitHub
	Bot    Bot
}{
	Bot: Bot{
		Prefix: "!",
	},
}

// Load initializes the configuration values.
// It may optionally be called with a list of additional paths to check for the
// config file.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load(paths []string) (bool, error) {
	loaded, err := loadFromFile(paths)
	loadFromEnv()
	return loaded, err
}

func loadFromFile(paths []string) (bool, error) {
	config := viper.New()

	// Viper has support for various formats, so it supports json, toml, yaml,
	// and more (https://github.com/spf13/viper#reading-config-files).
	config.SetConfigName("config")

	// Reasonable places to look for config files.
	config.AddConfigPath("$XDG_CONFIG_HOME/prismo")
	config.AddConfigPath("$HOME/.config/prismo")
	config.AddConfigPath("$HOME/.prismo")
	config.AddConfigPath("$PRISMO_HOME")
	// Add additional custom paths.
	// The primary use case for this is adding repository-specific
	// configuration (e.g., $REPO/.git/prismo/config.json).
	for _, path := range paths {
		config.AddConfigPath(path)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Prismo); err != nil {
		return true, errors.Wrap(err, "failed to read prismo configs")
	}

	return true, nil
}

func loadFromEnv() {
	// TODO: integrate this better with cobra/viper/whatever
	if githubToken := os.Getenv("PRISMO_GITHUB_TOKEN"); githubToken != "" {
		Prismo.GitHub.Token = githubToken
	} else if githubToken := os.Getenv("GITHUB_TOKEN"); githubToken != "" {
		Prismo.GitHub.Token = githubToken
	}
	if defaultRepo := os.Getenv("PRISMO_DEFAULT_REPO"); defaultRepo != "" {
		Prismo.Bot.DefaultRepo = defaultRepo
	}
}
