package main

import (
	"emperror.dev/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/prismo-bot/prismo/internal/config"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/sirupsen/logrus"
)

var cachedClient *gh.Client

// getClient returns the process-wide GitHub client, opening the session on
// first use. Setup fails with gh.ErrNoGitHubToken when no token is
// configured.
func getClient() (*gh.Client, error) {
	if cachedClient == nil {
		client := gh.New()
		if err := client.Setup(config.Prismo.GitHub.Token); err != nil {
			return nil, err
		}
		cachedClient = client
	}
	return cachedClient, nil
}

// localGitDir returns the .git directory of the repository enclosing the
// working directory.
func localGitDir() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.Wrap(err, "failed to open git repository")
	}
	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", errors.New("repository storage is not on disk")
	}
	return storage.Filesystem().Root(), nil
}

// defaultScope resolves the repository that unqualified references use: the
// --repo flag wins, then bot.defaultrepo from the config, then the origin
// remote of the enclosing checkout. The zero scope means none of those are
// available; lookups that need one will say so.
func defaultScope() scope.Scope {
	if !rootFlags.Repo.IsZero() {
		return rootFlags.Repo
	}
	if config.Prismo.Bot.DefaultRepo != "" {
		s, err := scope.Parse(config.Prismo.Bot.DefaultRepo)
		if err != nil {
			logrus.WithError(err).Warning("ignoring malformed bot.defaultrepo in config")
		} else {
			return s
		}
	}
	s, err := scope.Detect(".")
	if err != nil {
		logrus.WithError(err).Debug("no default repository detected")
		return scope.Scope{}
	}
	return s
}
