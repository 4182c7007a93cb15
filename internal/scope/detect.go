package scope

import (
	"strings"

	"emperror.dev/errors"
	giturls "github.com/chainguard-dev/git-urls"
	gogit "github.com/go-git/go-git/v5"
	"golang.org/x/exp/slices"
)

// Detect derives the default scope from the git repository containing dir,
// using the URL of the "origin" remote (or the first remote if there is no
// origin). Callers treat failure as "no default scope" rather than as fatal:
// the bot is routinely run outside any checkout.
func Detect(dir string) (Scope, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Scope{}, errors.Wrap(err, "failed to open git repository")
	}
	remotes, err := repo.Remotes()
	if err != nil {
		return Scope{}, errors.Wrap(err, "failed to list remotes")
	}
	if len(remotes) == 0 {
		return Scope{}, errors.New("repository has no remotes")
	}
	idx := slices.IndexFunc(remotes, func(r *gogit.Remote) bool {
		return r.Config().Name == "origin"
	})
	if idx < 0 {
		idx = 0
	}
	urls := remotes[idx].Config().URLs
	if len(urls) == 0 {
		return Scope{}, errors.Errorf("remote %q has no URL", remotes[idx].Config().Name)
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts the owner/repo scope from a git remote URL.
// For example, both https://github.com/my-org/my-repo.git and
// git@github.com:my-org/my-repo.git become my-org/my-repo.
func ParseRemoteURL(remoteURL string) (Scope, error) {
	u, err := giturls.Parse(remoteURL)
	if err != nil {
		return Scope{}, errors.WrapIff(err, "failed to parse remote url %q", remoteURL)
	}
	slug := strings.TrimSuffix(u.Path, ".git")
	slug = strings.TrimPrefix(slug, "/")
	return Parse(slug)
}
