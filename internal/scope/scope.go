// Package scope tracks the default repository that unqualified issue
// references resolve against.
package scope

import (
	"strings"

	"emperror.dev/errors"
	"github.com/spf13/pflag"
)

// Scope is an owner/repo pair. The zero value means "no default repository
// configured"; references that need the missing parts then fail to resolve.
type Scope struct {
	Owner string
	Repo  string
}

// Parse converts an "owner/repo" slug into a Scope.
func Parse(slug string) (Scope, error) {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" {
		return Scope{}, errors.Errorf(
			"unable to parse repository slug (expected <owner>/<repo>): %q", slug,
		)
	}
	if strings.Contains(repo, "/") {
		return Scope{}, errors.Errorf("repository slug has too many segments: %q", slug)
	}
	return Scope{Owner: owner, Repo: repo}, nil
}

// IsZero reports whether no default repository is configured.
func (s Scope) IsZero() bool {
	return s.Owner == "" && s.Repo == ""
}

func (s Scope) Slug() string {
	if s.IsZero() {
		return ""
	}
	return s.Owner + "/" + s.Repo
}

var _ pflag.Value = (*Scope)(nil)

// String implements pflag.Value.
func (s *Scope) String() string {
	return s.Slug()
}

// Set implements pflag.Value so a Scope can back a --repo flag directly.
func (s *Scope) Set(value string) error {
	parsed, err := Parse(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Scope) Type() string {
	return "owner/repo"
}
