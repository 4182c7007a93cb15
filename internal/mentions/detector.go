// Package mentions scans chat messages for issue references like
// "org/repo#123" and resolves each one to the issue or pull request it
// names.
package mentions

import (
	"fmt"
	"regexp"
	"strconv"

	"emperror.dev/errors"
	"github.com/prismo-bot/prismo/internal/scope"
)

// MaxPerMessage caps how many references a single message can carry.
// Matches beyond the cap are silently discarded so that one message can
// never fan out into an unbounded number of API calls.
const MaxPerMessage = 5

// ErrNoDefaultScope is returned when a reference omits its repository
// (or just the org) and no default scope is configured to fill it in.
var ErrNoDefaultScope = errors.Sentinel("no default repository is configured")

// referencePattern matches issue references inside free-form message text.
// Groups: 1 = organization (optional), 2 = repository (optional when the
// reference is a bare "#123"), 3 = issue number. Organization names start
// with an alphanumeric and run 2-40 characters; repository names allow
// word characters, hyphens, and dots, matching GitHub's own naming rules.
var referencePattern = regexp.MustCompile(
	`(?:(?:([a-zA-Z0-9][a-zA-Z0-9\-]{1,39})/)?([\w\-.]{1,100}))?#([0-9]+)`,
)

// Reference is a single issue mention parsed out of a message. Org is
// empty when the message used the "repo#1" shorthand, and both Org and
// Repo are empty for a bare "#1"; Qualify fills the missing parts from
// the default scope.
type Reference struct {
	Org    string
	Repo   string
	Number int
}

// String renders the reference the way it appeared in the message.
func (r Reference) String() string {
	switch {
	case r.Org != "":
		return fmt.Sprintf("%s/%s#%d", r.Org, r.Repo, r.Number)
	case r.Repo != "":
		return fmt.Sprintf("%s#%d", r.Repo, r.Number)
	default:
		return fmt.Sprintf("#%d", r.Number)
	}
}

// Qualify fills the reference's missing org (and repo, for a bare "#1")
// from the default scope. References that already name an organization
// pass through unchanged.
func (r Reference) Qualify(defaultScope scope.Scope) (Reference, error) {
	if r.Org != "" {
		return r, nil
	}
	if defaultScope.IsZero() {
		return r, errors.Wrapf(ErrNoDefaultScope, "cannot resolve %s", r)
	}
	r.Org = defaultScope.Owner
	if r.Repo == "" {
		r.Repo = defaultScope.Repo
	}
	return r, nil
}

// Detect returns the references mentioned in message in order of
// appearance, up to MaxPerMessage.
func Detect(message string) []Reference {
	var refs []Reference
	for _, m := range referencePattern.FindAllStringSubmatch(message, -1) {
		number, err := strconv.Atoi(m[3])
		if err != nil {
			// A number too large for an int can't name a real issue.
			continue
		}
		refs = append(refs, Reference{Org: m[1], Repo: m[2], Number: number})
		if len(refs) == MaxPerMessage {
			break
		}
	}
	return refs
}

// ParseReference reads a reference given as a command argument. It accepts
// "123", "#123", "repo#123", and "org/repo#123"; unlike Detect, the whole
// argument must be the reference.
func ParseReference(arg string) (Reference, bool) {
	if number, err := strconv.Atoi(arg); err == nil && number > 0 {
		return Reference{Number: number}, true
	}
	refs := Detect(arg)
	if len(refs) != 1 || refs[0].String() != arg {
		return Reference{}, false
	}
	return refs[0], true
}
