// Package bot turns chat messages into GitHub lookups: prefixed messages
// dispatch to commands, everything else is scanned for issue references.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/shlex"
	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/mentions"
	"github.com/prismo-bot/prismo/internal/render"
	"github.com/prismo-bot/prismo/internal/scope"
	"github.com/sirupsen/logrus"
)

// Bot answers chat messages using the GitHub API. Construct with New,
// open the API session with Start, then feed messages through
// HandleMessage until Stop.
type Bot struct {
	prefix       string
	defaultScope scope.Scope

	client    *gh.Client
	resolver  *mentions.Resolver
	startTime time.Time
}

func New(prefix string, defaultScope scope.Scope) *Bot {
	if prefix == "" {
		prefix = "!"
	}
	return &Bot{prefix: prefix, defaultScope: defaultScope}
}

// Start opens the GitHub session. Extra options are applied during
// session setup (tests point the client at a local server this way).
func (b *Bot) Start(token string, opts ...gh.Option) error {
	logrus.Info("opening the GitHub client")
	client := gh.New()
	if err := client.Setup(token, opts...); err != nil {
		return err
	}
	b.client = client
	b.resolver = mentions.NewResolver(client, b.defaultScope)
	b.startTime = time.Now()
	return nil
}

// Stop closes the GitHub session. A stopped bot can be started again;
// Start builds a fresh session each time.
func (b *Bot) Stop() error {
	if b.client == nil {
		return nil
	}
	logrus.Info("closing the GitHub client")
	client := b.client
	b.client = nil
	b.resolver = nil
	return client.Close()
}

// HandleMessage produces the reply for one incoming message. An empty
// reply with a nil error means the message needs no answer. Problems a
// chat user can act on (bad arguments, failed lookups) come back as
// reply text; the error return is reserved for bot misuse, like handling
// messages before Start.
func (b *Bot) HandleMessage(ctx context.Context, message string) (string, error) {
	if b.client == nil || !b.client.Ready() {
		return "", gh.ErrNotReady
	}
	trimmed := strings.TrimSpace(message)
	if strings.HasPrefix(trimmed, b.prefix) {
		return b.handleCommand(ctx, strings.TrimPrefix(trimmed, b.prefix)), nil
	}
	return b.scanMentions(ctx, message), nil
}

func (b *Bot) handleCommand(ctx context.Context, line string) string {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Sprintf("could not read that command: %v", err)
	}
	if len(args) == 0 {
		return b.helpReply()
	}
	cmdName := args[0]
	args = args[1:]
	// Commands are case-insensitive, so "!Repo" works too.
	switch strings.ToLower(cmdName) {
	case "repo", "r":
		return b.repoReply(ctx, args)
	case "issue", "i", "pr":
		return b.issueReply(ctx, args)
	case "ping":
		return b.pingReply()
	case "help", "h":
		return b.helpReply()
	default:
		return fmt.Sprintf("unknown command %q, try %shelp", cmdName, b.prefix)
	}
}

func (b *Bot) repoReply(ctx context.Context, args []string) string {
	var target scope.Scope
	switch len(args) {
	case 1:
		parsed, err := scope.Parse(args[0])
		if err != nil {
			return fmt.Sprintf(
				"%q doesn't look like a repository, try %srepo <owner>/<repo>",
				args[0], b.prefix,
			)
		}
		target = parsed
	case 2:
		target = scope.Scope{Owner: args[0], Repo: args[1]}
	default:
		return fmt.Sprintf("usage: %srepo <owner>/<repo>", b.prefix)
	}
	repo, err := b.client.FetchRepository(ctx, target.Owner, target.Repo)
	if err != nil {
		logrus.WithError(err).Debug("repository lookup failed")
		return "could not fetch " + target.Slug() + ": " + render.ErrorDescription(err)
	}
	return render.Repository(repo)
}

func (b *Bot) issueReply(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return fmt.Sprintf("usage: %sissue <number | repo#number | org/repo#number>", b.prefix)
	}
	ref, ok := mentions.ParseReference(args[0])
	if !ok {
		return fmt.Sprintf("%q doesn't look like an issue reference", args[0])
	}
	res := b.resolver.Resolve(ctx, []mentions.Reference{ref})[0]
	if res.Err != nil {
		logrus.WithError(res.Err).Debug("issue lookup failed")
		return "could not fetch " + res.Ref.String() + ": " + render.ErrorDescription(res.Err)
	}
	return render.Issue(res.Issue)
}

func (b *Bot) pingReply() string {
	return fmt.Sprintf("pong! up for %s", time.Since(b.startTime).Round(time.Second))
}

func (b *Bot) helpReply() string {
	sb := strings.Builder{}
	sb.WriteString("**prismo commands**\n")
	sb.WriteString(b.prefix + "repo <owner>/<repo>: look up a repository\n")
	sb.WriteString(b.prefix + "issue <number | repo#number | org/repo#number>: look up an issue or pull request\n")
	sb.WriteString(b.prefix + "ping: check that the bot is alive\n")
	sb.WriteString(b.prefix + "help: show this message\n")
	sb.WriteString(fmt.Sprintf(
		"Plain messages are scanned for references too (up to %d per message).",
		mentions.MaxPerMessage,
	))
	return sb.String()
}

func (b *Bot) scanMentions(ctx context.Context, message string) string {
	refs := mentions.Detect(message)
	if len(refs) == 0 {
		return ""
	}
	logrus.WithField("count", len(refs)).Debug("resolving message references")
	return render.Resolutions(b.resolver.Resolve(ctx, refs))
}
