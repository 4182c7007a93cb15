package mentions

import (
	"context"

	"github.com/prismo-bot/prismo/internal/gh"
	"github.com/prismo-bot/prismo/internal/scope"
	"golang.org/x/sync/errgroup"
)

// Resolver looks up detected references against the GitHub API.
type Resolver struct {
	client       *gh.Client
	defaultScope scope.Scope
}

func NewResolver(client *gh.Client, defaultScope scope.Scope) *Resolver {
	return &Resolver{client: client, defaultScope: defaultScope}
}

// Resolution is the outcome of looking up one reference. Exactly one of
// Issue and Err is set.
type Resolution struct {
	Ref   Reference
	Issue *gh.Issue
	Err   error
}

// Resolve fetches every reference concurrently and returns one
// resolution per reference, in the same order. A failed lookup is
// recorded in its own slot and never aborts the remaining lookups.
func (r *Resolver) Resolve(ctx context.Context, refs []Reference) []Resolution {
	results := make([]Resolution, len(refs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(MaxPerMessage)
	for i, ref := range refs {
		eg.Go(func() error {
			results[i] = r.resolveOne(egCtx, ref)
			return nil
		})
	}
	// The closures report failures through their result slot, never
	// through the group, so Wait only synchronizes here.
	_ = eg.Wait()

	return results
}

func (r *Resolver) resolveOne(ctx context.Context, ref Reference) Resolution {
	qualified, err := ref.Qualify(r.defaultScope)
	if err != nil {
		return Resolution{Ref: ref, Err: err}
	}
	issue, err := r.client.FetchIssueOrPR(ctx, qualified.Org, qualified.Repo, qualified.Number)
	if err != nil {
		return Resolution{Ref: qualified, Err: err}
	}
	return Resolution{Ref: qualified, Issue: issue}
}
