package gh

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/shurcooL/graphql"
)

// Viewer is the account the configured token belongs to.
type Viewer struct {
	Name  graphql.String `graphql:"name"`
	Login graphql.String `graphql:"login"`
}

// Viewer looks up the token's own account via the GraphQL API. It's the
// cheapest way to tell whether the configured token is valid at all.
func (c *Client) Viewer(ctx context.Context) (*Viewer, error) {
	var query struct {
		Viewer Viewer `graphql:"viewer"`
	}
	err := c.query(ctx, &query, nil)
	if err != nil {
		// The GraphQL client folds HTTP failures into opaque error strings,
		// so a rejected token is recognized by its status text.
		if strings.Contains(err.Error(), "401") {
			return nil, errors.Wrapf(ErrUnauthorized, "github viewer query failed: %v", err)
		}
		return nil, err
	}
	return &query.Viewer, nil
}
