package gh

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"emperror.dev/errors"
)

type IssueKind string

const (
	IssueKindIssue       IssueKind = "issue"
	IssueKindPullRequest IssueKind = "pull_request"
)

// Issue is a single record from the issues endpoint. GitHub serves pull
// requests through the same endpoint, so a fetched Issue may describe either;
// Kind says which. All other fields are read identically for both kinds.
type Issue struct {
	Kind IssueKind
	// URL is the API URL of the record. For pull requests this is the URL of
	// the pull request object, not of its issue-shaped mirror.
	URL          string
	CommentsURL  string
	Number       int
	State        string
	StateReason  string
	Title        string
	Description  string
	CommentCount int
	ClosedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	Author       User
}

type issuePayload struct {
	URL         string       `json:"url"`
	CommentsURL string       `json:"comments_url"`
	Number      int          `json:"number"`
	State       string       `json:"state"`
	StateReason string       `json:"state_reason"`
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	User        *userPayload `json:"user"`
	Comments    int          `json:"comments"`
	ClosedAt    string       `json:"closed_at"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

// FetchIssueOrPR returns issue number from the repository owner/name. The
// record may turn out to be a pull request; check Issue.Kind.
func (c *Client) FetchIssueOrPR(ctx context.Context, owner string, name string, number int) (*Issue, error) {
	endpoint := fmt.Sprintf(
		"/repos/%s/%s/issues/%d",
		url.PathEscape(owner), url.PathEscape(name), number,
	)
	var payload issuePayload
	if err := c.restGet(ctx, endpoint, &payload); err != nil {
		return nil, errors.WrapIff(err, "failed to fetch issue %s/%s#%d", owner, name, number)
	}
	return mapIssue(&payload)
}

func mapIssue(payload *issuePayload) (*Issue, error) {
	if payload.User == nil {
		return nil, errors.Wrap(ErrMalformedResponse, "issue response has no user")
	}
	createdAt, err := requiredTimestamp(payload.CreatedAt, "created_at")
	if err != nil {
		return nil, err
	}
	closedAt, err := ParseTimestamp(payload.ClosedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := ParseTimestamp(payload.UpdatedAt)
	if err != nil {
		return nil, err
	}
	issue := &Issue{
		Kind:         IssueKindIssue,
		URL:          payload.URL,
		CommentsURL:  payload.CommentsURL,
		Number:       payload.Number,
		State:        payload.State,
		StateReason:  payload.StateReason,
		Title:        payload.Title,
		Description:  payload.Body,
		CommentCount: payload.Comments,
		ClosedAt:     closedAt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		Author:       mapUser(payload.User),
	}
	// The presence of the pull_request key is the only thing distinguishing
	// a pull request from a plain issue on this endpoint.
	if payload.PullRequest != nil {
		issue.Kind = IssueKindPullRequest
		issue.URL = payload.PullRequest.URL
	}
	return issue, nil
}
