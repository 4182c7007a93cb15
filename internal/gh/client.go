// Package gh implements the GitHub API client used by the bot: session
// lifecycle, typed fetches for repository and issue metadata, and the
// mapping from REST payloads to domain values.
package gh

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/prismo-bot/prismo/internal/utils/logutils"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	githubAPIBaseURL = "https://api.github.com"
	acceptHeader     = "application/vnd.github+json"
	apiVersionHeader = "2022-11-28"

	requestTimeout = 10 * time.Second
)

type clientState int

const (
	stateNew clientState = iota
	stateReady
	stateClosed
)

// Client is a GitHub API session. The zero value (or New) is inert: call
// Setup to open the session and Close to dispose of it. Fetches in between
// may run concurrently from any number of goroutines; they share one
// authenticated connection pool. Setup and Close themselves must not be
// called concurrently with fetches or with each other.
type Client struct {
	state      clientState
	baseURL    string
	httpClient *http.Client
	gh         *githubv4.Client
}

// Option adjusts how Setup builds the session. Options exist for tests;
// production callers configure nothing beyond the token.
type Option func(*Client)

// WithBaseURL points the client at an alternate API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the HTTP client built during Setup. The
// replacement is used as-is, so it must inject credentials itself if the
// target cares about them.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New returns a client that is not yet connected.
func New() *Client {
	return &Client{}
}

// Setup opens the API session. It errors if the token is empty, if the
// session is already open, or if the client was closed (closed clients stay
// closed; create a new one instead).
func (c *Client) Setup(token string, opts ...Option) error {
	switch c.state {
	case stateReady:
		return errors.New("github client is already set up")
	case stateClosed:
		return errors.New("github client is closed")
	}
	if token == "" {
		return ErrNoGitHubToken
	}
	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	c.httpClient = oauth2.NewClient(context.Background(), src)
	c.baseURL = githubAPIBaseURL
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == githubAPIBaseURL {
		c.gh = githubv4.NewClient(c.httpClient)
	} else {
		c.gh = githubv4.NewEnterpriseClient(c.baseURL+"/graphql", c.httpClient)
	}
	c.state = stateReady
	logrus.Debug("GitHub client is ready")
	return nil
}

// Ready reports whether the session is open.
func (c *Client) Ready() bool {
	return c.state == stateReady
}

// Close releases the session. The client cannot be reused afterwards.
func (c *Client) Close() error {
	if c.state != stateReady {
		return errors.New("github client is not set up")
	}
	c.httpClient.CloseIdleConnections()
	c.state = stateClosed
	logrus.Debug("GitHub client is closed")
	return nil
}

// restGet executes a GET request to the endpoint (e.g., /repos/:owner/:repo)
// and unmarshals the response into result.
func (c *Client) restGet(ctx context.Context, endpoint string, result interface{}) error {
	if c.state != stateReady {
		return ErrNotReady
	}
	if endpoint[0] != '/' {
		logrus.WithField("endpoint", endpoint).Panicf("malformed REST endpoint")
	}

	startTime := time.Now()
	url := c.baseURL + endpoint
	log := logrus.WithField("url", url)
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	// The oauth2 transport adds Authorization; everything else is per-request.
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersionHeader)

	log.Debug("executing GitHub API request...")
	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(ErrRemote, "GitHub API request for %s failed: %v", endpoint, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(ErrRemote, "failed to read response body: %v", err)
	}
	log.WithField("elapsed", time.Since(startTime)).Debug("GitHub API request completed")

	if res.StatusCode != http.StatusOK {
		log.WithFields(logrus.Fields{
			"status": res.StatusCode,
			"body":   logutils.Format("%s", resBody),
		}).Debug("GitHub API request failed")
		return statusCodeError(endpoint, res.StatusCode, res.Status)
	}

	if err := json.Unmarshal(resBody, result); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "failed to unmarshal response body: %v", err)
	}
	return nil
}

func (c *Client) query(ctx context.Context, query any, variables map[string]any) (reterr error) {
	if c.state != stateReady {
		return ErrNotReady
	}
	log := logrus.WithFields(logrus.Fields{
		"variables": logutils.Format("%#+v", variables),
	})
	log.Debug("executing GitHub API query...")
	startTime := time.Now()
	defer func() {
		log := log.WithFields(logrus.Fields{
			"elapsed": time.Since(startTime),
			"result":  logutils.Format("%#+v", query),
		})
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API query failed")
		} else {
			log.Debug("GitHub API query succeeded")
		}
	}()
	return c.gh.Query(ctx, query, variables)
}
