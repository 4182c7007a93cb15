package gh

import (
	"net/http"

	"emperror.dev/errors"
)

// ErrNoGitHubToken is returned by Setup when no token is configured.
// Command surfaces special-case it to explain how to set one up.
var ErrNoGitHubToken = errors.Sentinel("no GitHub token is set (do you need to configure one?)")

// Fetch errors are wrapped versions of these sentinels so that callers can
// classify a failure with errors.Is without parsing message text.
var (
	// ErrNotReady is returned by fetches invoked before Setup or after Close.
	ErrNotReady = errors.Sentinel("github client is not ready")
	// ErrNotFound is returned when the API reports that the requested
	// resource does not exist (HTTP 404).
	ErrNotFound = errors.Sentinel("github resource not found")
	// ErrUnauthorized is returned when the API rejects the configured
	// credentials (HTTP 401/403).
	ErrUnauthorized = errors.Sentinel("github request unauthorized")
	// ErrRemote is returned for any other failure to complete a request:
	// connection errors, timeouts, and unexpected response statuses.
	ErrRemote = errors.Sentinel("github request failed")
	// ErrMalformedResponse is returned when the API responds successfully
	// but the payload is missing structure we depend on.
	ErrMalformedResponse = errors.Sentinel("github response is malformed")
	// ErrParseTimestamp is returned when a timestamp field is present but
	// not in the exact format the API is documented to produce.
	ErrParseTimestamp = errors.Sentinel("cannot parse github timestamp")
)

func statusCodeError(endpoint string, statusCode int, status string) error {
	switch statusCode {
	case http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "GitHub API request for %s failed: %s", endpoint, status)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrapf(ErrUnauthorized, "GitHub API request for %s failed: %s", endpoint, status)
	default:
		return errors.Wrapf(ErrRemote, "GitHub API request for %s failed: %s", endpoint, status)
	}
}
