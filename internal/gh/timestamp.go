package gh

import (
	"time"

	"emperror.dev/errors"
)

// TimestampLayout is the exact shape of every timestamp the REST API returns.
// The trailing Z is a literal, so strings carrying a numeric UTC offset (or no
// zone at all) are rejected rather than reinterpreted.
const TimestampLayout = "2006-01-02T15:04:05Z"

// ParseTimestamp converts an API timestamp string into a UTC time.
// The empty string represents an unset field (e.g. closed_at on an open
// issue) and maps to nil. Anything else must match TimestampLayout exactly;
// there is no partial parsing and no zone inference.
func ParseTimestamp(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return nil, errors.Wrapf(ErrParseTimestamp, "invalid timestamp %q", raw)
	}
	t = t.UTC()
	return &t, nil
}

// FormatTimestamp is the inverse of ParseTimestamp: formatting a parsed
// timestamp yields the original string byte for byte.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// requiredTimestamp parses a timestamp field that the API always populates
// (e.g. created_at). Its absence in an otherwise-successful response means
// the payload is malformed, not that the field is unset.
func requiredTimestamp(raw string, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.Wrapf(ErrMalformedResponse, "response is missing %s", field)
	}
	t, err := ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, err
	}
	return *t, nil
}
