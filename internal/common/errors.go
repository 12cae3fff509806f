// Package common contains shared constants and sentinel errors used across
// the Vibe client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrUnexpectedResponse marks a well-formed server reply that lacks the
	// field the caller needs (e.g. no access_token after login, no id after
	// posting). The wrapped message carries the verbatim response body so
	// the user can inspect it.
	ErrUnexpectedResponse = errors.New("unexpected response")

	// ErrEmptyContent is returned when a post is rejected locally because
	// its content is empty after trimming whitespace. No request is made.
	ErrEmptyContent = errors.New("empty post content")

	// ErrActionInFlight is returned when a mutating action (post, like) is
	// rejected because another one has not finished yet.
	ErrActionInFlight = errors.New("another action is in progress")
)
