package api

import "errors"

var (
	// ErrUnavailable wraps network-level failures: the request never
	// produced a response (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")
)
