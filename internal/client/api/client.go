// Package api implements the HTTP client for the Vibe microblog service.
//
// Every call reads the current bearer token from the injected TokenSource,
// issues one request, reads the whole body and returns it as a Result via
// the tolerant parse-or-raw rule. There are no retries; network failures
// surface as errors wrapped in ErrUnavailable.
package api

import "context"

// TokenSource supplies the current bearer token before each outgoing
// request. An empty token means the client is anonymous and no
// Authorization header is attached.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the typed surface of the Vibe API consumed by the rest of the
// client. Implementations return the server's reply as a Result even for
// application-level failures; only transport problems produce an error.
type Client interface {
	// Register creates an account. POST /register with a JSON body.
	Register(ctx context.Context, username, displayName, password string) (Result, error)

	// Token obtains an access token. POST /token with form-encoded
	// credentials; the OAuth2 password-grant convention, intentionally
	// asymmetric with Register.
	Token(ctx context.Context, username, password string) (Result, error)

	// Feed fetches one page of the global feed. GET /feed.
	Feed(ctx context.Context, page, pageSize int) (Result, error)

	// CreatePost publishes a post; parentID, when non-nil, makes it a
	// one-level reply. POST /posts with a JSON body.
	CreatePost(ctx context.Context, content string, parentID *int64) (Result, error)

	// Like likes a post. POST /posts/{id}/like with no body.
	Like(ctx context.Context, postID int64) (Result, error)

	// Profile fetches a user page. GET /users/{username}.
	Profile(ctx context.Context, username string) (Result, error)
}
