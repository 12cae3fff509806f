package common

const (
	// TokenStateKey is the fixed key the bearer token is stored under in
	// the local state table. The name matches the localStorage key used by
	// the web frontend so both clients are recognizable in support logs.
	TokenStateKey = "vibe_token"

	// UsernameStateKey stores the username of the active session so the
	// prompt can be restored after a restart. The token itself is opaque
	// and carries no recoverable identity client-side.
	UsernameStateKey = "vibe_username"
)
