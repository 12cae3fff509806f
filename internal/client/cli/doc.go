// Package cli implements the interactive Vibe client: a read–eval–print
// loop that maps user commands onto the session controller, the API client
// and the feed synchronizer.
package cli
