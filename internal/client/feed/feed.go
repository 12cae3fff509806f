// Package feed keeps the displayed feed consistent with server state. The
// view has no cache: every refresh fetches the feed again and fully
// replaces what was rendered before, so the display order is exactly the
// server's order and repeated refreshes are idempotent.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/vibecli/internal/client/api"
	"github.com/dmitrijs2005/vibecli/internal/client/models"
	"github.com/dmitrijs2005/vibecli/internal/logging"
)

// Refresher is the synchronization surface used by action handlers: after a
// mutation they ask for a refresh of the first page so the view reflects
// the server's new state.
type Refresher interface {
	Refresh(ctx context.Context, w io.Writer, page int) error
}

// Synchronizer fetches and renders the feed. Concurrent refreshes of the
// same page are collapsed into a single fetch via singleflight: both
// callers render the one response, so racing refreshes cannot interleave
// two different snapshots.
type Synchronizer struct {
	client   api.Client
	log      logging.Logger
	group    singleflight.Group
	pageSize int
}

func NewSynchronizer(client api.Client, log logging.Logger, pageSize int) *Synchronizer {
	return &Synchronizer{client: client, log: log, pageSize: pageSize}
}

// Refresh fetches one page of the feed and writes the full snapshot to w.
//
// A JSON array renders as post nodes; any other body (an error object, a
// plain-text page) is written verbatim instead of a post list. Only
// transport failures return an error.
func (s *Synchronizer) Refresh(ctx context.Context, w io.Writer, page int) error {
	key := fmt.Sprintf("feed:%d", page)
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.client.Feed(ctx, page, s.pageSize)
	})
	if err != nil {
		return err
	}
	if shared {
		s.log.Info(ctx, "refresh coalesced with an in-flight fetch", "page", page)
	}

	res := v.(api.Result)
	if !res.IsArray() {
		fmt.Fprintln(w, res.Verbatim())
		return nil
	}

	posts, err := models.DecodePosts(res.Body())
	if err != nil {
		// An array whose elements do not decode as posts gets the same
		// opaque treatment as any other unexpected shape.
		s.log.Warn(ctx, "feed decode failed", "error", err.Error())
		fmt.Fprintln(w, res.Verbatim())
		return nil
	}

	Render(w, posts)
	return nil
}

// ShowProfile fetches a user page and renders it to w. Unexpected shapes
// are written verbatim, mirroring Refresh.
func (s *Synchronizer) ShowProfile(ctx context.Context, w io.Writer, username string) error {
	res, err := s.client.Profile(ctx, username)
	if err != nil {
		return err
	}

	if !res.HasField("username") {
		fmt.Fprintln(w, res.Verbatim())
		return nil
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(res.Body()), &profile); err != nil {
		s.log.Warn(ctx, "profile decode failed", "error", err.Error())
		fmt.Fprintln(w, res.Verbatim())
		return nil
	}

	RenderProfile(w, &profile)
	return nil
}
