package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vibecli/internal/common"
)

// Post prompts for content and publishes a top-level post.
func (a *App) Post(ctx context.Context) error {
	content, err := getSimpleText(a.reader, "What's on your mind?", a.out)
	if err != nil {
		return err
	}
	return a.createPost(ctx, content, nil)
}

// Reply prompts for content and publishes a one-level reply to parentID.
func (a *App) Reply(ctx context.Context, parentID int64) error {
	content, err := getSimpleText(a.reader, fmt.Sprintf("Reply to #%d", parentID), a.out)
	if err != nil {
		return err
	}
	return a.createPost(ctx, content, &parentID)
}

// createPost is the shared post/reply handler. Blank content (after
// trimming) is rejected locally with no network call. On a response
// carrying an id the feed is refreshed once so the new post becomes
// visible; any other response shape is surfaced verbatim.
func (a *App) createPost(ctx context.Context, content string, parentID *int64) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return common.ErrEmptyContent
	}

	if !a.actionMu.TryLock() {
		return common.ErrActionInFlight
	}
	defer a.actionMu.Unlock()

	res, err := a.api.CreatePost(ctx, content, parentID)
	if err != nil {
		return err
	}

	if !res.HasField("id") {
		return fmt.Errorf("%w: %s", common.ErrUnexpectedResponse, res.Verbatim())
	}

	return a.feed.Refresh(ctx, a.out, 0)
}

// Like likes a post by id and refreshes the feed when the server confirms
// with status "ok", so the updated count comes from the re-fetched feed.
func (a *App) Like(ctx context.Context, postID int64) error {
	if !a.actionMu.TryLock() {
		return common.ErrActionInFlight
	}
	defer a.actionMu.Unlock()

	res, err := a.api.Like(ctx, postID)
	if err != nil {
		return err
	}

	if status, ok := res.StringField("status"); !ok || status != "ok" {
		return fmt.Errorf("%w: %s", common.ErrUnexpectedResponse, res.Verbatim())
	}

	return a.feed.Refresh(ctx, a.out, 0)
}

// Feed renders one page of the global feed.
func (a *App) Feed(ctx context.Context, page int) error {
	return a.feed.Refresh(ctx, a.out, page)
}

// Profile renders a user page.
func (a *App) Profile(ctx context.Context, username string) error {
	return a.feed.ShowProfile(ctx, a.out, username)
}
