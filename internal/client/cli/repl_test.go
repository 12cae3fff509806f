package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which commands the REPL dispatched and with what
// arguments.
type fakeExec struct {
	loggedIn bool

	calls    []string
	replyID  int64
	likeID   int64
	feedPage int
	profile  string

	err error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return f.err
}

func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	return f.err
}

func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	return f.err
}

func (f *fakeExec) Post(context.Context) error {
	f.calls = append(f.calls, "post")
	return f.err
}

func (f *fakeExec) Reply(_ context.Context, parentID int64) error {
	f.calls = append(f.calls, "reply")
	f.replyID = parentID
	return f.err
}

func (f *fakeExec) Like(_ context.Context, postID int64) error {
	f.calls = append(f.calls, "like")
	f.likeID = postID
	return f.err
}

func (f *fakeExec) Feed(_ context.Context, page int) error {
	f.calls = append(f.calls, "feed")
	f.feedPage = page
	return f.err
}

func (f *fakeExec) Profile(_ context.Context, username string) error {
	f.calls = append(f.calls, "profile")
	f.profile = username
	return f.err
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "(test)" }, scanner)
	return *lines
}

func TestREPL_DispatchesCommands(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	runScript(t, f, "post\nreply 7\nlike 42\nfeed 2\nprofile alice\nlogout\nexit\n")

	assert.Equal(t, []string{"post", "reply", "like", "feed", "profile", "logout"}, f.calls)
	assert.Equal(t, int64(7), f.replyID)
	assert.Equal(t, int64(42), f.likeID)
	assert.Equal(t, 2, f.feedPage)
	assert.Equal(t, "alice", f.profile)
}

func TestREPL_FeedShorthandAndDefaultPage(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "f\n")

	assert.Equal(t, []string{"feed"}, f.calls)
	assert.Equal(t, 0, f.feedPage)
}

func TestREPL_ExitStopsLoop(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "exit\npost\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runScript(t, f, "frobnicate\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_UsageOnBadArguments(t *testing.T) {
	f := &fakeExec{loggedIn: true}
	out := runScript(t, f, "reply\nlike abc\nfeed -1\nprofile\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "Usage: reply <post-id>")
	assert.Contains(t, out, "Usage: like <post-id>")
	assert.Contains(t, out, "Usage: feed [page]")
	assert.Contains(t, out, "Usage: profile <username>")
}

func TestREPL_ErrorsArePrintedNotFatal(t *testing.T) {
	f := &fakeExec{err: errors.New("boom")}
	out := runScript(t, f, "login\nregister\n")

	assert.Equal(t, []string{"login", "register"}, f.calls)
	var errorLines int
	for _, l := range out {
		if l == "Error: boom" {
			errorLines++
		}
	}
	assert.Equal(t, 2, errorLines)
}

func TestREPL_HelpReflectsAuthState(t *testing.T) {
	anon := runScript(t, &fakeExec{}, "help\n")
	var anonHelp string
	for _, l := range anon {
		if strings.HasPrefix(l, "Available commands:") {
			anonHelp = l
		}
	}
	assert.Contains(t, anonHelp, "register")
	assert.NotContains(t, anonHelp, "logout")

	authed := runScript(t, &fakeExec{loggedIn: true}, "help\n")
	var authedHelp string
	for _, l := range authed {
		if strings.HasPrefix(l, "Available commands:") {
			authedHelp = l
		}
	}
	assert.Contains(t, authedHelp, "logout")
	assert.NotContains(t, authedHelp, "register")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	f := &fakeExec{}
	runScript(t, f, "\n   \nfeed\n")

	assert.Equal(t, []string{"feed"}, f.calls)
}
