package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Post(ctx context.Context) error
	Reply(ctx context.Context, parentID int64) error
	Like(ctx context.Context, postID int64) error
	Feed(ctx context.Context, page int) error
	Profile(ctx context.Context, username string) error
}

// runREPL starts a simple read–eval–print loop for the Vibe CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Anonymous:
//	  - help               — show available commands
//	  - feed [page]        — show the global feed
//	  - profile <username> — show a user page
//	  - register           — create an account
//	  - login              — authenticate
//	  - exit | quit        — leave the program
//
//	Logged in, additionally:
//	  - post               — publish a post
//	  - reply <post-id>    — reply to a post
//	  - like <post-id>     — like a post
//	  - logout             — log out
//
// The gating is cosmetic: commands stay dispatchable either way, and a
// request sent without a token simply comes back with the server's error,
// which is surfaced like any other unexpected response.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vibe %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (f)eed [page], post, reply <id>, like <id>, profile <username>, logout, exit")
			} else {
				printlnFn("Available commands: (f)eed [page], profile <username>, register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "post":
			err = a.Post(ctx)

		case "reply":
			id, ok := parseID(args, "Usage: reply <post-id>")
			if !ok {
				continue
			}
			err = a.Reply(ctx, id)

		case "like":
			id, ok := parseID(args, "Usage: like <post-id>")
			if !ok {
				continue
			}
			err = a.Like(ctx, id)

		case "f", "feed":
			page := 0
			if len(args) > 0 {
				p, convErr := strconv.Atoi(args[0])
				if convErr != nil || p < 0 {
					printlnFn("Usage: feed [page]")
					continue
				}
				page = p
			}
			err = a.Feed(ctx, page)

		case "profile":
			if len(args) == 0 {
				printlnFn("Usage: profile <username>")
				continue
			}
			err = a.Profile(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}
