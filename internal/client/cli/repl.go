package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Signin(ctx context.Context) error
	List(ctx context.Context) error
	Read(ctx context.Context, postID string) error
	Vote(ctx context.Context, postID string) error
	Post(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - signin | login — authenticate
//	  - list           — list posts
//	  - read <id>      — show a single post
//	  - exit | quit    — leave the program
//
//	Signed in, additionally:
//	  - post           — publish a new post
//	  - vote <id>      — toggle your upvote on a post
//	  - logout         — drop the stored credential
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wv> %s > ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, read <id>, vote <id>, post, logout, exit")
			} else {
				printlnFn("Available commands: signup, signin, (l)ist, read <id>, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "signin", "login":
			_ = a.Signin(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.Read(ctx, args[0])

		case "vote":
			if len(args) == 0 {
				printlnFn("Usage: vote <id>")
				continue
			}
			_ = a.Vote(ctx, args[0])

		case "post":
			_ = a.Post(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
