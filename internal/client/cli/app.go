// Package cli is the interactive terminal client for Wordverse. It drives
// the HTTP API client and the vote controller from a simple REPL.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/DarshanchGIT/wordverse/internal/client/api"
	"github.com/DarshanchGIT/wordverse/internal/client/config"
	"github.com/DarshanchGIT/wordverse/internal/client/votes"
)

type App struct {
	config    *config.Config
	client    *api.Client
	votes     *votes.Controller
	reader    *bufio.Reader
	out       io.Writer
	userEmail string
}

func NewApp(cfg *config.Config) *App {
	a := &App{
		config: cfg,
		client: api.New(cfg.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.votes = votes.NewController(a.client, a.onVoteUpdate, a.onVoteError)
	return a
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Wordverse CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.client.Token() != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userEmail
	}
	return "not signed in"
}

// onVoteUpdate fires from the controller's goroutine once the server's
// verdict lands. The REPL may be mid-prompt; printing a fresh line is the
// best a line-based UI can do.
func (a *App) onVoteUpdate(postID string, state votes.State) {
	fmt.Fprintf(a.out, "\nvote settled for %s: %s (%d upvotes)\n", postID, state.Direction, state.Count)
}

func (a *App) onVoteError(postID string, err error) {
	fmt.Fprintf(a.out, "\nvote failed for %s, reverted: %s\n", postID, err.Error())
}
