package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/DarshanchGIT/wordverse/internal/client/api"
)

func (a *App) List(ctx context.Context) error {
	posts, err := a.client.ListPosts(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet.")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(a.out, "%s  %-40s  by %s  (%d upvotes)\n",
			p.ID, p.Title, p.AuthorName, p.Upvotes)
	}
	return nil
}

// Read shows a single post and registers it with the vote controller so a
// later "vote" command can toggle it.
func (a *App) Read(ctx context.Context, postID string) error {
	post, err := a.client.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such post.")
		} else {
			fmt.Fprintln(a.out, err.Error())
		}
		return err
	}

	direction := post.Direction
	if direction == "" {
		direction = api.DirectionNone
	}
	a.votes.Track(post.ID, direction, post.Upvotes)

	fmt.Fprintf(a.out, "%s\nby %s, %s\n\n%s\n\n%d upvotes",
		post.Title, post.AuthorName, post.CreatedAt.Format("2006-01-02 15:04"), post.Content, post.Upvotes)
	if direction == api.DirectionUp {
		fmt.Fprint(a.out, " (you upvoted this)")
	}
	fmt.Fprintln(a.out)
	return nil
}

// Vote flips the upvote through the controller. The displayed state changes
// immediately; the server's verdict is printed when it arrives.
func (a *App) Vote(ctx context.Context, postID string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to vote.")
		return api.ErrUnauthorized
	}

	if !a.votes.Toggle(ctx, postID) {
		st, tracked := a.votes.State(postID)
		if !tracked {
			fmt.Fprintln(a.out, "Read the post first: read", postID)
			return nil
		}
		if st.Pending {
			fmt.Fprintln(a.out, "Previous vote still in flight, ignored.")
		}
		return nil
	}

	st, _ := a.votes.State(postID)
	fmt.Fprintf(a.out, "vote: %s (%d upvotes), confirming...\n", st.Direction, st.Count)
	return nil
}

func (a *App) Post(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to publish.")
		return api.ErrUnauthorized
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	post, err := a.client.CreatePost(ctx, title, content)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Published %s\n", post.ID)
	return nil
}
