package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/postfeed/internal/client/screens"
)

// List (re)loads the post list and prints it.
func (a *App) List(ctx context.Context) error {
	if a.postList == nil {
		return errWrongScreen
	}
	if err := a.postList.Load(ctx); err != nil {
		return err
	}

	v := a.postList.View()
	if len(v.Posts) == 0 {
		fmt.Fprintln(a.out, "No posts.")
		return nil
	}
	for _, p := range v.Posts {
		fmt.Fprintln(a.out, p.String())
	}
	return nil
}

// Open shows the post with id.
func (a *App) Open(_ context.Context, id int) error {
	if a.postList == nil {
		return errWrongScreen
	}
	err := a.postList.Select(id)
	if errors.Is(err, screens.ErrInvalidPostID) {
		fmt.Fprintf(a.out, "Invalid post id: %d\n", id)
	}
	return err
}

// Logout asks for confirmation and ends the session.
func (a *App) Logout(ctx context.Context) error {
	if a.postList == nil {
		return errWrongScreen
	}
	_, err := a.postList.Logout(ctx)
	return err
}

// Back leaves the detail view.
func (a *App) Back(context.Context) error {
	if a.postDetail == nil {
		return errWrongScreen
	}
	return a.postDetail.Back()
}

func (a *App) renderPostDetail() {
	if a.postDetail == nil {
		return
	}
	v := a.postDetail.View()
	switch {
	case v.Loading:
		fmt.Fprintf(a.out, "Loading post %d...\n", v.PostID)
	case v.Failed:
		fmt.Fprintln(a.out, "Post unavailable. Type 'back' to return.")
	default:
		fmt.Fprintf(a.out, "\n%s\n\n%s\n\n", v.Title, v.Body)
	}
}
