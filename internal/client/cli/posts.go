package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/projectboard/internal/client/models"
)

const previewLen = 60

func (a *App) ShowPosts(ctx context.Context) error {
	if a.current == nil {
		return errNoProject
	}
	a.printPosts()
	return nil
}

func (a *App) printPosts() {
	posts := a.current.Posts
	if len(posts) == 0 {
		a.println("No posts yet.")
		return
	}
	for i, p := range posts {
		a.printf("%d. %s (by %s)\n", i+1, preview(p.Content), author(p))
	}
}

// RefreshPosts reloads the open project's posts. On failure the previous
// posts stay in place.
func (a *App) RefreshPosts(ctx context.Context) error {
	if a.current == nil {
		return errNoProject
	}
	posts, err := a.projects.Posts(ctx, a.current.Project.ID)
	if err != nil {
		return err
	}
	a.current.Posts = posts
	a.printPosts()
	return nil
}

func (a *App) ShowPost(ctx context.Context, ref string) error {
	if a.current == nil {
		return errNoProject
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(a.current.Posts) {
		return errUnknownPost
	}

	p := a.current.Posts[n-1]
	a.printf("Post #%d by %s\n", p.ID, author(p))
	a.printf("Image: %s\n", p.ImageURL)
	a.println(p.Content)
	return nil
}

func (a *App) NewPost(ctx context.Context) error {
	if a.current == nil {
		return errNoProject
	}
	if !a.current.Affordances.CanCreatePost {
		return errNotAdmin
	}

	content, err := getSimpleText(a.reader, "Post text", a.out)
	if err != nil {
		return err
	}
	imageURL, err := getSimpleText(a.reader, "Image URL", a.out)
	if err != nil {
		return err
	}

	if _, err := a.projects.CreatePost(ctx, a.current.Project.ID, content, imageURL); err != nil {
		return err
	}
	a.println("Post created.")

	if err := a.RefreshPosts(ctx); err != nil {
		a.println(describeError(err, "Could not refresh posts."))
	}
	return nil
}

// Invite creates an invitation code for the open project. role defaults to
// guest.
func (a *App) Invite(ctx context.Context, role string) error {
	if a.current == nil {
		return errNoProject
	}
	if !a.current.Affordances.CanInvite {
		return errNotAdmin
	}
	if role == "" {
		role = string(models.RoleGuest)
	}

	inv, err := a.projects.Invite(ctx, a.current.Project.ID, models.Role(strings.ToLower(role)))
	if err != nil {
		return err
	}
	a.printf("Invitation code (%s): %s\n", strings.ToLower(role), inv.Code)
	a.println("Share it; it is redeemed with 'join <code>'.")
	return nil
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > previewLen {
		return string(r[:previewLen-3]) + "..."
	}
	return s
}

func author(p models.Post) string {
	if p.Author.Email != "" {
		return p.Author.Email
	}
	return "unknown"
}
