package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/projectboard/internal/client/models"
)

// ListProjects fetches and prints the projects the user belongs to. On
// failure the previously fetched list stays in place.
func (a *App) ListProjects(ctx context.Context) error {
	list, err := a.projects.List(ctx)
	if err != nil {
		return err
	}
	a.list = list

	if len(list) == 0 {
		a.println("No projects yet. Use 'create-project' or 'join <code>'.")
		return nil
	}
	for i, p := range list {
		a.printf("%d. %s (#%d)\n", i+1, p.Name, p.ID)
	}
	return nil
}

func (a *App) CreateProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Project name", a.out)
	if err != nil {
		return err
	}

	p, err := a.projects.Create(ctx, name)
	if err != nil {
		return err
	}
	a.list = append(a.list, *p)
	a.printf("Created project %s (#%d).\n", p.Name, p.ID)
	return nil
}

func (a *App) JoinProject(ctx context.Context, code string) error {
	if err := a.projects.Join(ctx, code); err != nil {
		return err
	}
	a.println("Joined. Run 'projects' to see it.")
	return nil
}

// OpenProject opens the project at position ref of the last list, or the
// project with id ref. Any open project is closed first.
func (a *App) OpenProject(ctx context.Context, ref string) error {
	p, err := a.resolveProject(ref)
	if err != nil {
		return err
	}

	a.current = nil
	view, err := a.projects.Open(ctx, p)
	if err != nil {
		return err
	}
	a.current = view

	role := string(view.Role)
	if role == "" {
		role = "unknown"
	}
	a.printf("Project %s (role: %s)\n", p.Name, role)
	a.printPosts()
	return nil
}

func (a *App) resolveProject(ref string) (models.Project, error) {
	n, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || n <= 0 {
		return models.Project{}, errUnknownProject
	}
	if n <= int64(len(a.list)) {
		return a.list[n-1], nil
	}
	for _, p := range a.list {
		if p.ID == n {
			return p, nil
		}
	}
	return models.Project{ID: n, Name: "#" + ref}, nil
}

func (a *App) Back(ctx context.Context) error {
	if a.current == nil {
		return errNoProject
	}
	a.current = nil
	a.println("Back to projects.")
	return nil
}
