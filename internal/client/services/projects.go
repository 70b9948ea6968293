package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/client/models"
	"github.com/dmitrijs2005/projectboard/internal/logging"
)

// ProjectView is what a visit to a project shows: the caller's role, the
// privileged actions offered for it, and the posts.
type ProjectView struct {
	Project     models.Project
	Role        models.Role
	Affordances models.ProjectAffordances
	Posts       []models.Post
}

// ProjectService covers the project list, a single project and its posts.
type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, name string) (*models.Project, error)
	Join(ctx context.Context, code string) error
	Open(ctx context.Context, project models.Project) (*ProjectView, error)
	Posts(ctx context.Context, projectID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, projectID int64, content, imageURL string) (*models.Post, error)
	Invite(ctx context.Context, projectID int64, role models.Role) (*models.Invitation, error)
}

type projectService struct {
	client client.Client
	logger logging.Logger
}

func NewProjectService(client client.Client, logger logging.Logger) ProjectService {
	return &projectService{client: client, logger: logger.With("component", "projects")}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.client.ListProjects(ctx)
}

func (s *projectService) Create(ctx context.Context, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("project name is required")
	}
	return s.client.CreateProject(ctx, name)
}

func (s *projectService) Join(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return invalid("invitation code is required")
	}
	return s.client.JoinProject(ctx, code)
}

// Open fetches the caller's role and the post list. A failed role fetch is
// logged and leaves the view without privileged actions; a failed post fetch
// is returned.
func (s *projectService) Open(ctx context.Context, project models.Project) (*ProjectView, error) {
	view := &ProjectView{Project: project}

	m, err := s.client.MyMembership(ctx, project.ID)
	if err != nil {
		s.logger.Warn(ctx, "failed to fetch role", "project_id", project.ID, "err", err)
	} else if role, perr := models.ParseRole(string(m.Role)); perr != nil {
		s.logger.Warn(ctx, "server sent an unknown role", "project_id", project.ID, "role", m.Role)
	} else {
		view.Role = role
	}
	view.Affordances = models.Affordances(view.Role)

	posts, err := s.client.ListPosts(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	view.Posts = posts
	return view, nil
}

func (s *projectService) Posts(ctx context.Context, projectID int64) ([]models.Post, error) {
	return s.client.ListPosts(ctx, projectID)
}

func (s *projectService) CreatePost(ctx context.Context, projectID int64, content, imageURL string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)
	if content == "" || imageURL == "" {
		return nil, invalid("content and image URL are required")
	}
	return s.client.CreatePost(ctx, projectID, content, imageURL)
}

func (s *projectService) Invite(ctx context.Context, projectID int64, role models.Role) (*models.Invitation, error) {
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, invalid("role must be admin or guest")
	}
	return s.client.CreateInvitation(ctx, projectID, role)
}
