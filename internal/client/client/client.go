package client

import (
	"context"

	"github.com/dmitrijs2005/projectboard/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) error
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name string) (*models.Project, error)
	ListPosts(ctx context.Context, projectID int64) ([]models.Post, error)
	CreatePost(ctx context.Context, projectID int64, content, imageURL string) (*models.Post, error)
	MyMembership(ctx context.Context, projectID int64) (*models.Membership, error)
	CreateInvitation(ctx context.Context, projectID int64, role models.Role) (*models.Invitation, error)
	JoinProject(ctx context.Context, code string) error
}
