package services

import (
	"context"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/client/models"
)

// fakeClient implements client.Client and records the last arguments.
type fakeClient struct {
	LoginToken string
	LoginErr   error
	SignUpErr  error

	Projects    []models.Project
	ProjectsErr error
	Created     *models.Project
	CreateErr   error
	Posts       []models.Post
	PostsErr    error
	NewPost     *models.Post
	NewPostErr  error
	Membership  *models.Membership
	MemberErr   error
	Invitation  *models.Invitation
	InviteErr   error
	JoinErr     error

	Calls int

	LastEmail     string
	LastPassword  string
	LastName      string
	LastProjectID int64
	LastContent   string
	LastImageURL  string
	LastRole      models.Role
	LastCode      string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.Calls++
	f.LastEmail, f.LastPassword = email, password
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) SignUp(ctx context.Context, email, password string) error {
	f.Calls++
	f.LastEmail, f.LastPassword = email, password
	return f.SignUpErr
}

func (f *fakeClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.Calls++
	return f.Projects, f.ProjectsErr
}

func (f *fakeClient) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	f.Calls++
	f.LastName = name
	return f.Created, f.CreateErr
}

func (f *fakeClient) ListPosts(ctx context.Context, projectID int64) ([]models.Post, error) {
	f.Calls++
	f.LastProjectID = projectID
	return f.Posts, f.PostsErr
}

func (f *fakeClient) CreatePost(ctx context.Context, projectID int64, content, imageURL string) (*models.Post, error) {
	f.Calls++
	f.LastProjectID, f.LastContent, f.LastImageURL = projectID, content, imageURL
	return f.NewPost, f.NewPostErr
}

func (f *fakeClient) MyMembership(ctx context.Context, projectID int64) (*models.Membership, error) {
	f.Calls++
	f.LastProjectID = projectID
	return f.Membership, f.MemberErr
}

func (f *fakeClient) CreateInvitation(ctx context.Context, projectID int64, role models.Role) (*models.Invitation, error) {
	f.Calls++
	f.LastProjectID, f.LastRole = projectID, role
	return f.Invitation, f.InviteErr
}

func (f *fakeClient) JoinProject(ctx context.Context, code string) error {
	f.Calls++
	f.LastCode = code
	return f.JoinErr
}

type fakeSession struct {
	LoginErr  error
	LogoutErr error

	LastToken string
	Logins    int
	Logouts   int
}

func (f *fakeSession) Login(ctx context.Context, token string) error {
	f.Logins++
	f.LastToken = token
	return f.LoginErr
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.Logouts++
	return f.LogoutErr
}
