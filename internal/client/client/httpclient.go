package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/projectboard/internal/client/models"
	"github.com/dmitrijs2005/projectboard/internal/common"
	"github.com/dmitrijs2005/projectboard/internal/logging"
	"github.com/google/uuid"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

var _ Client = (*HTTPClient)(nil)

type Option func(*options)

type options struct {
	base   http.RoundTripper
	logger logging.Logger
}

// WithBaseTransport replaces http.DefaultTransport under the bearer layer.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.base = rt }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a client for the API rooted at baseURL. tokens is consulted on
// every request.
func New(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	o := options{base: http.DefaultTransport, logger: logging.NewDiscard()}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: &bearerTransport{base: o.base, tokens: tokens}},
		logger:  o.logger.With("component", "api"),
	}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(path, "/")
}

// Get issues GET path and decodes the JSON response into out (if non-nil).
func (c *HTTPClient) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON to path and decodes the response into out (if non-nil).
func (c *HTTPClient) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Message: parseErrorMessage(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	req := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("login response has no access token")
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) error {
	req := map[string]string{"email": email, "password": password}
	return c.Post(ctx, "/api/users/signup", req, nil)
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := c.Get(ctx, "/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, name string) (*models.Project, error) {
	var p models.Project
	if err := c.Post(ctx, "/projects", map[string]string{"name": name}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func projectPath(projectID int64, rest string) string {
	return fmt.Sprintf("/projects/%d/%s", projectID, rest)
}

func (c *HTTPClient) ListPosts(ctx context.Context, projectID int64) ([]models.Post, error) {
	var posts []models.Post
	if err := c.Get(ctx, projectPath(projectID, "posts"), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, projectID int64, content, imageURL string) (*models.Post, error) {
	var p models.Post
	req := map[string]string{"content": content, "imageUrl": imageURL}
	if err := c.Post(ctx, projectPath(projectID, "posts"), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) MyMembership(ctx context.Context, projectID int64) (*models.Membership, error) {
	var m models.Membership
	if err := c.Get(ctx, projectPath(projectID, "memberships/me"), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) CreateInvitation(ctx context.Context, projectID int64, role models.Role) (*models.Invitation, error) {
	var inv models.Invitation
	req := map[string]models.Role{"role": role}
	if err := c.Post(ctx, projectPath(projectID, "invitations"), req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (c *HTTPClient) JoinProject(ctx context.Context, code string) error {
	return c.Post(ctx, "/invitations/join", map[string]string{"code": code}, nil)
}
