package services

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/common"
)

// SessionWriter is the part of the session the auth flow mutates.
type SessionWriter interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for an access token and start the session.
//   - SignUp: create an account. It does not log in.
//   - Logout: end the session. No request is sent to the server.
//
// Passwords are wiped after use.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	SignUp(ctx context.Context, email string, password, confirm []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionWriter
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(client client.Client, session SessionWriter) AuthService {
	return &authService{client: client, session: session}
}

// Login validates input, calls the login endpoint and hands the returned
// token to the session. An API error is returned as is so the CLI can show
// the server's message.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	defer common.WipeByteArray(password)

	if email == "" || len(password) == 0 {
		return invalid("email and password are required")
	}

	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (a *authService) SignUp(ctx context.Context, email string, password, confirm []byte) error {
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)

	if email == "" || len(password) == 0 || len(confirm) == 0 {
		return invalid("email, password and confirmation are required")
	}
	if subtle.ConstantTimeCompare(password, confirm) == 0 {
		return invalid("passwords do not match")
	}

	return a.client.SignUp(ctx, email, string(password))
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
