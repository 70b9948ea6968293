package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/projectboard/internal/client/tokens"
)

// Login prompts for credentials and signs in. Passwords are wiped by the
// auth service.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		return err
	}
	a.println("Signed in.")
	return nil
}

// SignUp creates an account. The user logs in separately afterwards.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.SignUp(ctx, email, password, confirm); err != nil {
		return err
	}
	a.println("Account created. You can now log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

// Status prints what the client knows about the signed-in user. Token
// claims are read without verification and only displayed.
func (a *App) Status(ctx context.Context) error {
	token, ok := a.session.Token()
	if !ok {
		a.println("Signed out.")
		return nil
	}

	info, err := tokens.Inspect(token)
	switch {
	case err != nil || info.Opaque:
		a.println("Signed in.")
	case info.Email != "":
		a.printf("Signed in as %s.\n", info.Email)
	case info.Subject != "":
		a.printf("Signed in as user %s.\n", info.Subject)
	default:
		a.println("Signed in.")
	}

	if err == nil && !info.ExpiresAt.IsZero() {
		when := info.ExpiresAt.Local().Format(time.DateTime)
		if info.Expired(time.Now()) {
			a.printf("Token expired at %s.\n", when)
		} else {
			a.printf("Token expires at %s.\n", when)
		}
	}

	if a.current != nil {
		role := string(a.current.Role)
		if role == "" {
			role = "unknown"
		}
		a.printf("Current project: %s (role: %s).\n", a.current.Project.Name, role)
	}
	return nil
}
