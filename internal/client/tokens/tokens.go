// Package tokens reads the claims of an access token for display.
//
// The signature is never verified here: the server is the only authority on
// whether a token is valid. Nothing in this package affects authentication.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("empty token")

// Info is what could be read from a token.
type Info struct {
	// Opaque is set when the token is not a JWT. All other fields are zero.
	Opaque bool

	Subject   string
	Email     string
	ExpiresAt time.Time
}

// Claims is the subset of the server's JWT payload the client looks at.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Inspect parses token without verifying it.
func Inspect(token string) (Info, error) {
	if token == "" {
		return Info{}, ErrEmptyToken
	}

	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Info{Opaque: true}, nil
		}
		return Info{}, fmt.Errorf("inspect token: %w", err)
	}

	info := Info{Subject: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// Expired reports whether the token carries an expiry that is before now.
// A token without an expiry never expires from the client's point of view.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
