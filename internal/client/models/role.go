package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is the authorization tier of a user within a project.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// ParseRole accepts "admin" or "guest" in any case.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleGuest:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// IsPrivileged reports whether r is the privileged tier.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin
}

// Membership is the caller's membership in a project.
type Membership struct {
	Role Role `json:"role"`
}

// ProjectAffordances says which privileged actions the UI offers in a
// project. It is display logic only; the server enforces authorization.
type ProjectAffordances struct {
	CanInvite     bool
	CanCreatePost bool
}

// Affordances derives the privileged actions offered for role. An empty or
// unknown role offers nothing.
func Affordances(role Role) ProjectAffordances {
	p := role.IsPrivileged()
	return ProjectAffordances{CanInvite: p, CanCreatePost: p}
}
