package cli

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/projectboard/internal/client/client"
	"github.com/dmitrijs2005/projectboard/internal/client/services"
	"github.com/dmitrijs2005/projectboard/internal/client/session"
)

var (
	errNoProject      = errors.New("no project is open")
	errNotAdmin       = errors.New("requires the admin role")
	errUnknownProject = errors.New("unknown project")
	errUnknownPost    = errors.New("unknown post")
)

const msgUnavailable = "Cannot reach the server. Check your connection and try again."

// describeError turns err into the line shown to the user. The server's own
// message wins; fallback is used when nothing more specific is known.
func describeError(err error, fallback string) string {
	var apiErr *client.APIError

	switch {
	case errors.Is(err, errNoProject):
		return "Open a project first (see 'projects' and 'open <n>')."
	case errors.Is(err, errNotAdmin):
		return "Only project admins can do that."
	case errors.Is(err, errUnknownProject):
		return "Unknown project. Run 'projects' to list them."
	case errors.Is(err, errUnknownPost):
		return "Unknown post. Run 'posts' to list them."
	case errors.Is(err, services.ErrValidation):
		return sentence(err.Error())
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	case errors.Is(err, session.ErrPersist):
		return "Could not update the sign-in saved on this device. Please try again."
	case errors.Is(err, client.ErrUnauthorized):
		return "The server rejected your session. Log out and sign in again."
	default:
		return fallback
	}
}

func sentence(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	s = string(unicode.ToUpper(r)) + s[n:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
