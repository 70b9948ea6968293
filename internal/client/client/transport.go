package client

import (
	"net/http"

	"github.com/dmitrijs2005/projectboard/internal/common"
)

// TokenSource yields the current bearer token. It is read synchronously on
// every request, so it must not block.
type TokenSource interface {
	Token() (token string, ok bool)
}

// bearerTransport attaches the current token to outgoing requests. It works
// on a clone; the caller's request is never modified.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if token, ok := t.token(); ok {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	} else {
		r.Header.Del(common.AuthorizationHeaderName)
	}

	return t.base.RoundTrip(r)
}

func (t *bearerTransport) token() (string, bool) {
	if t.tokens == nil {
		return "", false
	}
	token, ok := t.tokens.Token()
	return token, ok && token != ""
}
