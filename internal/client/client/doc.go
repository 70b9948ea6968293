// Package client talks to the projectboard HTTP API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     login, signup, projects, posts, memberships and invitations.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) whose
//     transport reads the current token from a TokenSource on every request
//     and attaches it as "Authorization: Bearer <token>". Without a token
//     the header is omitted and the server decides.
//
// There is no retry, token refresh, queuing or caching. Each call is one
// round trip.
//
// # Error Handling
//
// A non-2xx response becomes *APIError carrying the status code and the
// server's "message" field verbatim. A transport failure becomes
// *TransportError wrapping the original error. The sentinels
// ErrUnauthorized (401/403) and ErrUnavailable (transport) can be matched
// with errors.Is.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context; no timeout is set by the client itself.
package client
