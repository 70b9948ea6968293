// Package session holds the process-wide authentication state of the client.
//
// A Session is created once, initialized once from a credentials.Store, and
// then moved between authenticated and unauthenticated by Login and Logout:
//
//	Uninitialized -> Initializing -> {Authenticated, Unauthenticated}
//	Authenticated <-> Unauthenticated   (Login / Logout)
//
// Readers get immutable State snapshots, so a token is never visible without
// the matching IsAuthenticated flag. Token is a non-blocking read meant for
// the request pipeline. Mutations are serialized, including their storage
// calls, so a Logout and a Login issued back to back cannot interleave their
// writes.
//
// Storage failures never panic. A failed load at start-up is logged and the
// session starts unauthenticated. A failed save or clear is logged, leaves
// the state as it was, and is reported to the caller as ErrPersist so the
// user can retry.
package session
