// Package credentials persists the single bearer token of the client.
//
// Store is deliberately small: load, save, clear of one value. Errors are
// returned as-is; deciding that a failed load means "logged out" is the
// session's job, not the store's.
package credentials

import "context"

// Store holds at most one token.
//
// Load reports ok=false when nothing is stored. Clear succeeds when nothing
// is stored. No validation is applied to the token string.
type Store interface {
	Load(ctx context.Context) (token string, ok bool, err error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
