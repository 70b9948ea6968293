// Package cli provides the interactive projectboard command-line client.
//
// It wires configuration, the encrypted token store, the session, the API
// client and application services, and runs a REPL on top of them. Start-up
// shows a loading line while the persisted token is restored; after that
// the available commands depend only on whether the session is
// authenticated.
//
// Signed out:
//   - login, signup, help, exit
//
// Signed in:
//   - projects, create-project, join <code>, open <n|id>, status, logout
//   - inside a project: posts, refresh, post <n>, new-post, invite [admin|guest], back
//
// new-post and invite are only offered to project admins. That check is a
// convenience; the server decides what is allowed.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
