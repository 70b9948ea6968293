package session

import "errors"

var (
	ErrAlreadyInitialized = errors.New("session already initialized")
	ErrNotInitialized     = errors.New("session not initialized")
	ErrEmptyToken         = errors.New("empty token")

	// ErrPersist wraps storage failures from Login and Logout.
	ErrPersist = errors.New("credential storage failed")
)
