// Package common contains shared constants and sentinel errors used across
// projectboard components.
package common

// AccessTokenKey is the storage key of the persisted bearer credential.
const AccessTokenKey = "accessToken"

// HTTP header names set by the request pipeline.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// BearerScheme prefixes the token in the Authorization header.
const BearerScheme = "Bearer"
