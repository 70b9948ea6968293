// Package models defines client-side data models used by the projectboard CLI.
package models

// User is a post author as returned by the server.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Project is a named workspace; membership and roles are scoped to it.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Post is a content item of a project: text plus an image reference.
type Post struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Author   User   `json:"author"`
}

// Invitation is a server-issued join code.
type Invitation struct {
	Code string `json:"code"`
}
