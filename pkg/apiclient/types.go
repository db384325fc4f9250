package apiclient

import "time"

// User is the account that owns a session.
type User struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

type Organization struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Workspace struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Document struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	IsPublic    bool      `json:"public"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocSnapshot is the full content of a document at a version.
type DocSnapshot struct {
	DocID   string `json:"doc_id"`
	Version int64  `json:"version"`
	Content string `json:"content"`
}

// Op is a single content edit. Set exactly one field.
type Op struct {
	Retain int    `json:"retain,omitempty"`
	Insert string `json:"insert,omitempty"`
	Delete int    `json:"delete,omitempty"`
}

type Permission struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}

// Grant names a user by login and the role to give them.
type Grant struct {
	Login string `json:"login"`
	Role  string `json:"role"`
}

// PermissionDelta is a batch change to a document's permissions.
type PermissionDelta struct {
	Add    []Grant  `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}
