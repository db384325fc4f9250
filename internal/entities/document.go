package entities

import "time"

type Document struct {
	ID          string    `db:"id"`
	WorkspaceID string    `db:"workspace_id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	IsPublic    bool      `db:"is_public"`
	Version     int64     `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type DocSnapshot struct {
	DocID   string `db:"doc_id"`
	Version int64  `db:"version"`
	Content string `db:"content"`
}

type Permission struct {
	DocID  string `db:"doc_id"`
	UserID string `db:"user_id"`
	Login  string `db:"login"`
	Role   string `db:"role"`
}
