package models

import "time"

type Document struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	IsPublic    bool      `json:"is_public"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DocSnapshot is the versioned content of a document.
type DocSnapshot struct {
	DocID   string `json:"doc_id"`
	Version int64  `json:"version"`
	Content string `json:"content"`
}

type DocumentFilter struct {
	Key   string
	Value string
	Limit int
}

var allowedFilterKeys = map[string]bool{
	"title": true,
}

func (f DocumentFilter) IsValid() bool {
	if f.Key == "" && f.Value != "" {
		return false
	}
	if f.Key != "" && !allowedFilterKeys[f.Key] {
		return false
	}
	return true
}
