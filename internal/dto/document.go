package dto

import (
	"dochub/internal/models"
	"time"
)

type CreateDocRequest struct {
	Title    string `json:"title"`
	IsPublic bool   `json:"public"`
}

type PatchDocRequest struct {
	Title    *string `json:"title,omitempty"`
	IsPublic *bool   `json:"public,omitempty"`
}

type DocumentResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	IsPublic    bool      `json:"public"`
	Version     int64     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SnapshotResponse struct {
	DocID   string `json:"doc_id"`
	Version int64  `json:"version"`
	Content string `json:"content"`
}

type ApplyRequest struct {
	BaseVersion int64       `json:"base_version"`
	Ops         []models.Op `json:"ops"`
}

type ApplyResponse struct {
	Version int64 `json:"version"`
}
