package documentservice

import (
	"context"

	"dochub/internal/models"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *models.Document, content string) error
	DocumentByID(ctx context.Context, id string) (*models.Document, error)
	ListByWorkspace(ctx context.Context, workspaceID string, requesterID string, filter models.DocumentFilter) ([]*models.Document, error)
	UpdateDocument(ctx context.Context, id string, title *string, isPublic *bool) error
	Delete(ctx context.Context, id string) error
	SnapshotByDocID(ctx context.Context, docID string) (*models.DocSnapshot, error)
	SaveSnapshot(ctx context.Context, docID string, baseVersion int64, content string) (int64, error)
	PermissionsByDocID(ctx context.Context, docID string) ([]models.Permission, error)
	ApplyPermissionDelta(ctx context.Context, docID string, add []models.Permission, removeUserIDs []string) error
}

type SnapshotCache interface {
	Get(ctx context.Context, docID string) (string, error)
	Set(ctx context.Context, docID string, value interface{}) error
	Del(ctx context.Context, docIDs ...string) error
}

type UserProvider interface {
	UserByLogin(ctx context.Context, login string) (*models.User, error)
}

type UpdateBroadcaster interface {
	BroadcastUpdate(update models.DocUpdate)
}
