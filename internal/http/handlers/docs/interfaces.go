package docs

import (
	"context"

	"dochub/internal/dto"
	"dochub/internal/models"
)

const pkg = "docsHandler/"

type DocumentCreator interface {
	CreateDocument(ctx context.Context, requester *models.User, workspaceID string, title string, isPublic bool) (*models.Document, error)
}

type DocumentProvider interface {
	DocumentByID(ctx context.Context, docID string, requester *models.User) (*models.Document, error)
	ListByWorkspace(ctx context.Context, workspaceID string, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
}

type DocumentUpdater interface {
	RenameDocument(ctx context.Context, docID string, requester *models.User, title *string, isPublic *bool) error
}

type DocumentDeleter interface {
	DeleteDocument(ctx context.Context, docID string, requester *models.User) error
}

type SnapshotProvider interface {
	Snapshot(ctx context.Context, docID string, requester *models.User) (*models.DocSnapshot, error)
}

type OpsApplier interface {
	Apply(ctx context.Context, docID string, requester *models.User, baseVersion int64, ops []models.Op) (int64, error)
}

func documentToDTO(doc *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:          doc.ID,
		WorkspaceID: doc.WorkspaceID,
		OwnerID:     doc.OwnerID,
		Title:       doc.Title,
		IsPublic:    doc.IsPublic,
		Version:     doc.Version,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
