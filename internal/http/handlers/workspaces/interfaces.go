package workspaces

import (
	"context"

	"dochub/internal/dto"
	"dochub/internal/models"
)

const pkg = "workspacesHandler/"

type WorkspaceCreator interface {
	CreateWorkspace(ctx context.Context, orgID string, requester *models.User, name string, slug string, description string) (*models.Workspace, error)
}

type WorkspaceProvider interface {
	WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error)
	ListByOrg(ctx context.Context, orgID string) ([]*models.Workspace, error)
}

type WorkspaceUpdater interface {
	UpdateWorkspace(ctx context.Context, id string, requester *models.User, patch models.WorkspacePatch) error
}

type WorkspaceDeleter interface {
	DeleteWorkspace(ctx context.Context, id string, requester *models.User) error
}

func workspaceToDTO(ws *models.Workspace) dto.WorkspaceResponse {
	return dto.WorkspaceResponse{
		ID:          ws.ID,
		OrgID:       ws.OrgID,
		Name:        ws.Name,
		Slug:        ws.Slug,
		Description: ws.Description,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}
