package workspaceservice

import (
	"context"

	"dochub/internal/models"
)

type WorkspaceRepository interface {
	CreateWorkspace(ctx context.Context, ws *models.Workspace) error
	WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error)
	ListByOrg(ctx context.Context, orgID string) ([]*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, id string, patch models.WorkspacePatch) error
	DeleteWorkspace(ctx context.Context, id string) error
}

type OrgProvider interface {
	OrgByID(ctx context.Context, id string) (*models.Organization, error)
}
