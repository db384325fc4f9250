package server

import (
	"context"

	"dochub/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, login string, password string, token string) (string, error)
	Login(ctx context.Context, login string, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type UserService interface {
	PrefsByUser(ctx context.Context, userID string) (models.Prefs, error)
	SetPref(ctx context.Context, userID string, key string, seen bool) error
}

type OrgService interface {
	CreateOrg(ctx context.Context, requester *models.User, name string, slug string) (*models.Organization, error)
	OrgByID(ctx context.Context, id string) (*models.Organization, error)
	ListOrgs(ctx context.Context, requester *models.User) ([]*models.Organization, error)
	UpdateOrg(ctx context.Context, id string, requester *models.User, patch models.OrgPatch) error
	DeleteOrg(ctx context.Context, id string, requester *models.User) error
}

type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, orgID string, requester *models.User, name string, slug string, description string) (*models.Workspace, error)
	WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error)
	ListByOrg(ctx context.Context, orgID string) ([]*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, id string, requester *models.User, patch models.WorkspacePatch) error
	DeleteWorkspace(ctx context.Context, id string, requester *models.User) error
}

type DocumentService interface {
	CreateDocument(ctx context.Context, requester *models.User, workspaceID string, title string, isPublic bool) (*models.Document, error)
	DocumentByID(ctx context.Context, docID string, requester *models.User) (*models.Document, error)
	ListByWorkspace(ctx context.Context, workspaceID string, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
	RenameDocument(ctx context.Context, docID string, requester *models.User, title *string, isPublic *bool) error
	DeleteDocument(ctx context.Context, docID string, requester *models.User) error
	Snapshot(ctx context.Context, docID string, requester *models.User) (*models.DocSnapshot, error)
	Apply(ctx context.Context, docID string, requester *models.User, baseVersion int64, ops []models.Op) (int64, error)
	Permissions(ctx context.Context, docID string, requester *models.User) ([]models.Permission, error)
	ApplyPermissionDelta(ctx context.Context, docID string, requester *models.User, delta models.PermissionDelta) error
}

type SessionStorer interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
}
