package perms

import (
	"context"

	"dochub/internal/models"
)

const pkg = "permsHandler/"

type PermissionProvider interface {
	Permissions(ctx context.Context, docID string, requester *models.User) ([]models.Permission, error)
}

type PermissionChanger interface {
	ApplyPermissionDelta(ctx context.Context, docID string, requester *models.User, delta models.PermissionDelta) error
}
