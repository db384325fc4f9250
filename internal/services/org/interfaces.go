package orgservice

import (
	"context"

	"dochub/internal/models"
)

type OrgRepository interface {
	CreateOrg(ctx context.Context, org *models.Organization) error
	OrgByID(ctx context.Context, id string) (*models.Organization, error)
	ListOrgsForUser(ctx context.Context, userID string) ([]*models.Organization, error)
	UpdateOrg(ctx context.Context, id string, patch models.OrgPatch) error
	DeleteOrg(ctx context.Context, id string) error
}
