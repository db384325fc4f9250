package orgs

import (
	"context"

	"dochub/internal/dto"
	"dochub/internal/models"
)

const pkg = "orgsHandler/"

type OrgCreator interface {
	CreateOrg(ctx context.Context, requester *models.User, name string, slug string) (*models.Organization, error)
}

type OrgProvider interface {
	OrgByID(ctx context.Context, id string) (*models.Organization, error)
	ListOrgs(ctx context.Context, requester *models.User) ([]*models.Organization, error)
}

type OrgUpdater interface {
	UpdateOrg(ctx context.Context, id string, requester *models.User, patch models.OrgPatch) error
}

type OrgDeleter interface {
	DeleteOrg(ctx context.Context, id string, requester *models.User) error
}

func orgToDTO(org *models.Organization) dto.OrgResponse {
	return dto.OrgResponse{
		ID:        org.ID,
		OwnerID:   org.OwnerID,
		Name:      org.Name,
		Slug:      org.Slug,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
