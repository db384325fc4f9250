package orgservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dochub/internal/models"
	"dochub/internal/validator"

	uuid "github.com/satori/go.uuid"
)

const pkg = "orgService/"

type OrgService struct {
	log     *slog.Logger
	orgRepo OrgRepository
}

func New(log *slog.Logger, orgRepo OrgRepository) *OrgService {
	return &OrgService{
		log:     log,
		orgRepo: orgRepo,
	}
}

func (s *OrgService) CreateOrg(ctx context.Context, requester *models.User, name string, slug string) (*models.Organization, error) {
	op := pkg + "CreateOrg"

	log := s.log.With(slog.String("op", op))

	log.Debug("attempting to create org", slog.String("slug", slug))

	if !validator.IsValidName(name) || !validator.IsValidSlug(slug) {
		log.Warn("invalid org name or slug")
		return nil, models.ErrInvalidParams
	}

	now := time.Now()

	org := &models.Organization{
		ID:        uuid.NewV4().String(),
		OwnerID:   requester.ID,
		Name:      name,
		Slug:      slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orgRepo.CreateOrg(ctx, org); err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("org slug already taken", slog.String("constraint", uce.Constraint))
			return nil, models.ErrOrgExists
		}
		log.Error("failed to create org", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("org created successfully", slog.String("org_id", org.ID))

	return org, nil
}

func (s *OrgService) OrgByID(ctx context.Context, id string) (*models.Organization, error) {
	op := pkg + "OrgByID"

	log := s.log.With(slog.String("op", op))

	org, err := s.orgRepo.OrgByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrOrgNotFound) {
			log.Warn("org not found", slog.String("org_id", id))
			return nil, models.ErrOrgNotFound
		}
		log.Error("failed to get org", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return org, nil
}

func (s *OrgService) ListOrgs(ctx context.Context, requester *models.User) ([]*models.Organization, error) {
	op := pkg + "ListOrgs"

	log := s.log.With(slog.String("op", op))

	orgs, err := s.orgRepo.ListOrgsForUser(ctx, requester.ID)
	if err != nil {
		log.Error("failed to list orgs", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return orgs, nil
}

func (s *OrgService) UpdateOrg(ctx context.Context, id string, requester *models.User, patch models.OrgPatch) error {
	op := pkg + "UpdateOrg"

	log := s.log.With(slog.String("op", op))

	if patch.IsEmpty() {
		log.Warn("empty org patch")
		return models.ErrInvalidParams
	}

	if patch.Name != nil && !validator.IsValidName(*patch.Name) {
		log.Warn("invalid org name")
		return models.ErrInvalidParams
	}

	if patch.Slug != nil && !validator.IsValidSlug(*patch.Slug) {
		log.Warn("invalid org slug")
		return models.ErrInvalidParams
	}

	org, err := s.OrgByID(ctx, id)
	if err != nil {
		return err
	}

	if org.OwnerID != requester.ID {
		log.Warn("user is not the org owner", slog.String("org_id", id), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	if err := s.orgRepo.UpdateOrg(ctx, id, patch); err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("org slug already taken", slog.String("constraint", uce.Constraint))
			return models.ErrOrgExists
		}
		if errors.Is(err, models.ErrOrgNotFound) {
			return models.ErrOrgNotFound
		}
		log.Error("failed to update org", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("org updated successfully", slog.String("org_id", id))

	return nil
}

func (s *OrgService) DeleteOrg(ctx context.Context, id string, requester *models.User) error {
	op := pkg + "DeleteOrg"

	log := s.log.With(slog.String("op", op))

	org, err := s.OrgByID(ctx, id)
	if err != nil {
		return err
	}

	if org.OwnerID != requester.ID {
		log.Warn("user is not the org owner", slog.String("org_id", id), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	if err := s.orgRepo.DeleteOrg(ctx, id); err != nil {
		log.Error("failed to delete org", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("org deleted successfully", slog.String("org_id", id))

	return nil
}
