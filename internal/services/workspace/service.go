package workspaceservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dochub/internal/models"
	"dochub/internal/validator"

	uuid "github.com/satori/go.uuid"
)

const pkg = "workspaceService/"

type WorkspaceService struct {
	log         *slog.Logger
	wsRepo      WorkspaceRepository
	orgProvider OrgProvider
}

func New(log *slog.Logger, wsRepo WorkspaceRepository, orgProvider OrgProvider) *WorkspaceService {
	return &WorkspaceService{
		log:         log,
		wsRepo:      wsRepo,
		orgProvider: orgProvider,
	}
}

func (s *WorkspaceService) CreateWorkspace(ctx context.Context, orgID string, requester *models.User, name string, slug string, description string) (*models.Workspace, error) {
	op := pkg + "CreateWorkspace"

	log := s.log.With(slog.String("op", op))

	log.Debug("attempting to create workspace", slog.String("org_id", orgID))

	if !validator.IsValidName(name) || !validator.IsValidSlug(slug) {
		log.Warn("invalid workspace name or slug")
		return nil, models.ErrInvalidParams
	}

	org, err := s.orgProvider.OrgByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, models.ErrOrgNotFound) {
			log.Warn("org not found", slog.String("org_id", orgID))
			return nil, models.ErrOrgNotFound
		}
		log.Error("failed to get org", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	if org.OwnerID != requester.ID {
		log.Warn("user is not the org owner", slog.String("org_id", orgID), slog.String("user_id", requester.ID))
		return nil, models.ErrForbidden
	}

	now := time.Now()

	ws := &models.Workspace{
		ID:          uuid.NewV4().String(),
		OrgID:       orgID,
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.wsRepo.CreateWorkspace(ctx, ws); err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("workspace slug already taken", slog.String("constraint", uce.Constraint))
			return nil, models.ErrWorkspaceExists
		}
		log.Error("failed to create workspace", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	log.Debug("workspace created successfully", slog.String("workspace_id", ws.ID))

	return ws, nil
}

func (s *WorkspaceService) WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error) {
	op := pkg + "WorkspaceByID"

	log := s.log.With(slog.String("op", op))

	ws, err := s.wsRepo.WorkspaceByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrWorkspaceNotFound) {
			log.Warn("workspace not found", slog.String("workspace_id", id))
			return nil, models.ErrWorkspaceNotFound
		}
		log.Error("failed to get workspace", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return ws, nil
}

func (s *WorkspaceService) ListByOrg(ctx context.Context, orgID string) ([]*models.Workspace, error) {
	op := pkg + "ListByOrg"

	log := s.log.With(slog.String("op", op))

	workspaces, err := s.wsRepo.ListByOrg(ctx, orgID)
	if err != nil {
		log.Error("failed to list workspaces", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return workspaces, nil
}

func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, id string, requester *models.User, patch models.WorkspacePatch) error {
	op := pkg + "UpdateWorkspace"

	log := s.log.With(slog.String("op", op))

	if patch.IsEmpty() {
		log.Warn("empty workspace patch")
		return models.ErrInvalidParams
	}

	if patch.Name != nil && !validator.IsValidName(*patch.Name) {
		log.Warn("invalid workspace name")
		return models.ErrInvalidParams
	}

	if patch.Slug != nil && !validator.IsValidSlug(*patch.Slug) {
		log.Warn("invalid workspace slug")
		return models.ErrInvalidParams
	}

	if err := s.requireOrgOwner(ctx, id, requester, log); err != nil {
		return err
	}

	if err := s.wsRepo.UpdateWorkspace(ctx, id, patch); err != nil {
		if errors.Is(err, models.ErrWorkspaceNotFound) {
			return models.ErrWorkspaceNotFound
		}
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("workspace slug already taken", slog.String("constraint", uce.Constraint))
			return models.ErrWorkspaceExists
		}
		log.Error("failed to update workspace", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("workspace updated successfully", slog.String("workspace_id", id))

	return nil
}

func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id string, requester *models.User) error {
	op := pkg + "DeleteWorkspace"

	log := s.log.With(slog.String("op", op))

	if err := s.requireOrgOwner(ctx, id, requester, log); err != nil {
		return err
	}

	if err := s.wsRepo.DeleteWorkspace(ctx, id); err != nil {
		log.Error("failed to delete workspace", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("workspace deleted successfully", slog.String("workspace_id", id))

	return nil
}

func (s *WorkspaceService) requireOrgOwner(ctx context.Context, workspaceID string, requester *models.User, log *slog.Logger) error {
	ws, err := s.WorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	org, err := s.orgProvider.OrgByID(ctx, ws.OrgID)
	if err != nil {
		if errors.Is(err, models.ErrOrgNotFound) {
			return models.ErrOrgNotFound
		}
		log.Error("failed to get org", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	if org.OwnerID != requester.ID {
		log.Warn("user is not the org owner", slog.String("org_id", org.ID), slog.String("user_id", requester.ID))
		return models.ErrForbidden
	}

	return nil
}
