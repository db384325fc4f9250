package workspacerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dochub/internal/entities"
	"dochub/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "workspaceRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateWorkspace(ctx context.Context, ws *models.Workspace) error {
	op := pkg + "CreateWorkspace"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, org_id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ws.ID, ws.OrgID, ws.Name, ws.Slug, ws.Description, ws.CreatedAt, ws.UpdatedAt)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) WorkspaceByID(ctx context.Context, id string) (*models.Workspace, error) {
	op := pkg + "WorkspaceByID"

	rawWS := entities.Workspace{}

	err := r.db.GetContext(ctx, &rawWS,
		`SELECT
			w.id AS id,
			w.org_id AS org_id,
			w.name AS name,
			w.slug AS slug,
			w.description AS description,
			w.created_at AS created_at,
			w.updated_at AS updated_at
		FROM workspaces w
		WHERE w.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrWorkspaceNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return workspaceFromEntity(rawWS), nil
}

func (r *repository) ListByOrg(ctx context.Context, orgID string) ([]*models.Workspace, error) {
	op := pkg + "ListByOrg"

	rawWSs := make([]entities.Workspace, 0)

	err := r.db.SelectContext(ctx, &rawWSs,
		`SELECT
			w.id AS id,
			w.org_id AS org_id,
			w.name AS name,
			w.slug AS slug,
			w.description AS description,
			w.created_at AS created_at,
			w.updated_at AS updated_at
		FROM workspaces w
		WHERE w.org_id = $1
		ORDER BY w.name ASC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	workspaces := make([]*models.Workspace, 0, len(rawWSs))
	for _, rawWS := range rawWSs {
		workspaces = append(workspaces, workspaceFromEntity(rawWS))
	}

	return workspaces, nil
}

func (r *repository) UpdateWorkspace(ctx context.Context, id string, patch models.WorkspacePatch) error {
	op := pkg + "UpdateWorkspace"

	res, err := r.db.ExecContext(ctx,
		`UPDATE workspaces SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			description = COALESCE($4, description),
			updated_at = NOW()
		WHERE id = $1`,
		id, patch.Name, patch.Slug, patch.Description)
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok {
			if pgErr.Code == "23505" {
				return &models.UniqueConstraintError{
					Constraint: pgErr.Constraint,
					Err:        models.ErrUNIQUEConstraintFailed,
				}
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrWorkspaceNotFound)
	}

	return nil
}

func (r *repository) DeleteWorkspace(ctx context.Context, id string) error {
	op := pkg + "DeleteWorkspace"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func workspaceFromEntity(raw entities.Workspace) *models.Workspace {
	return &models.Workspace{
		ID:          raw.ID,
		OrgID:       raw.OrgID,
		Name:        raw.Name,
		Slug:        raw.Slug,
		Description: raw.Description,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
}
