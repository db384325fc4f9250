package orgrepo

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

const pkg = "orgRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateOrg(ctx context.Context, org *models.Organization) error {
	op := pkg + "CreateOrg"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orgs (id, owner_id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		org.ID, org.OwnerID, org.Name, org.Slug, org.CreatedAt, org.UpdatedAt)
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

func (r *repository) OrgByID(ctx context.Context, id string) (*models.Organization, error) {
	op := pkg + "OrgByID"

	rawOrg := entities.Organization{}

	err := r.db.GetContext(ctx, &rawOrg,
		`SELECT
			o.id AS id,
			o.owner_id AS owner_id,
			o.name AS name,
			o.slug AS slug,
			o.created_at AS created_at,
			o.updated_at AS updated_at
		FROM orgs o
		WHERE o.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrOrgNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orgFromEntity(rawOrg), nil
}

func (r *repository) ListOrgsForUser(ctx context.Context, userID string) ([]*models.Organization, error) {
	op := pkg + "ListOrgsForUser"

	rawOrgs := make([]entities.Organization, 0)

	err := r.db.SelectContext(ctx, &rawOrgs,
		`SELECT
			o.id AS id,
			o.owner_id AS owner_id,
			o.name AS name,
			o.slug AS slug,
			o.created_at AS created_at,
			o.updated_at AS updated_at
		FROM orgs o
		WHERE o.owner_id = $1
		ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orgs := make([]*models.Organization, 0, len(rawOrgs))
	for _, rawOrg := range rawOrgs {
		orgs = append(orgs, orgFromEntity(rawOrg))
	}

	return orgs, nil
}

func (r *repository) UpdateOrg(ctx context.Context, id string, patch models.OrgPatch) error {
	op := pkg + "UpdateOrg"

	res, err := r.db.ExecContext(ctx,
		`UPDATE orgs SET
			name = COALESCE($2, name),
			slug = COALESCE($3, slug),
			updated_at = NOW()
		WHERE id = $1`,
		id, patch.Name, patch.Slug)
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
		return fmt.Errorf("%s: %w", op, models.ErrOrgNotFound)
	}

	return nil
}

func (r *repository) DeleteOrg(ctx context.Context, id string) error {
	op := pkg + "DeleteOrg"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM orgs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func orgFromEntity(raw entities.Organization) *models.Organization {
	return &models.Organization{
		ID:        raw.ID,
		OwnerID:   raw.OwnerID,
		Name:      raw.Name,
		Slug:      raw.Slug,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}
