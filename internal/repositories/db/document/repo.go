package documentrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dochub/internal/entities"
	"dochub/internal/models"

	"github.com/jmoiron/sqlx"
)

const pkg = "documentRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateDocument(ctx context.Context, doc *models.Document, content string) error {
	op := pkg + "CreateDocument"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, workspace_id, owner_id, title, is_public, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		doc.ID, doc.WorkspaceID, doc.OwnerID, doc.Title, doc.IsPublic, doc.Version, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO doc_content (doc_id, content) VALUES ($1, $2)`,
		doc.ID, content)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) DocumentByID(ctx context.Context, id string) (*models.Document, error) {
	op := pkg + "DocumentByID"

	rawDoc := entities.Document{}

	err := r.db.GetContext(ctx, &rawDoc,
		`SELECT
			d.id AS id,
			d.workspace_id AS workspace_id,
			d.owner_id AS owner_id,
			d.title AS title,
			d.is_public AS is_public,
			d.version AS version,
			d.created_at AS created_at,
			d.updated_at AS updated_at
		FROM documents d
		WHERE d.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return documentFromEntity(rawDoc), nil
}

func (r *repository) ListByWorkspace(ctx context.Context, workspaceID string, requesterID string, filter models.DocumentFilter) ([]*models.Document, error) {
	op := pkg + "ListByWorkspace"

	rawDocs := make([]entities.Document, 0)

	baseQuery := `SELECT DISTINCT
			d.id AS id,
			d.workspace_id AS workspace_id,
			d.owner_id AS owner_id,
			d.title AS title,
			d.is_public AS is_public,
			d.version AS version,
			d.created_at AS created_at,
			d.updated_at AS updated_at
		FROM documents d
		LEFT JOIN doc_permissions p ON p.doc_id = d.id
		WHERE d.workspace_id = $1
		AND (
			d.is_public = TRUE
			OR d.owner_id = $2
			OR p.user_id = $2
		)
		AND (
			($3 = 'title' AND d.title = $4) OR
			($3 = '' AND TRUE)
		)
		ORDER BY d.title ASC, d.created_at DESC`

	args := []any{
		workspaceID,
		requesterID,
		filter.Key,
		filter.Value,
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)

		baseQuery += ` LIMIT $5`
	}

	err := r.db.SelectContext(ctx, &rawDocs, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]*models.Document, 0, len(rawDocs))
	for _, rawDoc := range rawDocs {
		docs = append(docs, documentFromEntity(rawDoc))
	}

	return docs, nil
}

func (r *repository) UpdateDocument(ctx context.Context, id string, title *string, isPublic *bool) error {
	op := pkg + "UpdateDocument"

	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET
			title = COALESCE($2, title),
			is_public = COALESCE($3, is_public),
			updated_at = NOW()
		WHERE id = $1`,
		id, title, isPublic)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) SnapshotByDocID(ctx context.Context, docID string) (*models.DocSnapshot, error) {
	op := pkg + "SnapshotByDocID"

	rawSnap := entities.DocSnapshot{}

	err := r.db.GetContext(ctx, &rawSnap,
		`SELECT
			d.id AS doc_id,
			d.version AS version,
			c.content AS content
		FROM documents d
		INNER JOIN doc_content c ON c.doc_id = d.id
		WHERE d.id = $1`, docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.DocSnapshot{
		DocID:   rawSnap.DocID,
		Version: rawSnap.Version,
		Content: rawSnap.Content,
	}, nil
}

// SaveSnapshot persists new content if the document is still at baseVersion.
// Returns the new version, or ErrVersionConflict if another writer got there
// first.
func (r *repository) SaveSnapshot(ctx context.Context, docID string, baseVersion int64, content string) (int64, error) {
	op := pkg + "SaveSnapshot"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE documents SET version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2`,
		docID, baseVersion)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return 0, fmt.Errorf("%s: %w", op, models.ErrVersionConflict)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE doc_content SET content = $2 WHERE doc_id = $1`,
		docID, content)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return baseVersion + 1, nil
}

func (r *repository) PermissionsByDocID(ctx context.Context, docID string) ([]models.Permission, error) {
	op := pkg + "PermissionsByDocID"

	rawPerms := make([]entities.Permission, 0)

	err := r.db.SelectContext(ctx, &rawPerms,
		`SELECT
			p.doc_id AS doc_id,
			p.user_id AS user_id,
			u.login AS login,
			p.role AS role
		FROM doc_permissions p
		INNER JOIN users u ON u.id = p.user_id
		WHERE p.doc_id = $1
		ORDER BY u.login ASC`, docID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	perms := make([]models.Permission, 0, len(rawPerms))
	for _, rawPerm := range rawPerms {
		perms = append(perms, models.Permission{
			UserID: rawPerm.UserID,
			Login:  rawPerm.Login,
			Role:   models.Role(rawPerm.Role),
		})
	}

	return perms, nil
}

// ApplyPermissionDelta upserts adds and drops removes in one transaction.
func (r *repository) ApplyPermissionDelta(ctx context.Context, docID string, add []models.Permission, removeUserIDs []string) error {
	op := pkg + "ApplyPermissionDelta"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	for _, perm := range add {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO doc_permissions (doc_id, user_id, role) VALUES ($1, $2, $3)
			ON CONFLICT (doc_id, user_id) DO UPDATE SET role = EXCLUDED.role`,
			docID, perm.UserID, string(perm.Role))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	for _, userID := range removeUserIDs {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM doc_permissions WHERE doc_id = $1 AND user_id = $2`,
			docID, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func documentFromEntity(raw entities.Document) *models.Document {
	return &models.Document{
		ID:          raw.ID,
		WorkspaceID: raw.WorkspaceID,
		OwnerID:     raw.OwnerID,
		Title:       raw.Title,
		IsPublic:    raw.IsPublic,
		Version:     raw.Version,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
}
