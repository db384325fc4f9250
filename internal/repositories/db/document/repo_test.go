package documentrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"dochub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, *repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := NewRepository(sqlxDB)
	return sqlxDB, mock, repo
}

func TestCreateDocument_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	doc := &models.Document{
		ID:          "doc123",
		WorkspaceID: "ws1",
		OwnerID:     "user1",
		Title:       "design notes",
		IsPublic:    false,
		Version:     1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO documents (id, workspace_id, owner_id, title, is_public, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)).
		WithArgs(doc.ID, doc.WorkspaceID, doc.OwnerID, doc.Title, doc.IsPublic, doc.Version, doc.CreatedAt, doc.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO doc_content (doc_id, content) VALUES ($1, $2)`)).
		WithArgs(doc.ID, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateDocument(context.Background(), doc, "")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)*FROM documents d(.|\s)*WHERE d\.id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.DocumentByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents SET version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2`)).
		WithArgs("doc1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE doc_content SET content = $2 WHERE doc_id = $1`)).
		WithArgs("doc1", "hello world").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	version, err := repo.SaveSnapshot(context.Background(), "doc1", 3, "hello world")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSnapshot_VersionConflict(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE documents SET version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2`)).
		WithArgs("doc1", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.SaveSnapshot(context.Background(), "doc1", 2, "stale write")
	assert.ErrorIs(t, err, models.ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPermissionDelta(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO doc_permissions (doc_id, user_id, role) VALUES ($1, $2, $3)
			ON CONFLICT (doc_id, user_id) DO UPDATE SET role = EXCLUDED.role`)).
		WithArgs("doc1", "user2", "editor").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM doc_permissions WHERE doc_id = $1 AND user_id = $2`)).
		WithArgs("doc1", "user3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	add := []models.Permission{{UserID: "user2", Login: "seconduser", Role: models.RoleEditor}}
	err := repo.ApplyPermissionDelta(context.Background(), "doc1", add, []string{"user3"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionsByDocID(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"doc_id", "user_id", "login", "role"}).
		AddRow("doc1", "user2", "seconduser", "viewer")

	mock.ExpectQuery(`SELECT(.|\s)*FROM doc_permissions p(.|\s)*WHERE p\.doc_id = \$1`).
		WithArgs("doc1").
		WillReturnRows(rows)

	perms, err := repo.PermissionsByDocID(context.Background(), "doc1")
	assert.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, models.RoleViewer, perms[0].Role)
	assert.Equal(t, "seconduser", perms[0].Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}
