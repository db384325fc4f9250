package orgrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"dochub/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func TestCreateOrg_Success(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	org := &models.Organization{
		ID:        "org1",
		OwnerID:   "user1",
		Name:      "Acme",
		Slug:      "acme",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO orgs (id, owner_id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`)).
		WithArgs(org.ID, org.OwnerID, org.Name, org.Slug, org.CreatedAt, org.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateOrg(context.Background(), org)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrg_DuplicateSlug(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	org := &models.Organization{ID: "org1", OwnerID: "user1", Name: "Acme", Slug: "acme"}

	mock.ExpectExec(`INSERT INTO orgs`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "orgs_slug_key"})

	err := repo.CreateOrg(context.Background(), org)

	var uce *models.UniqueConstraintError
	assert.ErrorAs(t, err, &uce)
	assert.Equal(t, "orgs_slug_key", uce.Constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)*FROM orgs o(.|\s)*WHERE o\.id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.OrgByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrOrgNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrg_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	name := "Renamed"

	mock.ExpectExec(`UPDATE orgs SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOrg(context.Background(), "missing", models.OrgPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrOrgNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
