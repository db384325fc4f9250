package userrepo

import (
	"context"
	"regexp"
	"testing"

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

func TestAddUser_Duplicate(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users(id, login, pass_hash) VALUES($1, $2, $3)`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_login_key"})

	err := repo.AddUser(context.Background(), models.User{ID: "u1", Login: "firstuser"})

	var uce *models.UniqueConstraintError
	assert.ErrorAs(t, err, &uce)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByLogin_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT(.|\s)*FROM users u(.|\s)*WHERE u\.login = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.UserByLogin(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrefsByUserID(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "key", "seen"}).
		AddRow("u1", "tip.share", true).
		AddRow("u1", "tip.apply", false)

	mock.ExpectQuery(`SELECT(.|\s)*FROM user_prefs p(.|\s)*WHERE p\.user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(rows)

	prefs, err := repo.PrefsByUserID(context.Background(), "u1")
	assert.NoError(t, err)
	assert.True(t, prefs["tip.share"])
	assert.False(t, prefs["tip.apply"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetPref_Upsert(t *testing.T) {
	t.Parallel()

	db, mock, repo := setup(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO user_prefs (user_id, key, seen) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key) DO UPDATE SET seen = EXCLUDED.seen`)).
		WithArgs("u1", "tip.share", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetPref(context.Background(), "u1", "tip.share", true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
