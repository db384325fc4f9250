package userrepo

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

const pkg = "userRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users(id, login, pass_hash) VALUES($1, $2, $3)`,
		user.ID, user.Login, user.PassHash)

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

func (r *repository) UserByID(ctx context.Context, id string) (*models.User, error) {
	op := pkg + "UserByID"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.login AS login,
			u.pass_hash AS pass_hash
		FROM users u
		WHERE u.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.User{
		ID:       rawUser.ID,
		Login:    rawUser.Login,
		PassHash: rawUser.PassHash,
	}, nil
}

func (r *repository) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	op := pkg + "UserByLogin"

	rawUser := entities.User{}

	err := r.db.GetContext(ctx, &rawUser,
		`SELECT
			u.id AS id,
			u.login AS login,
			u.pass_hash AS pass_hash
		FROM users u
		WHERE u.login = $1`, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.User{
		ID:       rawUser.ID,
		Login:    rawUser.Login,
		PassHash: rawUser.PassHash,
	}, nil
}

func (r *repository) PrefsByUserID(ctx context.Context, userID string) (models.Prefs, error) {
	op := pkg + "PrefsByUserID"

	rawPrefs := make([]entities.UserPref, 0)

	err := r.db.SelectContext(ctx, &rawPrefs,
		`SELECT
			p.user_id AS user_id,
			p.key AS key,
			p.seen AS seen
		FROM user_prefs p
		WHERE p.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prefs := make(models.Prefs, len(rawPrefs))
	for _, p := range rawPrefs {
		prefs[p.Key] = p.Seen
	}

	return prefs, nil
}

func (r *repository) SetPref(ctx context.Context, userID string, key string, seen bool) error {
	op := pkg + "SetPref"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_prefs (user_id, key, seen) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key) DO UPDATE SET seen = EXCLUDED.seen`,
		userID, key, seen)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
