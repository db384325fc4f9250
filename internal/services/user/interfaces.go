package userservice

import (
	"context"

	"dochub/internal/models"
)

type UserAdder interface {
	AddUser(ctx context.Context, user models.User) error
}

type UserProvider interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByLogin(ctx context.Context, login string) (*models.User, error)
}

type PrefsRepository interface {
	PrefsByUserID(ctx context.Context, userID string) (models.Prefs, error)
	SetPref(ctx context.Context, userID string, key string, seen bool) error
}
