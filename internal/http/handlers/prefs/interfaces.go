package prefs

import (
	"context"

	"dochub/internal/models"
)

const pkg = "prefsHandler/"

type PrefsProvider interface {
	PrefsByUser(ctx context.Context, userID string) (models.Prefs, error)
}

type PrefSetter interface {
	SetPref(ctx context.Context, userID string, key string, seen bool) error
}
