package userservice

import (
	"context"
	"errors"
	"log/slog"

	"dochub/internal/models"
)

const pkg = "userService/"

type UserService struct {
	log          *slog.Logger
	userAdder    UserAdder
	userProvider UserProvider
	prefsRepo    PrefsRepository
}

func New(
	log *slog.Logger,
	userAdder UserAdder,
	userProvider UserProvider,
	prefsRepo PrefsRepository,
) *UserService {
	return &UserService{
		log:          log,
		userAdder:    userAdder,
		userProvider: userProvider,
		prefsRepo:    prefsRepo,
	}
}

func (u *UserService) AddUser(ctx context.Context, user models.User) error {
	op := pkg + "AddUser"

	log := u.log.With(slog.String("op", op))

	log.Debug("attempting to add user")

	err := u.userAdder.AddUser(ctx, user)
	if err != nil {
		var uce *models.UniqueConstraintError
		if errors.As(err, &uce) {
			log.Warn("user already exists", slog.String("constraint", uce.Constraint))
			return models.ErrUserExists
		}
		log.Error("failed to add user", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("user added successfully")

	return nil
}

func (u *UserService) UserByID(ctx context.Context, id string) (*models.User, error) {
	op := pkg + "UserByID"

	log := u.log.With(slog.String("op", op))

	user, err := u.userProvider.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("user not found", slog.String("user_id", id))
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to get user by id", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return user, nil
}

func (u *UserService) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	op := pkg + "UserByLogin"

	log := u.log.With(slog.String("op", op))

	user, err := u.userProvider.UserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("user not found", slog.String("login", login))
			return nil, models.ErrUserNotFound
		}
		log.Error("failed to get user by login", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return user, nil
}

func (u *UserService) UserIDByLogin(ctx context.Context, login string) (string, error) {
	user, err := u.UserByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	return user.ID, nil
}

func (u *UserService) PrefsByUser(ctx context.Context, userID string) (models.Prefs, error) {
	op := pkg + "PrefsByUser"

	log := u.log.With(slog.String("op", op))

	prefs, err := u.prefsRepo.PrefsByUserID(ctx, userID)
	if err != nil {
		log.Error("failed to get prefs", slog.String("error", err.Error()))
		return nil, models.ErrInternal
	}

	return prefs, nil
}

func (u *UserService) SetPref(ctx context.Context, userID string, key string, seen bool) error {
	op := pkg + "SetPref"

	log := u.log.With(slog.String("op", op))

	if key == "" {
		log.Warn("empty pref key")
		return models.ErrInvalidParams
	}

	if err := u.prefsRepo.SetPref(ctx, userID, key, seen); err != nil {
		log.Error("failed to set pref", slog.String("error", err.Error()))
		return models.ErrInternal
	}

	log.Debug("pref updated", slog.String("key", key), slog.Bool("seen", seen))

	return nil
}
