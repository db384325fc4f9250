package user

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dochub/internal/dto"
	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, reg Registrar) {
	op := pkg + "Add"

	log = log.With(slog.String("op", op))

	var req dto.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	login, err := reg.Register(ctx, req.Login, req.Password, req.AdminToken)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserExists):
			log.Warn("failed to register user", slog.String("error", models.ErrUserExists.Error()))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrUserExists.Error())
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("failed to register user", slog.String("error", models.ErrInvalidParams.Error()))
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("failed to register user", slog.String("error", models.ErrForbidden.Error()))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		default:
			log.Error("failed to register user", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": dto.RegisterResponse{Login: login},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
