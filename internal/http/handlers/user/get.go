package user

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"dochub/internal/dto"
	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

// Me reports the user that owns the session token. The user is
// resolved by the auth middleware, so no service call is needed here.
func Me(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	op := pkg + "Me"

	log = log.With(slog.String("op", op))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	response := map[string]any{
		"data": dto.MeResponse{ID: requester.ID, Login: requester.Login},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
