package prefs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, pp PrefsProvider) {
	opName := pkg + "Get"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	userPrefs, err := pp.PrefsByUser(ctx, requester.ID)
	if err != nil {
		log.Error("failed to get prefs", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"prefs": userPrefs,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
