package orgs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orgID string, od OrgDeleter) {
	opName := pkg + "Delete"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	if err := od.DeleteOrg(ctx, orgID, requester); err != nil {
		switch {
		case errors.Is(err, models.ErrOrgNotFound):
			log.Warn("org not found", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrOrgNotFound.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("delete forbidden", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		default:
			log.Error("failed to delete org", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": map[string]any{
			orgID: true,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
