package workspaces

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

func Delete(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, wsID string, wd WorkspaceDeleter) {
	opName := pkg + "Delete"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	if err := wd.DeleteWorkspace(ctx, wsID, requester); err != nil {
		switch {
		case errors.Is(err, models.ErrWorkspaceNotFound):
			log.Warn("workspace not found", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrWorkspaceNotFound.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("delete forbidden", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		default:
			log.Error("failed to delete workspace", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": map[string]any{
			wsID: true,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
