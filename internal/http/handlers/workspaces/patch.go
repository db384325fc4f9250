package workspaces

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

func Patch(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, wsID string, wu WorkspaceUpdater) {
	opName := pkg + "Patch"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.PatchWorkspaceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	patch := models.WorkspacePatch{Name: req.Name, Slug: req.Slug, Description: req.Description}

	if err := wu.UpdateWorkspace(ctx, wsID, requester, patch); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("invalid workspace patch")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrWorkspaceNotFound):
			log.Warn("workspace not found", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrWorkspaceNotFound.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("update forbidden", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrWorkspaceExists):
			log.Warn("workspace slug already taken", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrWorkspaceExists.Error())
		default:
			log.Error("failed to update workspace", slog.String("error", err.Error()))
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
