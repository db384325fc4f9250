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

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orgID string, wc WorkspaceCreator) {
	opName := pkg + "Add"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.CreateWorkspaceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	ws, err := wc.CreateWorkspace(ctx, orgID, requester, req.Name, req.Slug, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("invalid workspace params")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrOrgNotFound):
			log.Warn("org not found", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrOrgNotFound.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("create forbidden", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrWorkspaceExists):
			log.Warn("workspace slug already taken", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrWorkspaceExists.Error())
		default:
			log.Error("failed to create workspace", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": workspaceToDTO(ws),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
