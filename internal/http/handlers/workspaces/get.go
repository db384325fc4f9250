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

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orgID string, wp WorkspaceProvider) {
	opName := pkg + "Get"

	log = log.With(slog.String("op", opName))

	rawWSs, err := wp.ListByOrg(ctx, orgID)
	if err != nil {
		log.Error("failed to list workspaces", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoWSs := make([]dto.WorkspaceResponse, 0, len(rawWSs))
	for _, ws := range rawWSs {
		dtoWSs = append(dtoWSs, workspaceToDTO(ws))
	}

	response := map[string]any{
		"data": map[string]any{
			"workspaces": dtoWSs,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, wsID string, wp WorkspaceProvider) {
	opName := pkg + "GetByID"

	log = log.With(slog.String("op", opName))

	ws, err := wp.WorkspaceByID(ctx, wsID)
	if err != nil {
		if errors.Is(err, models.ErrWorkspaceNotFound) {
			log.Warn("workspace not found", slog.String("workspace_id", wsID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrWorkspaceNotFound.Error())
			return
		}
		log.Error("failed to get workspace", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": workspaceToDTO(ws),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
