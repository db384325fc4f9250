package docs

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

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, workspaceID string, dc DocumentCreator) {
	opName := pkg + "Add"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.CreateDocRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	doc, err := dc.CreateDocument(ctx, requester, workspaceID, req.Title, req.IsPublic)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid document params")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to create document", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": documentToDTO(doc),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
