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

func Patch(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, du DocumentUpdater) {
	opName := pkg + "Patch"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.PatchDocRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	if err := du.RenameDocument(ctx, docID, requester, req.Title, req.IsPublic); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("invalid document patch")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("edit forbidden", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		default:
			log.Error("failed to update document", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": map[string]any{
			docID: true,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
