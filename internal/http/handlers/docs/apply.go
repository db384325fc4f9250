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

func Apply(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, oa OpsApplier) {
	opName := pkg + "Apply"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.ApplyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	version, err := oa.Apply(ctx, docID, requester, req.BaseVersion, req.Ops)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidOps):
			log.Warn("invalid operations", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidOps.Error())
		case errors.Is(err, models.ErrVersionConflict):
			log.Warn("version conflict", slog.String("doc_id", docID), slog.Int64("base_version", req.BaseVersion))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrVersionConflict.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("edit forbidden", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		default:
			log.Error("failed to apply operations", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": dto.ApplyResponse{
			Version: version,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
