package perms

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

func Post(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, pc PermissionChanger) {
	opName := pkg + "Post"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.PermissionDeltaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	delta := models.PermissionDelta{Add: req.Add, Remove: req.Remove}

	if err := pc.ApplyPermissionDelta(ctx, docID, requester, delta); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams), errors.Is(err, models.ErrInvalidRole):
			log.Warn("invalid permission delta")
			httperr.WriteJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, models.ErrOwnerImmutable):
			log.Warn("attempt to change owner permission", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrOwnerImmutable.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("permission change forbidden", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrUserNotFound):
			log.Warn("grantee not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrUserNotFound.Error())
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		default:
			log.Error("failed to apply permission delta", slog.String("error", err.Error()))
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
