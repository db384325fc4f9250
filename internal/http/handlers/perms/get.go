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

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, pp PermissionProvider) {
	opName := pkg + "Get"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	rawPerms, err := pp.Permissions(ctx, docID, requester)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrForbidden):
			log.Warn("read forbidden", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		default:
			log.Error("failed to list permissions", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	dtoPerms := make([]dto.PermissionResponse, 0, len(rawPerms))
	for _, p := range rawPerms {
		dtoPerms = append(dtoPerms, dto.PermissionResponse{
			UserID: p.UserID,
			Login:  p.Login,
			Role:   p.Role,
		})
	}

	response := map[string]any{
		"data": map[string]any{
			"permissions": dtoPerms,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
