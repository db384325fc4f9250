package orgs

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

func Patch(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orgID string, ou OrgUpdater) {
	opName := pkg + "Patch"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.PatchOrgRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	patch := models.OrgPatch{Name: req.Name, Slug: req.Slug}

	if err := ou.UpdateOrg(ctx, orgID, requester, patch); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("invalid org patch")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrOrgNotFound):
			log.Warn("org not found", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrOrgNotFound.Error())
		case errors.Is(err, models.ErrForbidden):
			log.Warn("update forbidden", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrOrgExists):
			log.Warn("org slug taken", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrOrgExists.Error())
		default:
			log.Error("failed to update org", slog.String("error", err.Error()))
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
