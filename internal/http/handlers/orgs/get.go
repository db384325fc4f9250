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

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, op OrgProvider) {
	opName := pkg + "Get"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	rawOrgs, err := op.ListOrgs(ctx, requester)
	if err != nil {
		log.Error("failed to list orgs", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoOrgs := make([]dto.OrgResponse, 0, len(rawOrgs))
	for _, org := range rawOrgs {
		dtoOrgs = append(dtoOrgs, orgToDTO(org))
	}

	response := map[string]any{
		"data": map[string]any{
			"orgs": dtoOrgs,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orgID string, op OrgProvider) {
	opName := pkg + "GetByID"

	log = log.With(slog.String("op", opName))

	org, err := op.OrgByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, models.ErrOrgNotFound) {
			log.Warn("org not found", slog.String("org_id", orgID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrOrgNotFound.Error())
			return
		}
		log.Error("failed to get org", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": orgToDTO(org),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
