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

func Add(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, oc OrgCreator) {
	opName := pkg + "Add"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	var req dto.CreateOrgRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to decode body", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		return
	}
	defer r.Body.Close()

	org, err := oc.CreateOrg(ctx, requester, req.Name, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidParams):
			log.Warn("invalid org params")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
		case errors.Is(err, models.ErrOrgExists):
			log.Warn("org already exists", slog.String("slug", req.Slug))
			httperr.WriteJSONError(w, http.StatusConflict, models.ErrOrgExists.Error())
		default:
			log.Error("failed to create org", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": orgToDTO(org),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
