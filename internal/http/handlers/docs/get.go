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
	"dochub/internal/utils/query"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, workspaceID string, dp DocumentProvider) {
	opName := pkg + "Get"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	filter := models.DocumentFilter{
		Key:   r.URL.Query().Get("key"),
		Value: r.URL.Query().Get("value"),
		Limit: query.ParseLimit(r.URL.Query().Get("limit")),
	}

	rawDocs, err := dp.ListByWorkspace(ctx, workspaceID, requester, filter)
	if err != nil {
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid filter")
			httperr.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to list documents", slog.String("error", err.Error()))
		httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	dtoDocs := make([]dto.DocumentResponse, 0, len(rawDocs))
	for _, doc := range rawDocs {
		dtoDocs = append(dtoDocs, documentToDTO(doc))
	}

	response := map[string]any{
		"data": map[string]any{
			"docs": dtoDocs,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, docID string, dp DocumentProvider) {
	opName := pkg + "GetByID"

	log = log.With(slog.String("op", opName))

	requester, ok := r.Context().Value(models.UserContextKey).(*models.User)
	if !ok {
		log.Error("failed to get user from context")
		httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		return
	}

	doc, err := dp.DocumentByID(ctx, docID, requester)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrForbidden):
			log.Warn("read forbidden", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
		case errors.Is(err, models.ErrDocumentNotFound):
			log.Warn("document not found", slog.String("doc_id", docID))
			httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
		default:
			log.Error("failed to get document", slog.String("error", err.Error()))
			httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		}
		return
	}

	response := map[string]any{
		"data": documentToDTO(doc),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
