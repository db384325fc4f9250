package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"dochub/internal/models"
	"dochub/internal/utils/httperr"
)

func Auth(log *slog.Logger, storer SessionStorer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op := pkg + "Auth"

			log := log.With(slog.String("op", op))

			token := tokenFromRequest(r)
			if token == "" {
				httperr.WriteJSONError(w, http.StatusForbidden, "token is missing")
				return
			}

			requester, err := storer.UserByToken(r.Context(), token)
			if err != nil {
				log.Warn("failed to get user by token", slog.String("error", err.Error()))
				httperr.WriteJSONError(w, http.StatusForbidden, "token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// tokenFromRequest accepts the token either as a bearer header or a query
// parameter. Websocket clients can't set custom headers from the browser,
// so the query form stays supported.
func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return r.URL.Query().Get("token")
}
