package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"dochub/internal/config"
	"dochub/internal/http/handlers/docs"
	"dochub/internal/http/handlers/orgs"
	"dochub/internal/http/handlers/perms"
	"dochub/internal/http/handlers/prefs"
	"dochub/internal/http/handlers/session"
	"dochub/internal/http/handlers/user"
	"dochub/internal/http/handlers/workspaces"
	"dochub/internal/http/middleware"
	"dochub/internal/models"
	"dochub/internal/utils/httperr"
	"dochub/internal/ws"

	"github.com/gorilla/mux"
)

func StartServer(
	ctx context.Context,
	cfg *config.HTTPServer,
	log *slog.Logger,
	authService AuthService,
	userService UserService,
	orgService OrgService,
	workspaceService WorkspaceService,
	documentService DocumentService,
	sessionStorer SessionStorer,
	hub *ws.Hub,
) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))

	setupRoutes(r, log, authService, userService, orgService, workspaceService, documentService, sessionStorer, hub)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(
	r *mux.Router,
	log *slog.Logger,
	auth AuthService,
	us UserService,
	org OrgService,
	workspace WorkspaceService,
	doc DocumentService,
	sessionStorer SessionStorer,
	hub *ws.Hub,
) {
	// POST user
	r.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// POST session
	r.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session.Add(ctx, log, w, r, auth)
	}).Methods(http.MethodPost)

	// DELETE session
	r.HandleFunc("/api/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		token := mux.Vars(r)["token"]
		session.Delete(ctx, log, w, r, token, auth)
	}).Methods(http.MethodDelete)

	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, sessionStorer))

	// GET orgs
	protected.HandleFunc("/api/orgs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgs.Get(ctx, log, w, r, org)
	}).Methods(http.MethodGet)

	// POST org
	protected.HandleFunc("/api/orgs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgs.Add(ctx, log, w, r, org)
	}).Methods(http.MethodPost)

	// GET org by id
	protected.HandleFunc("/api/orgs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgID := mux.Vars(r)["id"]
		orgs.GetByID(ctx, log, w, r, orgID, org)
	}).Methods(http.MethodGet)

	// PATCH org
	protected.HandleFunc("/api/orgs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgID := mux.Vars(r)["id"]
		orgs.Patch(ctx, log, w, r, orgID, org)
	}).Methods(http.MethodPatch)

	// DELETE org
	protected.HandleFunc("/api/orgs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgID := mux.Vars(r)["id"]
		orgs.Delete(ctx, log, w, r, orgID, org)
	}).Methods(http.MethodDelete)

	// GET workspaces in org
	protected.HandleFunc("/api/orgs/{id}/workspaces", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgID := mux.Vars(r)["id"]
		workspaces.Get(ctx, log, w, r, orgID, workspace)
	}).Methods(http.MethodGet)

	// POST workspace
	protected.HandleFunc("/api/orgs/{id}/workspaces", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orgID := mux.Vars(r)["id"]
		workspaces.Add(ctx, log, w, r, orgID, workspace)
	}).Methods(http.MethodPost)

	// GET workspace by id
	protected.HandleFunc("/api/workspaces/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wsID := mux.Vars(r)["id"]
		workspaces.GetByID(ctx, log, w, r, wsID, workspace)
	}).Methods(http.MethodGet)

	// PATCH workspace
	protected.HandleFunc("/api/workspaces/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wsID := mux.Vars(r)["id"]
		workspaces.Patch(ctx, log, w, r, wsID, workspace)
	}).Methods(http.MethodPatch)

	// DELETE workspace
	protected.HandleFunc("/api/workspaces/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wsID := mux.Vars(r)["id"]
		workspaces.Delete(ctx, log, w, r, wsID, workspace)
	}).Methods(http.MethodDelete)

	// GET docs in workspace
	protected.HandleFunc("/api/workspaces/{id}/docs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wsID := mux.Vars(r)["id"]
		docs.Get(ctx, log, w, r, wsID, doc)
	}).Methods(http.MethodGet)

	// POST doc
	protected.HandleFunc("/api/workspaces/{id}/docs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wsID := mux.Vars(r)["id"]
		docs.Add(ctx, log, w, r, wsID, doc)
	}).Methods(http.MethodPost)

	// GET doc by id
	protected.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		docs.GetByID(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// PATCH doc
	protected.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		docs.Patch(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPatch)

	// DELETE doc
	protected.HandleFunc("/api/docs/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		docs.Delete(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodDelete)

	// GET doc snapshot
	protected.HandleFunc("/api/docs/{id}/snapshot", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		docs.GetSnapshot(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// POST doc ops
	protected.HandleFunc("/api/docs/{id}/apply", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		docs.Apply(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// GET doc permissions
	protected.HandleFunc("/api/docs/{id}/permissions", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		perms.Get(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodGet)

	// POST doc permission delta
	protected.HandleFunc("/api/docs/{id}/permissions", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]
		perms.Post(ctx, log, w, r, docID, doc)
	}).Methods(http.MethodPost)

	// GET current user
	protected.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Me(ctx, log, w, r)
	}).Methods(http.MethodGet)

	// GET my prefs
	protected.HandleFunc("/api/users/me/prefs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		prefs.Get(ctx, log, w, r, us)
	}).Methods(http.MethodGet)

	// PATCH my pref
	protected.HandleFunc("/api/users/me/prefs", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		prefs.Patch(ctx, log, w, r, us)
	}).Methods(http.MethodPatch)

	// GET doc live updates
	protected.HandleFunc("/api/docs/{id}/ws", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docID := mux.Vars(r)["id"]

		requester, ok := ctx.Value(models.UserContextKey).(*models.User)
		if !ok {
			httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			return
		}

		// Read access is checked before the connection is upgraded.
		if _, err := doc.DocumentByID(ctx, docID, requester); err != nil {
			switch {
			case errors.Is(err, models.ErrForbidden):
				httperr.WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
			case errors.Is(err, models.ErrDocumentNotFound):
				httperr.WriteJSONError(w, http.StatusNotFound, models.ErrDocumentNotFound.Error())
			default:
				httperr.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
			}
			return
		}

		ws.ServeWS(hub, w, r, docID, requester.ID)
	}).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperr.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
