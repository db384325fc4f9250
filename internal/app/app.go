package app

import (
	"context"
	"fmt"
	"log/slog"

	"dochub/internal/cache/redis"
	"dochub/internal/config"
	"dochub/internal/dbs/postgres"
	sessioncacherepo "dochub/internal/repositories/cache/session"
	snapshotcacherepo "dochub/internal/repositories/cache/snapshot"
	documentrepo "dochub/internal/repositories/db/document"
	orgrepo "dochub/internal/repositories/db/org"
	userrepo "dochub/internal/repositories/db/user"
	workspacerepo "dochub/internal/repositories/db/workspace"
	authservice "dochub/internal/services/auth"
	documentservice "dochub/internal/services/document"
	orgservice "dochub/internal/services/org"
	userservice "dochub/internal/services/user"
	workspaceservice "dochub/internal/services/workspace"
	"dochub/internal/ws"
)

type App struct {
	AuthService      AuthService
	UserService      UserService
	OrgService       OrgService
	WorkspaceService WorkspaceService
	DocumentService  DocumentService
	SessionStorer    SessionStorer
	Hub              *ws.Hub
}

func NewApp(ctx context.Context, log *slog.Logger, dbCfg config.DB, cacheCfg config.Cache, adminToken string) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     dbCfg.Addr,
		Port:     dbCfg.Port,
		User:     dbCfg.User,
		Password: dbCfg.Password,
		DB:       dbCfg.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{Addr: cacheCfg.Addr, Password: cacheCfg.Password, DB: cacheCfg.DB})
	if err != nil {
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	userRepo := userrepo.NewRepository(db)

	sessionCacheRepo := sessioncacherepo.New(cache, cacheCfg.SessionTTL)

	snapshotCacheRepo := snapshotcacherepo.New(cache, cacheCfg.SnapshotTTL)

	userService := userservice.New(log, userRepo, userRepo, userRepo)

	authService := authservice.New(log, userService, userService, sessionCacheRepo, adminToken)

	orgRepo := orgrepo.NewRepository(db)

	orgService := orgservice.New(log, orgRepo)

	workspaceRepo := workspacerepo.NewRepository(db)

	workspaceService := workspaceservice.New(log, workspaceRepo, orgService)

	hub := ws.NewHub(log)

	docRepo := documentrepo.NewRepository(db)

	documentService := documentservice.New(log, docRepo, snapshotCacheRepo, userService, hub)

	return &App{
		AuthService:      authService,
		UserService:      userService,
		OrgService:       orgService,
		WorkspaceService: workspaceService,
		DocumentService:  documentService,
		SessionStorer:    authService,
		Hub:              hub,
	}, nil
}
