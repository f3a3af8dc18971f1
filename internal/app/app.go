package app

import (
	"context"
	"fmt"

	"athlete-service/internal/auth"
	"athlete-service/internal/config"
	apphttp "athlete-service/internal/http"
	"athlete-service/internal/http/handler"
	"athlete-service/internal/repository/postgres"
)

// App owns the wired service graph and the resources that need
// closing on shutdown.
type App struct {
	cfg    *config.Config
	db     *postgres.DB
	server *apphttp.Server
}

func New(cfg *config.Config) (*App, error) {
	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	apiKeyRepo := postgres.NewAPIKeyRepository(db)
	athleteRepo := postgres.NewAthleteRepository(db)

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authService := auth.NewService(userRepo, jwtService)
	authMiddleware := auth.NewMiddleware(jwtService, apiKeyRepo)

	server := apphttp.NewServer(apphttp.ServerDependencies{
		Config:         cfg,
		AuthHandler:    handler.NewAuthHandler(authService),
		AthleteHandler: handler.NewAthleteHandler(athleteRepo),
		UserHandler:    handler.NewUserHandler(userRepo),
		APIKeyHandler:  handler.NewAPIKeyHandler(apiKeyRepo),
		AuthMiddleware: authMiddleware,
	})

	return &App{cfg: cfg, db: db, server: server}, nil
}

// Run starts the HTTP listener and blocks until it stops.
func (a *App) Run() error {
	return a.server.Start()
}

// Shutdown drains in-flight requests and releases the database pool.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	a.db.Close()
	return err
}
