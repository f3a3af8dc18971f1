package http

import (
	"context"
	"net/http"

	"athlete-service/internal/auth"
	"athlete-service/internal/config"
	"athlete-service/internal/domain/user"
	"athlete-service/internal/http/handler"
	custommw "athlete-service/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const maxRequestBodySize = "1M"

// ServerDependencies carries everything the HTTP layer needs. Wiring
// happens in app; the server only mounts routes and middleware.
type ServerDependencies struct {
	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	AthleteHandler *handler.AthleteHandler
	UserHandler    *handler.UserHandler
	APIKeyHandler  *handler.APIKeyHandler
	AuthMiddleware *auth.Middleware
}

type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

func NewServer(deps ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.Use(custommw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(maxRequestBodySize))
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.NewGlobalRateLimiter().Middleware())

	registerRoutes(e, deps)

	return &Server{echo: e, cfg: deps.Config}
}

func registerRoutes(e *echo.Echo, deps ServerDependencies) {
	mw := deps.AuthMiddleware
	strictLimiter := custommw.NewStrictRateLimiter().Middleware()

	// Mounted behind the auth gates so the bound principal, not the
	// client IP, keys the bucket.
	principalLimiter := custommw.NewPrincipalRateLimiter().Middleware()

	e.GET("/health", healthCheck)

	// Credential endpoints get the tighter limiter.
	authGroup := e.Group("/auth", strictLimiter)
	authGroup.POST("/register", deps.AuthHandler.Register)
	authGroup.POST("/login", deps.AuthHandler.Login)

	// Athlete listing is open; everything below it requires a token.
	e.GET("/athletes", deps.AthleteHandler.List)
	e.POST("/athletes", deps.AthleteHandler.Create, mw.RequireToken(), principalLimiter)

	// Per-record access is partitioned by record ID parity.
	record := e.Group("/athletes/:id", mw.RequireToken(), principalLimiter, mw.RequirePartition(auth.ParityPartition))
	record.GET("", deps.AthleteHandler.Get)
	record.PUT("", deps.AthleteHandler.Update)
	record.DELETE("", deps.AthleteHandler.Delete)

	// The public track authenticates with an API key instead of a token.
	e.GET("/public/athletes/:id", deps.AthleteHandler.Get, mw.RequireAPIKey(), principalLimiter)

	e.GET("/users/:id", deps.UserHandler.Get, mw.RequireToken(), principalLimiter, mw.RequireOwnerOrAdmin("id"))

	admin := e.Group("/admin", mw.RequireToken(), principalLimiter, mw.RequireRole(user.RoleAdmin))
	admin.POST("/api-keys", deps.APIKeyHandler.Create)
	admin.DELETE("/api-keys/:id", deps.APIKeyHandler.Deactivate)
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Start() error {
	return s.echo.Start(":" + s.cfg.Server.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
