package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/appforge/appforge-api/docs"
	"github.com/appforge/appforge-api/internal/api/handler"
	"github.com/appforge/appforge-api/internal/api/middleware"
	"github.com/appforge/appforge-api/internal/core/service"
	"github.com/appforge/appforge-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/appforge/appforge-api/internal/infrastructure/db/redis"
	"github.com/appforge/appforge-api/internal/infrastructure/llm"
	"github.com/appforge/appforge-api/internal/pkg/config"
	"github.com/appforge/appforge-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each layer gets a component-tagged child of the singleton logger.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Component("http"))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("appforge"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	projectRepo := postgres.NewProjectRepository(db)
	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimit.PerMinute, time.Minute)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 7*24*time.Hour)
	projectService := service.NewProjectService(projectRepo, logger.Component("projects"))
	generator := llm.NewClient(llm.Config{
		BaseURL:  cfg.Cerebras.BaseURL,
		APIKey:   cfg.Cerebras.APIKey,
		Model:    cfg.Cerebras.Model,
		Timeout:  cfg.Cerebras.Timeout,
		Fallback: cfg.Cerebras.Fallback,
	}, logger.Component("llm"))
	generationService := service.NewGenerationService(generator, projectRepo, limiter, logger.Component("generation"))

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	projectHandler := handler.NewProjectHandler(projectService)
	generateHandler := handler.NewGenerateHandler(generationService)
	previewHandler := handler.NewPreviewHandler(projectService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Project routes (auth required) ---
	projects := e.Group("/projects", authMiddleware)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.GET("/:id/preview", previewHandler.Get)

	// --- Generation (auth required) ---
	e.POST("/generate", generateHandler.Generate, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
