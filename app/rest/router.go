package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-service/app/port"
	"content-service/app/rest/handlers"
	custommw "content-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger        *slog.Logger
	PostUsecase   port.PostUsecase
	DraftUsecase  port.DraftUsecase
	DBChecker     handlers.DatabaseChecker
	EnableDebug   bool
	EnableMetrics bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	postHandler := handlers.NewPostHandler(config.PostUsecase, config.Logger)
	draftHandler := handlers.NewDraftHandler(config.DraftUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DBChecker, config.Logger)

	// Global middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(custommw.RequestIDMiddleware())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	if config.EnableMetrics {
		e.Use(custommw.MetricsMiddleware())
	}

	// Health endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/health/ready", healthHandler.ReadinessCheck)
	e.GET("/health/live", healthHandler.LivenessCheck)

	// Diagnostics (if enabled)
	if config.EnableDebug {
		debugHandler := handlers.NewDebugHandler(config.DBChecker, config.Logger)
		e.GET("/debug/runtime", debugHandler.RuntimeDiagnostics)
	}

	// Content endpoints
	api := e.Group("/api")

	posts := api.Group("/posts")
	posts.GET("", postHandler.ListPosts)
	posts.POST("", postHandler.CreatePost)
	posts.PUT("/:slug", postHandler.UpdatePost)
	posts.DELETE("/:slug", postHandler.DeletePost)

	drafts := api.Group("/drafts")
	drafts.GET("", draftHandler.ListDrafts)
	drafts.POST("", draftHandler.CreateDraft)
	drafts.PUT("/:slug", draftHandler.UpdateDraft)
	drafts.DELETE("/:slug", draftHandler.DeleteDraft)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
