package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"content-service/app/config"
	"content-service/app/driver/postgres"
	"content-service/app/port"
	"content-service/app/rest"
	"content-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Connector *postgres.Connector

	// Usecases
	PostUsecase  port.PostUsecase
	DraftUsecase port.DraftUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize the connector. Connections are opened per request, so no
	// pool is created here and nothing needs closing on shutdown.
	container.Connector = postgres.NewConnector(cfg, logger)

	// Startup connectivity probe. The database may come up after the
	// service, so a failure is logged but does not abort startup.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := container.Connector.Verify(ctx); err != nil {
		logger.Warn("database not reachable at startup", "error", err)
	}

	// Initialize repositories
	postRepository := postgres.NewPostRepository(container.Connector, logger)
	draftRepository := postgres.NewDraftRepository(container.Connector, logger)

	// Initialize usecases
	container.PostUsecase = usecase.NewPostUsecase(postRepository, logger)
	container.DraftUsecase = usecase.NewDraftUsecase(draftRepository, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:        c.Logger,
		PostUsecase:   c.PostUsecase,
		DraftUsecase:  c.DraftUsecase,
		DBChecker:     c.Connector,
		EnableDebug:   c.Config.LogLevel == "debug",
		EnableMetrics: c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close releases container resources. Connections are scoped to requests,
// so there is nothing long-lived to tear down.
func (c *Container) Close() error {
	c.Logger.Info("Container closed successfully")
	return nil
}
