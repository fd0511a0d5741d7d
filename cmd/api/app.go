package main

import (
	"log/slog"

	"github.com/andreigec/koppen-climate-lookup/internal/climate"
	"github.com/andreigec/koppen-climate-lookup/internal/config"

	"github.com/gin-gonic/gin"

	_ "github.com/andreigec/koppen-climate-lookup/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	climateService climate.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Initialize climate service, this loads the reference dataset
	climateSvc, err := climate.NewClimateService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewAppWithService(cfg, logger, climateSvc), nil
}

// NewAppWithService creates an application around an existing climate service
func NewAppWithService(cfg *config.Config, logger *slog.Logger, climateSvc climate.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		climateService: climateSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized", "dataset_points", climateSvc.DatasetSize())

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
