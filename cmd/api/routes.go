package main

import (
	"github.com/andreigec/koppen-climate-lookup/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Climate endpoints
	app.router.GET("/climate/koppen", app.handleGetKoppenClass)
	app.router.GET("/climate/classes/:code", app.handleGetClass)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
