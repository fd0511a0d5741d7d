package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message       string `json:"message" example:"pong"`       // Response message
	DatasetPoints int    `json:"datasetPoints" example:"1070"` // Reference points loaded
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and the reference dataset is loaded
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:       "pong",
		DatasetPoints: app.climateService.DatasetSize(),
	})
}
