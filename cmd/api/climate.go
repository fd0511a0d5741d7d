package main

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/andreigec/koppen-climate-lookup/internal/climate"
	"github.com/andreigec/koppen-climate-lookup/internal/koppen"

	"github.com/gin-gonic/gin"
)

// GetKoppenClassInput defines the query parameters for the koppen endpoint.
// Coordinates are pointers so that 0 is accepted as a value.
type GetKoppenClassInput struct {
	Latitude    *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude   *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	MaxDistance *float64 `form:"maxDistance"`                  // Search radius in km
}

// handleGetKoppenClass godoc
// @Summary Get the Köppen climate class of a coordinate
// @Description Find the nearest reference point within maxDistance kilometers and return its Köppen classification
// @Tags climate
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(51.5074)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-0.1278)
// @Param maxDistance query number false "Search radius in kilometers" default(100)
// @Success 200 {object} climate.Classification
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /climate/koppen [get]
func (app *App) handleGetKoppenClass(c *gin.Context) {
	var input GetKoppenClassInput

	// the form binder decodes "latitude=" as 0
	for _, key := range []string{"latitude", "longitude"} {
		if strings.TrimSpace(c.Query(key)) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": key + " is required"})
			return
		}
	}

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// JSON cannot encode an infinite radius back to the caller
	if input.MaxDistance != nil && math.IsInf(*input.MaxDistance, 1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maxDistance must be a finite number"})
		return
	}

	// Delegate to business layer
	classification, err := app.climateService.Classify(*input.Latitude, *input.Longitude, input.MaxDistance)
	if err != nil {
		// Validation errors carry the exact message of the violated constraint
		if errors.Is(err, koppen.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, climate.ErrNoClassification) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to classify coordinates",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to classify coordinates"})
		return
	}

	c.JSON(http.StatusOK, classification)
}

// handleGetClass godoc
// @Summary Describe a Köppen climate class
// @Description Return the climate group and description of a Köppen-Geiger class code
// @Tags climate
// @Produce json
// @Param code path string true "Köppen class code" example(Cfb)
// @Success 200 {object} koppen.ClassInfo
// @Failure 404 {object} map[string]string
// @Router /climate/classes/{code} [get]
func (app *App) handleGetClass(c *gin.Context) {
	code := c.Param("code")

	info, ok := koppen.Describe(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown koppen class: " + code})
		return
	}

	c.JSON(http.StatusOK, info)
}
