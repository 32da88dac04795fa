package main

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/location"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// GeoInput defines the optional coordinates a client already knows
type GeoInput struct {
	Lat *float64 `form:"lat" binding:"omitempty,latitude"`
	Lon *float64 `form:"lon" binding:"omitempty,longitude"`
}

// GeoResponse wraps an approximate location
type GeoResponse struct {
	Data location.ApproxLocation `json:"data"`
}

// handleGeo godoc
// @Summary Approximate client location
// @Description Echo explicit coordinates, else locate the client IP (X-Forwarded-For, then X-Real-IP), else return the default location. (0,0) is never accepted.
// @Tags location
// @Produce json
// @Param lat query number false "Latitude in decimal degrees" minimum(-90) maximum(90)
// @Param lon query number false "Longitude in decimal degrees" minimum(-180) maximum(180)
// @Param X-Forwarded-For header string false "Client IP chain, first entry is used"
// @Param X-Real-IP header string false "Client IP"
// @Success 200 {object} GeoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /geo [get]
func (app *App) handleGeo(c *gin.Context) {
	var input GeoInput
	if err := c.ShouldBindQuery(&input); err != nil {
		abortWithError(c, apierror.CodeValidation, validationMessage(err, msgInvalidCoords))
		return
	}

	var explicit *types.Coords
	if input.Lat != nil && input.Lon != nil {
		coords := types.NewCoords(*input.Lat, *input.Lon)
		explicit = &coords
	}

	approx := app.locationService.Resolve(c.Request.Context(), explicit, clientIP(c))

	cacheControl := cacheGeoApprox
	if approx.Accuracy == location.AccuracyDefault {
		cacheControl = cacheGeoDefault
	}
	respondData(c, approx, cacheControl)
}

// clientIP reads the first X-Forwarded-For entry, then X-Real-IP. The peer
// address is not consulted.
func clientIP(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	return strings.TrimSpace(c.GetHeader("X-Real-IP"))
}
