package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
)

// CoordsInput defines required coordinate query parameters
type CoordsInput struct {
	Lat *float64 `form:"lat" binding:"required,latitude"`
	Lon *float64 `form:"lon" binding:"required,longitude"`
}

// ReverseGeocodeData holds the place name, null when none is known
type ReverseGeocodeData struct {
	LocationName *string `json:"locationName"`
}

// ReverseGeocodeResponse wraps a reverse geocoding result
type ReverseGeocodeResponse struct {
	Data ReverseGeocodeData `json:"data"`
}

// handleReverseGeocode godoc
// @Summary Name a location
// @Description Build a "place, region, country" label for coordinates. locationName is null when no name is known.
// @Tags geocoding
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(59.9139)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(10.7522)
// @Success 200 {object} ReverseGeocodeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /reverse-geocode [get]
func (app *App) handleReverseGeocode(c *gin.Context) {
	var input CoordsInput
	if err := c.ShouldBindQuery(&input); err != nil {
		abortWithError(c, apierror.CodeValidation, validationMessage(err, msgInvalidCoords))
		return
	}

	name, err := app.geocodingService.ReverseGeocode(c.Request.Context(), *input.Lat, *input.Lon)
	if err != nil {
		respondAdapterError(c, err, map[apierror.Code]string{
			apierror.CodeRateLimited: msgRateLimited,
		}, "Failed to reverse geocode location")
		return
	}

	if name == "" {
		respondData(c, ReverseGeocodeData{}, "")
		return
	}

	respondData(c, ReverseGeocodeData{LocationName: &name}, cachePlaceName)
}
