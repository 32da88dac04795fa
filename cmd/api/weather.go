package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// GetWeatherInput defines the query parameters for the weather endpoint
type GetWeatherInput struct {
	Lat          *float64 `form:"lat" binding:"required,latitude"`
	Lon          *float64 `form:"lon" binding:"required,longitude"`
	LocationName string   `form:"locationName"`
}

// WeatherResponse wraps a forecast
type WeatherResponse struct {
	Data types.Weather `json:"data"`
}

// handleGetWeather godoc
// @Summary Get weather
// @Description Current conditions plus up to 48 hourly and 7 daily entries. locationName defaults to the rounded coordinates.
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(59.9139)
// @Param lon query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(10.7522)
// @Param locationName query string false "Display name echoed in the response" example(Oslo, Norway)
// @Success 200 {object} WeatherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		abortWithError(c, apierror.CodeValidation, validationMessage(err, msgInvalidCoords))
		return
	}

	coords := types.NewCoords(*input.Lat, *input.Lon)
	locationName := input.LocationName
	if locationName == "" {
		locationName = coords.Label()
	}

	weather, err := app.weatherService.GetCurrentWeather(c.Request.Context(), coords.Latitude, coords.Longitude, locationName)
	if err != nil {
		respondAdapterError(c, err, map[apierror.Code]string{
			apierror.CodeNotFound: "No weather data available for this location",
		}, "Failed to fetch weather data from provider")
		return
	}

	respondData(c, weather, cacheWeather)
}
