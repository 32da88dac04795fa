package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/types"
)

// SearchCitiesInput defines the query parameters for the city search endpoint
type SearchCitiesInput struct {
	Query string `form:"query" binding:"required,min=2"`
}

// CitiesResponse wraps city search results
type CitiesResponse struct {
	Data []types.City `json:"data"`
}

// handleSearchCities godoc
// @Summary Search cities
// @Description Find cities by name. An unknown name yields an empty list.
// @Tags geocoding
// @Produce json
// @Param query query string true "City name, at least 2 characters" minlength(2) example(London)
// @Success 200 {object} CitiesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /cities [get]
func (app *App) handleSearchCities(c *gin.Context) {
	var input SearchCitiesInput
	if err := c.ShouldBindQuery(&input); err != nil {
		abortWithError(c, apierror.CodeValidation, validationMessage(err, msgInvalidQuery))
		return
	}

	cities, err := app.geocodingService.SearchCities(c.Request.Context(), input.Query)
	if err != nil {
		respondAdapterError(c, err, map[apierror.Code]string{
			apierror.CodeRateLimited: msgRateLimited,
		}, "Failed to fetch city data from provider")
		return
	}

	respondData(c, cities, "")
}
