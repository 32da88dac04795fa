package main

import (
	"github.com/gin-gonic/gin"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
	"github.com/fernandolucchesi/weatherly/internal/outfit"
)

// OutfitRequest is the body of the outfit endpoint
type OutfitRequest struct {
	Weather *outfit.Input `json:"weather" binding:"required"`
}

// OutfitResponse wraps outfit advice
type OutfitResponse struct {
	Data outfit.Advice `json:"data"`
}

// handleOutfit godoc
// @Summary Suggest an outfit
// @Description Generative advice when available, otherwise the rule-based recommendation. Both have the same shape.
// @Tags outfit
// @Accept json
// @Produce json
// @Param request body OutfitRequest true "Current weather"
// @Success 200 {object} OutfitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /outfit [post]
func (app *App) handleOutfit(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			app.logger.Error("outfit advice panicked", "panic", r)
			abortWithError(c, apierror.CodeProviderError, "Failed to generate outfit recommendation")
		}
	}()

	var req OutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, apierror.CodeValidation, "Invalid weather payload")
		return
	}

	advice := app.outfitAdvisor.Advise(c.Request.Context(), *req.Weather)
	respondData(c, advice, "")
}
