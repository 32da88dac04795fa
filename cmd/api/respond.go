package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fernandolucchesi/weatherly/internal/apierror"
)

// Client-facing messages
const (
	msgRateLimited      = "Too many requests. Please try again later."
	msgUnexpected       = "An unexpected error occurred"
	msgInvalidCoords    = "Invalid lat/lon parameters"
	msgInvalidQuery     = "Invalid query parameter"
	msgInvalidLatitude  = "Latitude must be between -90 and 90"
	msgInvalidLongitude = "Longitude must be between -180 and 180"
	msgQueryTooShort    = "Query must be at least 2 characters"
)

// Cache-Control values, sized to how fast each fact changes
const (
	cacheWeather    = "public, s-maxage=600, stale-while-revalidate=300"
	cachePlaceName  = "public, s-maxage=3600, stale-while-revalidate=300"
	cacheGeoDefault = "public, s-maxage=3600"
	cacheGeoApprox  = "public, s-maxage=300, stale-while-revalidate=60"
)

// ErrorBody carries a taxonomy code and a human-readable message
type ErrorBody struct {
	Code    apierror.Code `json:"code" example:"VALIDATION"`
	Message string        `json:"message" example:"Latitude must be between -90 and 90"`
}

// ErrorResponse is the envelope for every failed request
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type dataResponse struct {
	Data any `json:"data"`
}

func respondData(c *gin.Context, data any, cacheControl string) {
	if cacheControl != "" {
		c.Header("Cache-Control", cacheControl)
	}
	c.JSON(http.StatusOK, dataResponse{Data: data})
}

func abortWithError(c *gin.Context, code apierror.Code, message string) {
	c.AbortWithStatusJSON(apierror.HTTPStatus(code), ErrorResponse{
		Error: ErrorBody{Code: code, Message: message},
	})
}

// respondAdapterError classifies err and answers with the message chosen
// for its code. Codes without a message get the generic provider message.
func respondAdapterError(c *gin.Context, err error, messages map[apierror.Code]string, providerMessage string) {
	_ = c.Error(err)

	code := apierror.CodeOf(err)
	message, ok := messages[code]
	if !ok {
		code = apierror.CodeProviderError
		message = providerMessage
	}
	abortWithError(c, code, message)
}

// fieldMessages maps struct field names of bound parameters to the message
// shown when they fail validation.
var fieldMessages = map[string]string{
	"Lat":   msgInvalidLatitude,
	"Lon":   msgInvalidLongitude,
	"Query": msgQueryTooShort,
}

// validationMessage describes the first failed field. Errors that are not
// validator errors, e.g. a number that does not parse, get fallback.
func validationMessage(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := fieldMessages[verrs[0].Field()]; ok {
			return msg
		}
	}
	return fallback
}
