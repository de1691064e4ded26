package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vibrantyoga/api/internal/helpers"
	"github.com/vibrantyoga/api/internal/service"
)

// respondServiceError maps domain errors onto the HTTP taxonomy. Anything
// unrecognized is an internal error and its detail stays out of the response.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrUserNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, capitalize(err.Error())+".")
	case errors.Is(err, service.ErrUnknownTier),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidPricing),
		errors.Is(err, service.ErrInvalidDeliveryMode),
		errors.Is(err, service.ErrInvalidImage):
		helpers.RespondWithError(c, http.StatusBadRequest, capitalize(err.Error())+".")
	case errors.Is(err, service.ErrEmailTaken):
		helpers.RespondWithError(c, http.StatusConflict, "User already exists.")
	case errors.Is(err, service.ErrInvalidCredentials):
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
