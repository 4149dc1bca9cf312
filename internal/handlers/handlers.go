package handlers

import (
	"errors"
	"net/http"

	"github.com/adjei-dev/gatherly/internal/helpers"
	"github.com/adjei-dev/gatherly/internal/models"
	"github.com/gin-gonic/gin"
)

// currentUser pulls the claims the auth middleware stored, or writes the
// failure response and returns false.
func currentUser(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}

	return claims, true
}

// statusFromError maps the service failure classes onto HTTP statuses.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
