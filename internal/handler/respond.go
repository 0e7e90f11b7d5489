package handler

import (
	"errors"
	"net/http"

	"ai-clinic-backend/internal/service"
	"ai-clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// serviceError translates a service-layer error into the matching HTTP
// status with a {message} body. Unknown errors never leak details.
func serviceError(c *gin.Context, err error) {
	var provisioningErr *service.ProfileProvisioningError

	// A provisioning failure is checked first: its cause chain may reach a
	// sentinel (a rejected profile field unwraps to the validation error),
	// but once the compensating delete has run the whole registration is a
	// server-side failure, not a 4xx.
	switch {
	case errors.As(err, &provisioningErr):
		utils.ErrorResponse(c, http.StatusInternalServerError, provisioningErr.Error())
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrForbidden):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// identity reads the account identity the auth middleware injected
func identity(c *gin.Context) (uint, string) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	id, _ := userID.(uint)
	r, _ := role.(string)
	return id, r
}
