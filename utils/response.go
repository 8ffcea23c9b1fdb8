package utils

import (
	"errors"
	"net/http"

	"salonledger-backend/apierror"

	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// AbortWithError renders an *apierror.APIError with its own status;
// anything else becomes an opaque 500.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, apiErr)
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.ErrInternal)
}
