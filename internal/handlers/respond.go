package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/apperrors"
)

var statusByType = map[apperrors.ErrorType]int{
	apperrors.ErrTypeNotFound:     http.StatusNotFound,
	apperrors.ErrTypeInvalidInput: http.StatusUnprocessableEntity,
	apperrors.ErrTypeUnauthorized: http.StatusUnauthorized,
	apperrors.ErrTypeForbidden:    http.StatusForbidden,
	apperrors.ErrTypeInternal:     http.StatusInternalServerError,
}

// respondError maps a domain error to its HTTP status. Internal details never
// reach the caller; services have already logged them with context.
func respondError(c *gin.Context, err error) {
	status, ok := statusByType[apperrors.TypeOf(err)]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": apperrors.MessageOf(err)})
}
