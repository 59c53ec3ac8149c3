package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vkosyk/course-catalog-api/pkg/apperrors"
	"github.com/vkosyk/course-catalog-api/pkg/response"
)

// writeServiceError maps the error taxonomy onto HTTP statuses:
// validation 400 (full field map), authentication 401, authorization
// 403, not found 404, store write/corruption 500, everything else 500.
func writeServiceError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, apperrors.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "insufficient permissions", nil)
	case errors.Is(err, apperrors.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, apperrors.ErrCorrupted):
		response.Error[any](c, http.StatusInternalServerError, "data store corrupted", nil)
	case errors.Is(err, apperrors.ErrStoreWrite):
		response.Error[any](c, http.StatusInternalServerError, "data store write failed", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
