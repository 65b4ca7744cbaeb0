package handler

import (
	"errors"
	"net/http"

	"github.com/devranjit/salontraining-server-sub001/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError maps lifecycle errors to HTTP statuses
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrEntityGone):
		common.ErrorResponse(c, http.StatusNotFound, message, err)
	case errors.Is(err, common.ErrAlreadyResolved):
		common.ErrorResponse(c, http.StatusConflict, message, err)
	case errors.Is(err, common.ErrUnknownEntityType), errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, message, err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, message, err)
	}
}
