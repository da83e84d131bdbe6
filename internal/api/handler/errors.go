package handler

import (
	"errors"
	"net/http"

	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/moderation"
	"manmitra/backend/internal/pipeline"
	"manmitra/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Everything
// unknown becomes a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pipeline.ErrEmptyBody),
		errors.Is(err, pipeline.ErrInvalidSource),
		errors.Is(err, escalation.ErrEmptyNotes),
		errors.Is(err, escalation.ErrInvalidStatus),
		errors.Is(err, moderation.ErrInvalidFilter),
		errors.Is(err, moderation.ErrUnknownAction),
		errors.Is(err, moderation.ErrSeverityTooLow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pipeline.ErrAuthorMuted),
		errors.Is(err, escalation.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, escalation.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
