package helper

import (
	"errors"
	"net/http"

	"paper-catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPHelper renders the fixed response envelopes of the catalog API.
type HTTPHelper struct{}

func NewHTTPHelper() *HTTPHelper {
	return &HTTPHelper{}
}

// SendValidationMessages reports body validation failures: every
// collected message, plural key.
func (h *HTTPHelper) SendValidationMessages(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":    "Validation Error",
		"messages": messages,
	})
}

// SendValidationMessage reports query/path validation failures:
// a single message, singular key.
func (h *HTTPHelper) SendValidationMessage(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation Error",
		"message": message,
	})
}

// SendServiceError maps a service error to its envelope: not-found,
// constraint violation, or the generic 500.
func (h *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrPaperNotFound), errors.Is(err, models.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrSoleAuthor):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Constraint Error",
			"message": err.Error(),
		})
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}
