package handlers

import (
	"taskboard/internal/apperr"
	"taskboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// fail is the single error-to-response translation point. Status codes come
// from the apperr taxonomy; underlying causes are logged but only included in
// the body when DEBUG_ERRORS is on.
func (h *Handler) fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status >= 500 {
		logger.Error("request failed", "path", c.FullPath(), "error", err)
	}

	body := gin.H{"error": apperr.Message(err)}
	if h.DebugErrors {
		body["details"] = err.Error()
	}
	c.JSON(status, body)
}
