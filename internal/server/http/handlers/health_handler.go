package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.checker.HealthCheck(c.Request.Context()); err != nil {
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
