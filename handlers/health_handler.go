package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/services"
	"github.com/ideamk/leadmail/types"
)

// HealthHandler exposes mailer readiness to orchestrators.
type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// LivenessCheck answers 200 while the process serves requests, whatever the
// mailer state.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck answers 503 while the mailer lacks credentials.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.healthService.CheckHealth()

	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// DetailedHealth always answers 200 with the mailer component and uptime.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	health := h.healthService.CheckHealth()
	c.JSON(http.StatusOK, health)
}
