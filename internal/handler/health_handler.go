package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecognizerStatus reports whether the organization recognizer is loaded.
type RecognizerStatus interface {
	Status() string
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ner RecognizerStatus
}

// NewHealthHandler creates a new HealthHandler. A nil status means the
// recognizer is disabled.
func NewHealthHandler(ner RecognizerStatus) *HealthHandler {
	return &HealthHandler{ner: ner}
}

// Liveness handles GET /healthz
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The parser works without the recognizer,
// so its state is reported but never fails the probe.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Router /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := "disabled"
	if h.ner != nil {
		status = h.ner.Status()
	}
	c.JSON(http.StatusOK, ReadinessResponse{Status: "ok", NER: status})
}
