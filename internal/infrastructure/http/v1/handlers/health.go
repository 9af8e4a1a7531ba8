package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metaforms/internal/core/apperror"
	"metaforms/internal/metadata"
)

// RegistryStats is what the health endpoints need to know about the registry.
type RegistryStats interface {
	Len() int
	Modules() []metadata.Module
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	*BaseHandler
	registry RegistryStats
	version  string
}

// NewHealthHandler creates a new health handler. registry may be nil while loading.
func NewHealthHandler(registry RegistryStats, version string) *HealthHandler {
	return &HealthHandler{BaseHandler: NewBaseHandler(), registry: registry, version: version}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.registry == nil || h.registry.Len() == 0 {
		h.Error(c, apperror.NewUnavailable("form registry not loaded").
			WithDetail("checks", map[string]string{"registry": "empty"}))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"registry": "loaded",
		},
		"registry": h.registrySize(),
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	info := gin.H{
		"app":     "metaforms",
		"version": h.version,
	}
	if h.registry != nil {
		info["registry"] = h.registrySize()
	}
	c.JSON(http.StatusOK, info)
}

func (h *HealthHandler) registrySize() map[string]int {
	return map[string]int{
		"forms":   h.registry.Len(),
		"modules": len(h.registry.Modules()),
	}
}
