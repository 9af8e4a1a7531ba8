// Package v1 provides HTTP API version 1.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	"metaforms/internal/infrastructure/http/v1/handlers"
	"metaforms/internal/infrastructure/http/v1/middleware"
	"metaforms/internal/infrastructure/metrics"
	"metaforms/internal/metadata"
	"metaforms/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Registry is the loaded form metadata registry
	Registry *metadata.Registry

	// Logger for request logging
	Logger *logger.Logger

	// Metrics collector; /metrics is not served when nil
	Metrics *metrics.Collector

	// Version reported by /health/info
	Version string

	// Gzip enables response compression
	Gzip bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	registerHealthRoutes(router, cfg)

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	registerMetaRoutes(v1, cfg)

	return router
}

// NewHandler returns the router wrapped with transport-level concerns.
func NewHandler(cfg RouterConfig) http.Handler {
	router := NewRouter(cfg)
	if !cfg.Gzip {
		return router
	}
	return gzhttp.GzipHandler(router)
}

// registerHealthRoutes registers liveness/readiness endpoints.
func registerHealthRoutes(router *gin.Engine, cfg RouterConfig) {
	var stats handlers.RegistryStats
	if cfg.Registry != nil {
		stats = cfg.Registry
	}
	healthHandler := handlers.NewHealthHandler(stats, cfg.Version)

	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}
}

// registerMetaRoutes registers form metadata endpoints.
func registerMetaRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.Registry == nil {
		return
	}

	var lookups handlers.LookupRecorder
	if cfg.Metrics != nil {
		lookups = cfg.Metrics
	}
	handler := handlers.NewMetadataHandler(handlers.NewBaseHandler(), cfg.Registry, lookups)

	forms := rg.Group("/forms")
	{
		forms.GET("", handler.ListForms)
		forms.GET("/:id", handler.GetForm)
	}

	modules := rg.Group("/modules")
	{
		modules.GET("", handler.ListModules)
		modules.GET("/:id", handler.GetModule)
	}
}
