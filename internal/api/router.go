package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/medscanlabs/oncoserve/internal/config"
	apperrors "github.com/medscanlabs/oncoserve/internal/errors"
	"github.com/medscanlabs/oncoserve/internal/monitoring"
	"github.com/medscanlabs/oncoserve/internal/security"
)

// Router assembles the middleware chain and routes for the service
func Router(cfg *config.Config, h *Handlers, metrics *monitoring.Metrics, logger *monitoring.Logger) *gin.Engine {
	r := gin.New()

	if len(cfg.Server.TrustedProxies) > 0 {
		_ = r.SetTrustedProxies(cfg.Server.TrustedProxies)
	}

	// Monitoring first so every request is counted, then error handling,
	// then security headers and CORS, and the response cache last so it sits
	// directly in front of the handlers.
	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(metrics, logger))
	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())
	r.Use(security.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if h.cache != nil {
		r.Use(h.cache.Middleware(metrics, logger))
	}

	r.GET("/", h.Health)
	r.GET("/health", h.Health)
	r.POST("/predict", h.Predict)
	r.GET("/model-info", h.ModelInfo)
	r.POST("/model/reload", h.Reload)

	r.GET("/metrics", h.Metrics)
	r.GET("/cache/stats", h.CacheStats)

	// Swagger documentation routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(h.NoRoute)

	return r
}
