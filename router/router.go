package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knowgrow/agency-backend/config"
	"github.com/knowgrow/agency-backend/handlers"
	"github.com/knowgrow/agency-backend/middleware"
	"github.com/knowgrow/agency-backend/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	ContactHandler *handlers.ContactHandler
	HealthHandler  *handlers.HealthHandler
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter services.RateLimiterInterface
	// MetricsHandler defaults to the Prometheus default gatherer.
	MetricsHandler http.Handler
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		deps.Logger.Warnw("Invalid trusted proxies, ignoring forwarded headers",
			"trusted_proxies", deps.Config.Server.TrustedProxies,
			"error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	// Swagger documentation (only in non-production)
	if !deps.Config.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		contactChain := []gin.HandlerFunc{}
		if deps.RateLimiter != nil {
			window := time.Duration(deps.Config.RateLimit.WindowSeconds) * time.Second
			contactChain = append(contactChain, middleware.ContactRateLimiter(
				deps.RateLimiter,
				deps.Config.RateLimit.ContactRequestsPerWindow,
				window,
			))
		}
		contactChain = append(contactChain, deps.ContactHandler.SubmitInquiry)
		api.POST("/contact", contactChain...)
	}

	return r
}
