package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/docs"
	"github.com/ideamk/leadmail/handlers"
	"github.com/ideamk/leadmail/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config        *config.Config
	LeadHandler   *handlers.LeadHandler
	HealthHandler *handlers.HealthHandler
	// Gatherer backs /metrics; the default registry when nil.
	Gatherer prometheus.Gatherer
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Methods without a route on a known path answer with the JSON 405.
	r.HandleMethodNotAllowed = true

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.SecurityHeadersMiddleware(&deps.Config.Server))

	r.NoMethod(middleware.MethodNotAllowed)

	// Lead intake; the handler itself answers OPTIONS and rejects other methods.
	r.Any("/", deps.LeadHandler.HandleLead)
	r.Any("/api/leads", deps.LeadHandler.HandleLead)

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation
	if deps.Config.Server.Version != "" {
		docs.SwaggerInfo.Version = deps.Config.Server.Version
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
