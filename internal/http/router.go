// Package http exposes the inventory optimizer over a gin REST API.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/metrics"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableAuth        bool
	APIKeys           map[string]string
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	// MaxGenerateDays caps synthetic consumption requests; zero means unlimited.
	MaxGenerateDays int
	LoggingService  service.LoggingService
	CostProfiles    service.CostProfilesService
	TokenService    service.TokenService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:       100,
		RateWindow:      time.Minute,
		RequestTimeout:  30 * time.Second,
		MaxGenerateDays: 365,
	}
}

// authEnabled reports whether API routes require credentials.
func (cfg *RouterConfig) authEnabled() bool {
	return cfg.EnableAuth && len(cfg.APIKeys) > 0
}

// NewRouter creates and configures the Gin router for the inventory optimizer.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if cfg.authEnabled() && cfg.TokenService != nil {
		NewAuthRoutes(cfg.TokenService, cfg.APIKeys).RegisterRoutes(api)
	}

	protected := protectedGroup(api, &cfg)
	for _, group := range routeGroups(handler, &cfg) {
		group.RegisterRoutes(protected)
	}

	return router
}

func routeGroups(handler *Handler, cfg *RouterConfig) []RouteGroup {
	groups := []RouteGroup{NewOptimizerRoutes(handler, cfg.MaxGenerateDays)}
	if cfg.CostProfiles != nil {
		groups = append(groups, NewCostProfileRoutes(cfg.CostProfiles))
	}
	if cfg.LoggingService != nil {
		groups = append(groups, NewLogsRoutes(cfg.LoggingService))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.LoggingService != nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.LoggingServiceKey, cfg.LoggingService)
			c.Next()
		})
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))
}

// protectedGroup returns the group business routes hang off. With auth
// enabled it requires an API key or, when tokens are configured, a bearer
// token, and rate limits per client. Idempotency runs last so replays are
// scoped to the authenticated client.
func protectedGroup(api *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := api.Group("")
	if cfg.authEnabled() {
		useAuth(protected, cfg)
	}
	if cfg.EnableIdempotency {
		protected.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
	return protected
}

func useAuth(protected *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.TokenService != nil {
		protected.Use(middleware.APIKeyOrJWT(cfg.APIKeys, cfg.TokenService))
	} else {
		protected.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.RateLimit > 0 {
		clientLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(clientLimiter.ClientRateLimit())
	}
}
