package app

import (
	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/http"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// RouterDeps are the services the router is built from. Everything except
// Optimizer may be nil.
type RouterDeps struct {
	Optimizer      service.Optimizer
	CostProfiles   service.CostProfilesService
	LoggingService service.LoggingService
	TokenService   service.TokenService
	Database       *DatabaseComponents
	Breakers       *circuitbreaker.Registry
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(deps RouterDeps, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler(deps.Breakers)
	if deps.Database != nil && deps.Database.DB != nil {
		healthHandler.RegisterChecker("mongodb", deps.Database.DB)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		MaxGenerateDays:   cfg.Optimizer.MaxHorizon,
		LoggingService:    deps.LoggingService,
		TokenService:      deps.TokenService,
		CostProfiles:      deps.CostProfiles,
	}

	return &RouterComponents{
		Handler:       http.NewHandler(deps.Optimizer),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
