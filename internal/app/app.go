// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/http"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the router plus everything that must be
// released on shutdown.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
	Breakers *circuitbreaker.Registry
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	breakers := circuitbreaker.NewRegistry()
	db := InitializeDatabase(cfg.Database, breakers)

	// the profile service invalidates plans of an optimizer built after it
	var services *ServiceComponents
	var profiles service.CostProfilesService
	var profileSource service.ProfileSource
	if db != nil {
		impl := service.NewCostProfilesService(db.CostProfilesRepo, func() {
			if services != nil {
				services.Optimizer.InvalidateCache()
			}
		})
		profiles, profileSource = impl, impl
	}
	services = InitializeServices(cfg, profileSource)

	var loggingService service.LoggingService
	if db != nil {
		loggingService = db.LoggingService
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(RouterDeps{
		Optimizer:      services.Optimizer,
		CostProfiles:   profiles,
		LoggingService: loggingService,
		TokenService:   InitializeAuth(cfg.Auth),
		Database:       db,
		Breakers:       breakers,
	}, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		Database: db,
		Breakers: breakers,
	}
}

// Close flushes pending logs, stops the plan cache and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) {
	middleware.StopAsyncLogger()

	if a.Services != nil {
		a.Services.Close()
	}
	if a.Database != nil && a.Database.DB != nil {
		if err := a.Database.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
}
