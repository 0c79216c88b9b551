package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/service"
)

// RouteGroup is a set of API routes registered on a router group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// OptimizerRoutes registers the optimization and consumption endpoints.
type OptimizerRoutes struct {
	handler   *Handler
	generator *GeneratorHandler
}

// NewOptimizerRoutes creates the optimizer route group.
func NewOptimizerRoutes(handler *Handler, maxGenerateDays int) *OptimizerRoutes {
	return &OptimizerRoutes{
		handler:   handler,
		generator: NewGeneratorHandler(maxGenerateDays),
	}
}

// RegisterRoutes registers POST /optimize and POST /consumption/generate.
func (r *OptimizerRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.handler != nil {
		rg.POST("/optimize", r.handler.Optimize)
	}
	rg.POST("/consumption/generate", r.generator.Generate)
}

// CostProfileRoutes registers the cost profile endpoints.
type CostProfileRoutes struct {
	handler *CostProfileHandler
}

// NewCostProfileRoutes creates the cost profile route group.
func NewCostProfileRoutes(profiles service.CostProfilesService) *CostProfileRoutes {
	return &CostProfileRoutes{handler: NewCostProfileHandler(profiles)}
}

// RegisterRoutes registers GET/PUT /cost-profile and GET /cost-profile/history.
func (r *CostProfileRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cost-profile", r.handler.GetActive)
	rg.PUT("/cost-profile", r.handler.Update)
	rg.GET("/cost-profile/history", r.handler.History)
}

// AuthRoutes registers the token exchange endpoint.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates the auth route group.
func NewAuthRoutes(tokens service.TokenService, apiKeys map[string]string) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(tokens, apiKeys)}
}

// RegisterRoutes registers POST /auth/token.
func (r *AuthRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token", r.handler.IssueToken)
}

// LogsRoutes registers the log lookup endpoint.
type LogsRoutes struct {
	handler *LogsHandler
}

// NewLogsRoutes creates the logs route group.
func NewLogsRoutes(logs service.LoggingService) *LogsRoutes {
	return &LogsRoutes{handler: NewLogsHandler(logs)}
}

// RegisterRoutes registers GET /logs.
func (r *LogsRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", r.handler.List)
}

var (
	_ RouteGroup = (*OptimizerRoutes)(nil)
	_ RouteGroup = (*LogsRoutes)(nil)
	_ RouteGroup = (*CostProfileRoutes)(nil)
	_ RouteGroup = (*AuthRoutes)(nil)
)
