package mocks

import (
	"github.com/guttosm/inventory-optimizer/internal/service"
)

var (
	_ service.Optimizer           = (*MockOptimizer)(nil)
	_ service.CostProfilesService = (*MockCostProfilesService)(nil)
	_ service.TokenService        = (*MockTokenService)(nil)
	_ service.LoggingService      = (*MockLoggingService)(nil)
)
