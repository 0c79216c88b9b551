// Package main is the entry point for the inventory-optimizer API.
//
// @title           Inventory Optimizer API
// @version         1.0.0
// @description     Computes minimum-cost reorder plans for medical supplies.
//
//	Given a daily consumption forecast, the service finds how much to order each day so that
//	ordering, storage and shortage costs are minimised. Both a memoized top-down and a tabulated
//	bottom-up solver are available and can be cross-checked.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/inventory-optimizer
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" obtained from /api/auth/token.
//
// @tag.name        Optimizer
// @tag.description Reorder plan computation
//
// @tag.name        Consumption
// @tag.description Synthetic consumption data
//
// @tag.name        Cost Profile
// @tag.description Operator cost profile management
//
// @tag.name        Auth
// @tag.description Token exchange
//
// @tag.name        Logs
// @tag.description Request and audit trail
//
// @tag.name        Health
// @tag.description Liveness and readiness probes
package main

import (
	_ "github.com/guttosm/inventory-optimizer/docs" // swagger docs

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}

	if err := app.Serve(config.Load()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
