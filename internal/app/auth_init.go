package app

import (
	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// insecureJWTSecret is the placeholder secret shipped in the default config.
const insecureJWTSecret = "your-secret-key-change-in-production"

// InitializeAuth returns the token service, or nil when authentication is
// disabled or no API keys are configured.
func InitializeAuth(cfg config.AuthConfig) service.TokenService {
	if !cfg.Enabled {
		return nil
	}
	if len(cfg.APIKeys) == 0 {
		log.Warn().Msg("AUTH_ENABLED is set but API_KEYS is empty - authentication disabled")
		return nil
	}
	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == insecureJWTSecret {
		log.Warn().Msg("JWT_SECRET_KEY is unset or the default placeholder - run scripts/generate_keys.go")
	}

	log.Info().Int("clients", len(cfg.APIKeys)).Msg("Authentication enabled")
	return service.NewTokenService(service.NewTokenConfigFromAuthConfig(cfg))
}
