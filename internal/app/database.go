package app

import (
	"context"
	"time"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/metrics"
	"github.com/guttosm/inventory-optimizer/internal/repository"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	costProfilesBreaker = "mongodb_cost_profiles"
	logsBreaker         = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB               *repository.MongoDB
	CostProfilesRepo repository.CostProfilesRepositoryInterface
	LoggingService   service.LoggingService
}

// InitializeDatabase connects to MongoDB and builds breaker-guarded
// repositories. The breakers are added to registry. It returns nil when the
// database is disabled or unreachable; the service then runs on configured
// defaults only.
func InitializeDatabase(cfg config.DatabaseConfig, registry *circuitbreaker.Registry) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	profilesCB := newBreaker(cfg, costProfilesBreaker)
	logsCB := newBreaker(cfg, logsBreaker)
	if registry != nil {
		registry.Register(profilesCB)
		registry.Register(logsCB)
	}

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	profilesRepo := repository.NewCostProfilesRepositoryWithCircuitBreaker(repository.NewCostProfilesRepository(db), profilesCB)

	return &DatabaseComponents{
		DB:               db,
		CostProfilesRepo: profilesRepo,
		LoggingService:   service.NewLoggingService(logsRepo),
	}
}

// newBreaker creates a breaker that publishes its state to Prometheus.
func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}
