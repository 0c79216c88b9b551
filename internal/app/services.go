package app

import (
	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer *service.OptimizerService
	// Cache is set when the sharded plan cache is in use.
	Cache *service.ShardedCache
}

// InitializeServices builds the optimizer service. profiles may be nil.
func InitializeServices(cfg config.Config, profiles service.ProfileSource) *ServiceComponents {
	opts := []service.OptimizerOption{
		service.WithDefaults(service.DefaultsFromConfig(cfg.Optimizer)),
	}

	components := &ServiceComponents{}
	switch {
	case cfg.Cache.Size <= 0:
		log.Info().Msg("Plan cache disabled")
	case cfg.Cache.Shards > 1:
		components.Cache = service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
		opts = append(opts, service.WithCacheInterface(components.Cache))
	default:
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	if profiles != nil {
		opts = append(opts, service.WithProfileSource(profiles))
	}

	components.Optimizer = service.NewOptimizerService(opts...)
	return components
}

// Close stops the plan cache's cleanup goroutines.
func (s *ServiceComponents) Close() {
	s.Optimizer.Close()
}
