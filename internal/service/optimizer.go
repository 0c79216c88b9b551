package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/metrics"
	"github.com/guttosm/inventory-optimizer/internal/optimizer"
	"github.com/guttosm/inventory-optimizer/internal/repository"
	"github.com/guttosm/inventory-optimizer/internal/service/cache"
)

// ErrHorizonTooLong is returned when a request covers more days than the configured maximum.
var ErrHorizonTooLong = errors.New("planning horizon exceeds the configured maximum")

// Optimizer produces optimal reorder plans.
type Optimizer interface {
	Optimize(ctx context.Context, req model.OptimizationRequest) (model.Plan, error)
	// InvalidateCache drops cached plans, e.g. after the active cost profile changes.
	InvalidateCache()
}

// ProfileSource supplies the active cost profile, if any.
type ProfileSource interface {
	GetActive(ctx context.Context) (*repository.CostProfile, error)
}

// Defaults are the server-side values used when neither the request nor the
// active profile sets them.
type Defaults struct {
	Params         optimizer.CostParams
	Step           int
	CapacityFactor int
	Algorithm      string
	MaxHorizon     int
	// MaxCapacity bounds factor × peak consumption; zero keeps the optimizer default.
	MaxCapacity  int
	SolveTimeout time.Duration
}

// DefaultsFromConfig maps configuration onto Defaults.
func DefaultsFromConfig(cfg config.OptimizerConfig) Defaults {
	return Defaults{
		Params: optimizer.CostParams{
			OrderFee:     cfg.OrderFee,
			StorageCost:  cfg.StorageCost,
			ShortageCost: cfg.ShortageCost,
		},
		Step:           cfg.Step,
		CapacityFactor: cfg.CapacityFactor,
		Algorithm:      cfg.DefaultAlgorithm,
		MaxHorizon:     cfg.MaxHorizon,
		MaxCapacity:    cfg.MaxCapacity,
		SolveTimeout:   cfg.SolveTimeout,
	}
}

// OptimizerOption configures an OptimizerService.
type OptimizerOption func(*OptimizerService)

// WithDefaults replaces the built-in defaults.
func WithDefaults(d Defaults) OptimizerOption {
	return func(s *OptimizerService) {
		s.defaults = d
	}
}

// WithCache enables plan caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) OptimizerOption {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) OptimizerOption {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// WithProfileSource consults the active cost profile before the defaults.
func WithProfileSource(src ProfileSource) OptimizerOption {
	return func(s *OptimizerService) {
		s.profiles = src
	}
}

// OptimizerService implements Optimizer on top of the optimizer package.
type OptimizerService struct {
	defaults Defaults
	cache    cache.Cache
	profiles ProfileSource
	inflight singleflight.Group
}

// NewOptimizerService creates an OptimizerService with the given options.
func NewOptimizerService(opts ...OptimizerOption) *OptimizerService {
	s := &OptimizerService{
		defaults: Defaults{
			Params:         optimizer.DefaultCostParams,
			Step:           optimizer.DefaultStep,
			CapacityFactor: optimizer.DefaultCapacityFactor,
			Algorithm:      string(optimizer.AlgorithmBottomUp),
			MaxHorizon:     365,
			MaxCapacity:    optimizer.DefaultMaxCapacity,
			SolveTimeout:   10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolved is a fully specified problem. Its JSON encoding is the cache fingerprint.
type resolved struct {
	Consumption    []int                `json:"consumption"`
	Params         optimizer.CostParams `json:"params"`
	Step           int                  `json:"step"`
	CapacityFactor int                  `json:"capacity_factor"`
	InitialStock   int                  `json:"initial_stock"`
	Algorithm      optimizer.Algorithm  `json:"algorithm"`
}

func (r resolved) fingerprint() string {
	// encoding a struct of ints and floats cannot fail
	raw, _ := json.Marshal(r)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Optimize resolves the request against the active profile and defaults,
// then returns a cached plan or solves a fresh one. Identical concurrent
// requests share one solve.
func (s *OptimizerService) Optimize(ctx context.Context, req model.OptimizationRequest) (model.Plan, error) {
	if err := ctx.Err(); err != nil {
		return model.Plan{}, err
	}
	if s.defaults.MaxHorizon > 0 && len(req.Consumption) > s.defaults.MaxHorizon {
		return model.Plan{}, fmt.Errorf("%w: %d days, limit %d", ErrHorizonTooLong, len(req.Consumption), s.defaults.MaxHorizon)
	}

	r, err := s.resolve(ctx, req)
	if err != nil {
		return model.Plan{}, err
	}
	metrics.RecordHorizon(len(r.Consumption))

	key := r.fingerprint()
	if s.cache != nil {
		if plan, ok := s.cache.Get(key); ok {
			log.Debug().Str("key", key[:12]).Msg("plan served from cache")
			return plan, nil
		}
	}

	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		// detached so one caller's cancellation does not fail the callers sharing the solve
		solveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.defaults.SolveTimeout)
		defer cancel()
		return s.solve(solveCtx, r)
	})

	select {
	case <-ctx.Done():
		return model.Plan{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return model.Plan{}, res.Err
		}
		plan, _ := res.Val.(model.Plan)
		if s.cache != nil {
			s.cache.Set(key, plan)
		}
		return clonePlan(plan), nil
	}
}

// resolve layers request overrides over the active profile over defaults.
func (s *OptimizerService) resolve(ctx context.Context, req model.OptimizationRequest) (resolved, error) {
	params := s.defaults.Params
	step := s.defaults.Step
	factor := s.defaults.CapacityFactor

	if s.profiles != nil {
		profile, err := s.profiles.GetActive(ctx)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("active cost profile unavailable, using defaults")
		case profile != nil:
			params = profile.Params()
			if profile.Step > 0 {
				step = profile.Step
			}
			if profile.CapacityFactor > 0 {
				factor = profile.CapacityFactor
			}
		}
	}

	if req.OrderFee != nil {
		params.OrderFee = *req.OrderFee
	}
	if req.StorageCost != nil {
		params.StorageCost = *req.StorageCost
	}
	if req.ShortageCost != nil {
		params.ShortageCost = *req.ShortageCost
	}
	if req.Step > 0 {
		step = req.Step
	}
	if req.CapacityFactor > 0 {
		factor = req.CapacityFactor
	}

	if err := params.Validate(); err != nil {
		return resolved{}, err
	}

	name := req.Algorithm
	if name == "" {
		name = s.defaults.Algorithm
	}
	algorithm, err := optimizer.ParseAlgorithm(name)
	if err != nil {
		return resolved{}, err
	}

	return resolved{
		Consumption:    req.Consumption,
		Params:         params,
		Step:           step,
		CapacityFactor: factor,
		InitialStock:   req.InitialStock,
		Algorithm:      algorithm,
	}, nil
}

func (s *OptimizerService) solve(ctx context.Context, r resolved) (model.Plan, error) {
	opts := []optimizer.Option{
		optimizer.WithStep(r.Step),
		optimizer.WithCapacityFactor(r.CapacityFactor),
		optimizer.WithInitialStock(r.InitialStock),
	}
	if s.defaults.MaxCapacity > 0 {
		opts = append(opts, optimizer.WithMaxCapacity(s.defaults.MaxCapacity))
	}
	m, err := optimizer.New(r.Consumption, r.Params, opts...)
	if err != nil {
		return model.Plan{}, err
	}

	start := time.Now()
	sol, err := optimizer.Solve(ctx, m, r.Algorithm)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordSolve(string(r.Algorithm), solveStatus(err), elapsed, 0)
		log.Error().Err(err).
			Str("algorithm", string(r.Algorithm)).
			Int("horizon", m.Days()).
			Msg("solve failed")
		return model.Plan{}, err
	}
	metrics.RecordSolve(string(r.Algorithm), "success", elapsed, sol.StatesExplored)

	days, err := m.Simulate(sol.Orders)
	if err != nil {
		return model.Plan{}, fmt.Errorf("replaying solution: %w", err)
	}

	log.Debug().
		Str("algorithm", string(sol.Algorithm)).
		Int("horizon", m.Days()).
		Int("states", sol.StatesExplored).
		Float64("min_cost", sol.Cost).
		Int64("duration_ms", elapsed.Milliseconds()).
		Msg("plan solved")

	return model.Plan{
		MinCost:        sol.Cost,
		Orders:         sol.Orders,
		Capacity:       m.Capacity(),
		Step:           m.Step(),
		CapacityFactor: m.CapacityFactor(),
		InitialStock:   m.InitialStock(),
		Params:         m.Params(),
		Algorithm:      string(sol.Algorithm),
		StatesExplored: sol.StatesExplored,
		Days:           days,
		Totals:         model.SummarizeDays(days),
	}, nil
}

func solveStatus(err error) string {
	switch {
	case errors.Is(err, optimizer.ErrSolverDivergence):
		return "divergence"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

// InvalidateCache drops every cached plan.
func (s *OptimizerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close stops the cache's background cleanup.
func (s *OptimizerService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

var _ Optimizer = (*OptimizerService)(nil)
