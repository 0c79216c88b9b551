package repository

import (
	"context"
	"errors"

	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
)

// CostProfilesRepositoryWithCircuitBreaker guards a cost profile store.
// While the circuit is open GetActive reports "no profile" so callers fall
// back to configured defaults; writes fail with ErrCircuitOpen.
type CostProfilesRepositoryWithCircuitBreaker struct {
	repo           CostProfilesRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCostProfilesRepositoryWithCircuitBreaker wraps repo with cb.
func NewCostProfilesRepositoryWithCircuitBreaker(repo CostProfilesRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CostProfilesRepositoryWithCircuitBreaker {
	return &CostProfilesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

func (r *CostProfilesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*CostProfile, error) {
	profile, err := circuitbreaker.Do(ctx, r.circuitBreaker, r.repo.GetActive)
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return profile, err
}

func (r *CostProfilesRepositoryWithCircuitBreaker) Create(ctx context.Context, draft CostProfile) (*CostProfile, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func(ctx context.Context) (*CostProfile, error) {
		return r.repo.Create(ctx, draft)
	})
}

func (r *CostProfilesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]CostProfile, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func(ctx context.Context) ([]CostProfile, error) {
		return r.repo.List(ctx, limit)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CostProfilesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker guards a log store. Log writes are
// dropped silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func(ctx context.Context) ([]*LogEntryDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func(ctx context.Context) (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
