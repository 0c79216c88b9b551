//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
)

var errUnavailable = errors.New("server selection timeout")

type stubProfiles struct {
	active *CostProfile
	err    error
	calls  int
}

func (s *stubProfiles) GetActive(context.Context) (*CostProfile, error) {
	s.calls++
	return s.active, s.err
}

func (s *stubProfiles) Create(_ context.Context, draft CostProfile) (*CostProfile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	draft.Version = 1
	return &draft, nil
}

func (s *stubProfiles) List(context.Context, int) ([]CostProfile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []CostProfile{*s.active}, nil
}

type stubLogs struct {
	err   error
	calls int
}

func (s *stubLogs) Create(context.Context, *LogEntryDocument) error {
	s.calls++
	return s.err
}

func (s *stubLogs) CreateMany(context.Context, []*LogEntryDocument) error {
	s.calls++
	return s.err
}

func (s *stubLogs) Query(context.Context, LogQueryOptions) ([]*LogEntryDocument, error) {
	s.calls++
	return nil, s.err
}

func (s *stubLogs) Count(context.Context, LogQueryOptions) (int64, error) {
	s.calls++
	return 3, s.err
}

func tripOnFirstFailure(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
	})
}

func TestCostProfilesRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("passes through when closed", func(t *testing.T) {
		stub := &stubProfiles{active: &CostProfile{OrderFee: 80, Active: true}}
		repo := NewCostProfilesRepositoryWithCircuitBreaker(stub, tripOnFirstFailure("profiles"))

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, 80.0, active.OrderFee)

		created, err := repo.Create(ctx, CostProfile{StorageCost: 2})
		require.NoError(t, err)
		assert.Equal(t, 1, created.Version)

		list, err := repo.List(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("open circuit falls back to no profile", func(t *testing.T) {
		stub := &stubProfiles{err: errUnavailable}
		cb := tripOnFirstFailure("profiles")
		repo := NewCostProfilesRepositoryWithCircuitBreaker(stub, cb)

		_, err := repo.GetActive(ctx)
		assert.ErrorIs(t, err, errUnavailable)
		assert.True(t, cb.IsOpen())

		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)

		_, err = repo.Create(ctx, CostProfile{})
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

		_, err = repo.List(ctx, 1)
		assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

		assert.Equal(t, 1, stub.calls, "open circuit must not reach the store")
		assert.Same(t, cb, repo.GetCircuitBreaker())
	})
}

func TestLogsRepositoryWithCircuitBreaker(t *testing.T) {
	ctx := context.Background()
	stub := &stubLogs{err: errUnavailable}
	cb := tripOnFirstFailure("logs")
	repo := NewLogsRepositoryWithCircuitBreaker(stub, cb)

	assert.ErrorIs(t, repo.Create(ctx, &LogEntryDocument{}), errUnavailable)
	require.True(t, cb.IsOpen())

	assert.NoError(t, repo.Create(ctx, &LogEntryDocument{}), "writes are dropped while open")
	assert.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{{}}))

	_, err := repo.Query(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	_, err = repo.Count(ctx, LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	assert.Equal(t, 1, stub.calls)
}

func TestLogQueryOptions_Filter(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, LogQueryOptions{}.filter())

	f := LogQueryOptions{RequestID: "r1", ActionType: "optimize", StartTime: &start}.filter()
	assert.Equal(t, "r1", f["request_id"])
	assert.Equal(t, "optimize", f["action_type"])
	assert.Contains(t, f, "timestamp")
}

func TestCostProfile_Params(t *testing.T) {
	p := CostProfile{OrderFee: 1, StorageCost: 2, ShortageCost: 3}.Params()
	assert.Equal(t, 1.0, p.OrderFee)
	assert.Equal(t, 2.0, p.StorageCost)
	assert.Equal(t, 3.0, p.ShortageCost)
}
