package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func failing() error { return errBoom }
func passing() error { return nil }

func testConfig(failures, successes int) Config {
	return Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	}
}

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(testConfig(2, 1))
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, failing), errBoom)
	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := New(testConfig(2, 1))
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, passing)
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(testConfig(2, 2))
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig(2, 2))
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	time.Sleep(60 * time.Millisecond)

	assert.Error(t, cb.Execute(ctx, failing))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_ContextErrors(t *testing.T) {
	cb := New(testConfig(1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	err = cb.Execute(context.Background(), func() error {
		return context.DeadlineExceeded
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateClosed, cb.State(), "caller timeouts are not dependency failures")
}

func TestDo(t *testing.T) {
	cb := New(testConfig(1, 1))

	v, err := Do(context.Background(), cb, func(context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Do(context.Background(), cb, func(context.Context) (string, error) {
		return "", errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = Do(context.Background(), cb, func(context.Context) (string, error) {
		return "unreachable", nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	cfg := testConfig(1, 1)
	cfg.OnStateChange = func(name string, from, to State) {
		transitions = append(transitions, name+":"+from.String()+"->"+to.String())
	}
	cb := New(cfg)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	time.Sleep(60 * time.Millisecond)
	_ = cb.Execute(ctx, passing)

	assert.Equal(t, []string{
		"test:closed->open",
		"test:open->half-open",
		"test:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(testConfig(3, 1))
	_ = cb.Execute(context.Background(), failing)

	stats := cb.GetStats()
	assert.Equal(t, "test", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := New(Config{Name: "mongodb_logs", FailureThreshold: 1, Timeout: time.Minute})
	b := New(Config{Name: "mongodb_cost_profiles", FailureThreshold: 1, Timeout: time.Minute})
	r.Register(a)
	r.Register(b)

	_ = a.Execute(context.Background(), failing)

	got, ok := r.Get("mongodb_logs")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	snap := r.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "mongodb_cost_profiles", snap[0].Name)
	assert.True(t, snap[0].IsHealthy)
	assert.Equal(t, "open", snap[1].State)
	assert.False(t, snap[1].IsHealthy)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}
