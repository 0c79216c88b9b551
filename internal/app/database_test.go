//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/inventory-optimizer/config"
	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitializeDatabase_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{name: "disabled", cfg: config.DatabaseConfig{Enabled: false}},
		{name: "malformed URI", cfg: config.DatabaseConfig{Enabled: true, URI: "not-a-mongo-uri", DatabaseName: "test"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := circuitbreaker.NewRegistry()

			assert.Nil(t, InitializeDatabase(tt.cfg, registry))
			assert.Empty(t, registry.Snapshot())
		})
	}
}

func TestNewBreaker_PublishesState(t *testing.T) {
	cfg := config.DatabaseConfig{
		CircuitBreakerFailureThreshold: 1,
		CircuitBreakerSuccessThreshold: 1,
		CircuitBreakerTimeout:          time.Hour,
	}
	name := "test_breaker"

	cb := newBreaker(cfg, name)
	assert.Equal(t, name, cb.Name())
	assert.Equal(t, float64(circuitbreaker.StateClosed), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))

	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })

	assert.True(t, cb.IsOpen())
	assert.Equal(t, float64(circuitbreaker.StateOpen), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(name)))
}
