//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are bound", func(t *testing.T) {
		assert.NotNil(t, db.CostProfiles)
		assert.NotNil(t, db.Logs)
		assert.Equal(t, "cost_profiles", db.CostProfiles.Name())
	})

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("logs TTL can be set repeatedly", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30*24*time.Hour))
		require.NoError(t, db.SetLogsTTL(ctx, time.Hour))
	})

	t.Run("logs TTL must be positive", func(t *testing.T) {
		assert.Error(t, db.SetLogsTTL(ctx, 0))
	})
}

func TestNewMongoDB_Unreachable(t *testing.T) {
	t.Parallel()
	cfg := DefaultMongoConfig()
	cfg.ConnectTimeout = 500 * time.Millisecond
	cfg.ServerSelectionTimeout = 300 * time.Millisecond

	_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
	assert.Error(t, err)
}
