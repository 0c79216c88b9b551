//go:build integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/repository"
	"github.com/guttosm/inventory-optimizer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingService_AuditTrail_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongo, err := testutil.StartMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongo.Terminate(context.Background()) })

	db, err := repository.NewMongoDB(mongo.URI, testutil.DatabaseName(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))

	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "test-logs",
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
	})
	logs := NewLoggingService(repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breaker))

	request := &model.LogEntry{Level: "info", Message: "HTTP request", RequestID: "req-1", Method: "POST", Path: "/api/optimize", StatusCode: 200}
	require.NoError(t, logs.CreateLog(ctx, request))
	assert.False(t, request.ID.IsZero())

	require.NoError(t, logs.CreateLogs(ctx, []*model.LogEntry{
		{Level: "info", Message: "Plan computed", RequestID: "req-1", ActionType: "optimize"},
		{Level: "error", Message: "HTTP request", RequestID: "req-2", StatusCode: 500},
	}))

	t.Run("trace a request", func(t *testing.T) {
		entries, err := logs.QueryLogs(ctx, model.LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("filter by action", func(t *testing.T) {
		entries, err := logs.QueryLogs(ctx, model.LogQueryOptions{ActionType: "optimize"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Plan computed", entries[0].Message)
	})

	t.Run("count by level", func(t *testing.T) {
		count, err := logs.CountLogs(ctx, model.LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("time window", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		count, err := logs.CountLogs(ctx, model.LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}
