//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, 24*time.Hour))

	repo := NewLogsRepository(db)

	t.Run("create stamps id and timestamp", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "HTTP request",
			RequestID:  "req-1",
			Method:     "POST",
			Path:       "/api/optimize",
			StatusCode: 200,
		}
		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		require.NoError(t, repo.CreateMany(ctx, []*LogEntryDocument{
			{Level: "info", Message: "plan computed", ActionType: "optimize", RequestID: "req-2"},
			{Level: "error", Message: "plan failed", ActionType: "optimize", RequestID: "req-3"},
			{Level: "info", Message: "profile stored", ActionType: "update_cost_profile"},
		}))
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request id", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{RequestID: "req-1"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/api/optimize", entries[0].Path)
	})

	t.Run("query by action with limit", func(t *testing.T) {
		entries, err := repo.Query(ctx, LogQueryOptions{ActionType: "optimize", Limit: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("count with filters", func(t *testing.T) {
		total, err := repo.Count(ctx, LogQueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)

		errors, err := repo.Count(ctx, LogQueryOptions{Level: "error"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), errors)

		future := time.Now().Add(time.Hour)
		none, err := repo.Count(ctx, LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Zero(t, none)
	})
}
