package middleware

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAsyncLoggerConfig_WithDefaults(t *testing.T) {
	cfg := AsyncLoggerConfig{BatchSize: 10}.withDefaults()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))
}

func TestAsyncLogger_BatchesEntries(t *testing.T) {
	var calls, entries atomic.Int64
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLogs", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		calls.Add(1)
		entries.Add(int64(len(args.Get(1).([]*model.LogEntry))))
	})

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})
	for range 5 {
		require.True(t, al.Log(&model.LogEntry{Message: "entry"}))
	}
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(5), stats.Enqueued)
	assert.Equal(t, int64(5), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.Equal(t, int64(5), entries.Load())
	assert.Equal(t, int64(3), calls.Load(), "two full batches and the remainder on stop")
}

func TestAsyncLogger_FlushesPartialBatchOnTick(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{NumWorkers: 1, BatchSize: 100, FlushInterval: 10 * time.Millisecond})
	defer al.Stop()

	al.Log(&model.LogEntry{RequestID: "r1"})

	assert.Eventually(t, func() bool { return al.Stats().Written == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_CountsErrors(t *testing.T) {
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{BufferSize: 4, NumWorkers: 1, BatchSize: 10})
	al.Log(&model.LogEntry{RequestID: "r1"})
	al.Log(&model.LogEntry{RequestID: "r2"})
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(2), stats.Errors)
	assert.Zero(t, stats.Written)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	loggingService := new(mocks.MockLoggingService)
	loggingService.On("CreateLogs", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		<-release
	})

	al := NewAsyncLogger(loggingService, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, BatchSize: 1})

	// the worker takes the first entry and blocks writing it; the second fills the buffer
	require.True(t, al.Log(&model.LogEntry{}))
	require.Eventually(t, func() bool { return len(al.entryCh) == 0 }, time.Second, 5*time.Millisecond)
	require.True(t, al.Log(&model.LogEntry{}))

	assert.False(t, al.Log(&model.LogEntry{}))
	assert.Equal(t, int64(1), al.Stats().Dropped)

	close(release)
	al.Stop()
	assert.Equal(t, int64(2), al.Stats().Written)
}

func TestAsyncLogger_StopIsIdempotent(t *testing.T) {
	al := NewAsyncLogger(new(mocks.MockLoggingService), DefaultAsyncLoggerConfig())
	al.Stop()
	assert.NotPanics(t, al.Stop)
	assert.False(t, al.Log(&model.LogEntry{}), "entries after Stop are dropped")
}

func TestGlobalAsyncLogger(t *testing.T) {
	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())

	InitAsyncLogger(new(mocks.MockLoggingService), DefaultAsyncLoggerConfig())
	first := GetAsyncLogger()
	require.NotNil(t, first)

	InitAsyncLogger(new(mocks.MockLoggingService), DefaultAsyncLoggerConfig())
	assert.NotSame(t, first, GetAsyncLogger())

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())
	assert.NotPanics(t, StopAsyncLogger)
}
