package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/circuitbreaker"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func logsRouter(logs *mocks.MockLoggingService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	NewLogsRoutes(logs).RegisterRoutes(router.Group("/api"))
	return router
}

func TestLogsHandler_List(t *testing.T) {
	entries := []model.LogEntry{
		{Level: "info", Message: "Plan computed", RequestID: "req-1", ActionType: "optimize"},
	}
	since := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		expectedOpts   model.LogQueryOptions
		expectedStatus int
	}{
		{
			name:           "defaults",
			query:          "",
			expectedOpts:   model.LogQueryOptions{Limit: defaultLogsLimit},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "trace one request",
			query:          "?request_id=req-1&action=optimize",
			expectedOpts:   model.LogQueryOptions{RequestID: "req-1", ActionType: "optimize", Limit: defaultLogsLimit},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "paging is clamped",
			query:          "?level=error&limit=5000&skip=-3",
			expectedOpts:   model.LogQueryOptions{Level: "error", Limit: maxLogsLimit},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "since",
			query:          "?since=2026-03-01T08:00:00Z&limit=0",
			expectedOpts:   model.LogQueryOptions{StartTime: &since, Limit: 1},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := new(mocks.MockLoggingService)
			logs.On("CountLogs", mock.Anything, tt.expectedOpts).Return(int64(1), nil)
			logs.On("QueryLogs", mock.Anything, tt.expectedOpts).Return(entries, nil)

			w := doRequest(logsRouter(logs), http.MethodGet, "/api/logs"+tt.query, "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			page := decodeData[LogsPage](t, w)
			assert.Equal(t, int64(1), page.Total)
			assert.Equal(t, "req-1", page.Entries[0].RequestID)
			logs.AssertExpectations(t)
		})
	}
}

func TestLogsHandler_List_Errors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*mocks.MockLoggingService)
		expectedStatus int
	}{
		{name: "bad since", query: "?since=yesterday", setupMocks: func(*mocks.MockLoggingService) {}, expectedStatus: http.StatusBadRequest},
		{name: "bad limit", query: "?limit=ten", setupMocks: func(*mocks.MockLoggingService) {}, expectedStatus: http.StatusBadRequest},
		{
			name:  "breaker open",
			query: "",
			setupMocks: func(m *mocks.MockLoggingService) {
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:  "query failure",
			query: "",
			setupMocks: func(m *mocks.MockLoggingService) {
				m.On("CountLogs", mock.Anything, mock.Anything).Return(int64(3), nil)
				m.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := new(mocks.MockLoggingService)
			tt.setupMocks(logs)

			w := doRequest(logsRouter(logs), http.MethodGet, "/api/logs"+tt.query, "", nil)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, decodeError(t, w).Error)
			logs.AssertExpectations(t)
		})
	}
}

func TestLogsHandler_EmptyResult(t *testing.T) {
	logs := new(mocks.MockLoggingService)
	logs.On("CountLogs", mock.Anything, mock.Anything).Return(int64(0), nil)
	logs.On("QueryLogs", mock.Anything, mock.Anything).Return(nil, nil)

	w := doRequest(logsRouter(logs), http.MethodGet, "/api/logs", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"entries":[]`)
}
