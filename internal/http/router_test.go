package http

import (
	"net/http"
	"testing"

	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/domain/model"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/guttosm/inventory-optimizer/internal/mocks"
	"github.com/guttosm/inventory-optimizer/internal/repository"
	"github.com/guttosm/inventory-optimizer/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const optimizeBody = `{"consumption":[50,20,70]}`

func TestNewRouter_PublicRoutes(t *testing.T) {
	router := NewRouter(NewHandler(service.NewOptimizerService()), NewHealthHandler(nil), DefaultRouterConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "liveness", method: http.MethodGet, path: "/healthz", expectedStatus: http.StatusOK},
		{name: "readiness", method: http.MethodGet, path: "/readyz", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "optimize without auth", method: http.MethodPost, path: "/api/optimize", body: optimizeBody, expectedStatus: http.StatusOK},
		{name: "generate", method: http.MethodPost, path: "/api/consumption/generate", body: `{"days":5,"seed":9}`, expectedStatus: http.StatusOK},
		{name: "cost profile absent without store", method: http.MethodGet, path: "/api/cost-profile", expectedStatus: http.StatusNotFound},
		{name: "token route absent without auth", method: http.MethodPost, path: "/api/auth/token", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestNewRouter_RequestIDPropagated(t *testing.T) {
	router := NewRouter(NewHandler(service.NewOptimizerService()), nil, DefaultRouterConfig())

	w := doRequest(router, http.MethodPost, "/api/optimize", optimizeBody, map[string]string{"X-Request-ID": "req-123"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestNewRouter_Auth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]string{"ward-key": "ward-a"}

	tokens := new(mocks.MockTokenService)
	tokens.On("ValidateToken", "good-token").Return(&dto.Claims{Client: "ward-a"}, nil)
	tokens.On("ValidateToken", "bad-token").Return(nil, assert.AnError)
	tokens.On("IssueToken", "ward-a").Return(&dto.TokenResponse{AccessToken: "good-token", TokenType: "Bearer", ExpiresIn: 900}, nil)
	cfg.TokenService = tokens

	router := NewRouter(NewHandler(service.NewOptimizerService()), nil, cfg)

	tests := []struct {
		name           string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "no credentials", path: "/api/optimize", expectedStatus: http.StatusUnauthorized},
		{name: "wrong api key", path: "/api/optimize", headers: map[string]string{middleware.APIKeyHeader: "guess"}, expectedStatus: http.StatusUnauthorized},
		{name: "valid api key", path: "/api/optimize", headers: map[string]string{middleware.APIKeyHeader: "ward-key"}, expectedStatus: http.StatusOK},
		{name: "valid bearer token", path: "/api/optimize", headers: map[string]string{"Authorization": "Bearer good-token"}, expectedStatus: http.StatusOK},
		{name: "invalid bearer token", path: "/api/optimize", headers: map[string]string{"Authorization": "Bearer bad-token"}, expectedStatus: http.StatusUnauthorized},
		{name: "token exchange", path: "/api/auth/token", headers: map[string]string{middleware.APIKeyHeader: "ward-key"}, expectedStatus: http.StatusOK},
		{name: "token exchange without key", path: "/api/auth/token", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := optimizeBody
			if tt.path == "/api/auth/token" {
				body = ""
			}
			w := doRequest(router, http.MethodPost, tt.path, body, tt.headers)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	t.Run("public routes stay open", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "no health handler was given")

		w = doRequest(router, http.MethodGet, "/metrics", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewRouter_AuthWithoutKeysIsDisabled(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true

	router := NewRouter(NewHandler(service.NewOptimizerService()), nil, cfg)

	w := doRequest(router, http.MethodPost, "/api/optimize", optimizeBody, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CostProfileRoutes(t *testing.T) {
	profiles := new(mocks.MockCostProfilesService)
	profiles.On("GetActive", mock.Anything).Return(&repository.CostProfile{OrderFee: 10, Version: 1}, nil)

	cfg := DefaultRouterConfig()
	cfg.CostProfiles = profiles

	router := NewRouter(NewHandler(service.NewOptimizerService()), nil, cfg)

	w := doRequest(router, http.MethodGet, "/api/cost-profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeData[repository.CostProfile](t, w).Version)
	profiles.AssertExpectations(t)
}

func TestNewRouter_LogsRoutes(t *testing.T) {
	logs := new(mocks.MockLoggingService)
	logs.On("CreateLog", mock.Anything, mock.Anything).Return(nil).Maybe()
	logs.On("CountLogs", mock.Anything, mock.Anything).Return(int64(1), nil)
	logs.On("QueryLogs", mock.Anything, mock.Anything).
		Return([]model.LogEntry{{Level: "info", ActionType: "optimize"}}, nil)

	cfg := DefaultRouterConfig()
	cfg.LoggingService = logs

	router := NewRouter(NewHandler(service.NewOptimizerService()), nil, cfg)

	w := doRequest(router, http.MethodGet, "/api/logs?action=optimize", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decodeData[LogsPage](t, w)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Entries, 1)
}

func TestNewRouter_RateLimit(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2

	router := NewRouter(NewHandler(service.NewOptimizerService()), NewHealthHandler(nil), cfg)

	for i := 0; i < 2; i++ {
		w := doRequest(router, http.MethodGet, "/healthz", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := doRequest(router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewRouter_Idempotency(t *testing.T) {
	opt := new(mocks.MockOptimizer)
	opt.On("Optimize", mock.Anything, mock.Anything).
		Return(model.Plan{MinCost: 42, Orders: []int{50}, Algorithm: "bottomup"}, nil).Once()

	cfg := DefaultRouterConfig()
	cfg.EnableIdempotency = true
	router := NewRouter(NewHandler(opt), nil, cfg)

	headers := map[string]string{middleware.IdempotencyKeyHeader: "order-7"}
	first := doRequest(router, http.MethodPost, "/api/optimize", `{"consumption":[50]}`, headers)
	second := doRequest(router, http.MethodPost, "/api/optimize", `{"consumption":[50]}`, headers)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	opt.AssertNumberOfCalls(t, "Optimize", 1)
}

func TestNewRouter_Swagger(t *testing.T) {
	t.Run("basic auth when credentials are configured", func(t *testing.T) {
		cfg := DefaultRouterConfig()
		cfg.SwaggerUser = "docs"
		cfg.SwaggerPass = "s3cret"
		router := NewRouter(NewHandler(service.NewOptimizerService()), nil, cfg)

		w := doRequest(router, http.MethodGet, "/swagger/index.html", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("open otherwise", func(t *testing.T) {
		router := NewRouter(NewHandler(service.NewOptimizerService()), nil, DefaultRouterConfig())

		w := doRequest(router, http.MethodGet, "/swagger/index.html", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
