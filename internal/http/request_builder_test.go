package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/inventory-optimizer/internal/domain/dto"
	"github.com/guttosm/inventory-optimizer/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count"`
}

func (r *sampleRequest) Validate() error {
	if r.Count < 0 {
		return &dto.ValidationError{Field: "count", Message: "must be non-negative"}
	}
	return nil
}

func newTestContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(middleware.RequestIDKey), "req-1")
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     bool
		wantValErr  bool
		expectedReq *sampleRequest
	}{
		{name: "valid", body: `{"name":"gauze","count":3}`, expectedReq: &sampleRequest{Name: "gauze", Count: 3}},
		{name: "binding failure", body: `{"count":3}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "validation failure", body: `{"name":"gauze","count":-1}`, wantErr: true, wantValErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(tt.body)

			req, err := BuildRequestAndValidate[sampleRequest](c)

			if tt.wantErr {
				require.Error(t, err)
				var valErr *dto.ValidationError
				assert.Equal(t, tt.wantValErr, errors.As(err, &valErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedReq, req)
		})
	}
}

func TestResponseBuilder(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		c, w := newTestContext("")
		NewResponseBuilder(c).Success(http.StatusCreated, map[string]int{"version": 2})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, map[string]int{"version": 2}, decodeData[map[string]int](t, w))
	})

	t.Run("error envelope", func(t *testing.T) {
		c, w := newTestContext("")
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, "error.validation.step", assert.AnError,
			map[string]string{"field": "step"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, c.IsAborted())
		require.Len(t, c.Errors, 1)

		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeFromStatus(http.StatusBadRequest), resp.Error)
		assert.Equal(t, "req-1", resp.RequestID)
		assert.Equal(t, "step", resp.Details["field"])
		assert.NotEqual(t, "error.validation.step", resp.Message)
	})

	t.Run("pooled envelopes are reset", func(t *testing.T) {
		c, _ := newTestContext("")
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, "error.invalid_request", nil, map[string]string{"field": "x"})

		c2, w2 := newTestContext("")
		NewResponseBuilder(c2).Error(http.StatusNotFound, "error.invalid_request", nil)

		assert.Empty(t, decodeError(t, w2).Details)
	})
}
