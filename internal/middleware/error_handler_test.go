package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "writes 500 for unhandled error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("profile store down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal_error",
		},
		{
			name: "keeps response already written",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("logged only"))
				c.String(http.StatusBadRequest, "bad")
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "bad",
		},
		{
			name:           "no errors",
			handler:        func(c *gin.Context) { c.String(http.StatusOK, "ok") },
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/test", tt.handler)

			w := perform(router, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
