package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCompression(t *testing.T) {
	body := strings.Repeat(`{"day":1,"order":0,"stock":10}`, 100)

	router := gin.New()
	router.Use(Compression())
	router.GET("/api/plan", func(c *gin.Context) { c.String(http.StatusOK, body) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, body) })

	tests := []struct {
		name           string
		path           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip accepted", path: "/api/plan", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip not accepted", path: "/api/plan", wantGzip: false},
		{name: "metrics excluded", path: "/metrics", acceptEncoding: "gzip", wantGzip: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			w := perform(router, req)

			assert.Equal(t, http.StatusOK, w.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
				assert.Less(t, w.Body.Len(), len(body))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}
