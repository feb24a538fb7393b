package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/knowgrow/agency-backend/config"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter(origins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORSMiddleware(&config.ServerConfig{AllowedOrigins: origins}))
	router.POST("/api/contact", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		requestOrigin  string
		expectedOrigin string
	}{
		{
			name:           "wildcard allows any origin",
			origins:        []string{"*"},
			requestOrigin:  "https://anywhere.example",
			expectedOrigin: "*",
		},
		{
			name:           "exact origin",
			origins:        []string{"https://knowgrow.studio"},
			requestOrigin:  "https://knowgrow.studio",
			expectedOrigin: "https://knowgrow.studio",
		},
		{
			name:           "subdomain wildcard",
			origins:        []string{"*.knowgrow.studio"},
			requestOrigin:  "https://www.knowgrow.studio",
			expectedOrigin: "https://www.knowgrow.studio",
		},
		{
			name:           "disallowed origin",
			origins:        []string{"https://knowgrow.studio"},
			requestOrigin:  "https://evil.example",
			expectedOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(tt.origins)

			req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
			req.Header.Set("Origin", tt.requestOrigin)
			req.Header.Set("Access-Control-Request-Method", "POST")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://knowgrow.studio", "*.preview.app"}

	assert.True(t, originAllowed(allowed, "https://knowgrow.studio"))
	assert.True(t, originAllowed(allowed, "https://pr-12.preview.app"))
	assert.False(t, originAllowed(allowed, "https://knowgrow.studio.evil.example"))
	assert.False(t, originAllowed(allowed, "http://localhost:3000"))
}
