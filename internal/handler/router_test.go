package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/kimminjae413/Hair-Trend-Analyzer/internal/config"
)

func newFullRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTrendHandler(cfg, &fakeRunner{report: validReport()}, &fakeReader{}, &fakeScripts{})
	return NewRouter(cfg, h)
}

func TestRouter_NotFound(t *testing.T) {
	r := newFullRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Success)
	assert.Equal(t, "/nope", res.Path)
}

func TestRouter_RateLimit(t *testing.T) {
	r := newFullRouter(testConfig())

	var lastCode int
	limited := 0
	for i := 0; i < 101; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/health", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		r.ServeHTTP(w, req)
		lastCode = w.Code
		if w.Code == http.StatusTooManyRequests {
			limited++

			var res ErrorResponse
			json.Unmarshal(w.Body.Bytes(), &res)
			assert.Equal(t, 900, res.RetryAfter)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
	assert.NotEqual(t, 0, limited)
}

func TestRouter_RateLimitDoesNotCoverOtherPaths(t *testing.T) {
	r := newFullRouter(testConfig())

	for i := 0; i < 110; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/outside", nil)
		req.RemoteAddr = "203.0.113.8:4000"
		r.ServeHTTP(w, req)

		// Unknown paths stay 404 no matter how often they are hit.
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}
