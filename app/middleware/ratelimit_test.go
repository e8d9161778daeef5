package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, remoteAddr, session string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/generate-preview", nil)
	req.RemoteAddr = remoteAddr
	if session != "" {
		req.Header.Set("X-Session-ID", session)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_LimitsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 2, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Handler(okHandler())

	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1234", ""))
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:5678", ""))
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "10.0.0.1:1234", ""))

	// another client has its own budget
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.2:1234", ""))

	// one token per minute refills
	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1234", ""))
}

func TestRateLimiter_KeyFunc(t *testing.T) {
	rl := NewRateLimiter(1, 1, func(r *http.Request) string { return r.Header.Get("X-Session-ID") })
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Handler(okHandler())

	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1", "a"))
	assert.Equal(t, http.StatusTooManyRequests, serve(h, "10.0.0.2:1", "a"))
	assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1", "b"))
}

func TestRateLimiter_NilPassesThrough(t *testing.T) {
	var rl *RateLimiter
	h := rl.Handler(okHandler())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(h, "10.0.0.1:1", ""))
	}
	assert.Equal(t, 0, rl.Cleanup(time.Minute))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(60, 1, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Handler(okHandler())

	serve(h, "10.0.0.1:1", "")
	now = now.Add(10 * time.Minute)
	serve(h, "10.0.0.2:1", "")

	assert.Equal(t, 1, rl.Cleanup(5*time.Minute))
	assert.Len(t, rl.limiters, 1)
}
