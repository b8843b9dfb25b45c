package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-todo-api/internal/transport/http/respond"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func limitedRequest(rl *RateLimiter, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	rl.Limit(http.HandlerFunc(okHandler)).ServeHTTP(rr, req)
	return rr
}

func TestRateLimiter_SharesBucketAcrossPorts(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(0), 1, respond.NewWriter(false))

	// Same client IP on fresh connections must drain one shared bucket.
	assert.Equal(t, http.StatusOK, limitedRequest(rl, "10.0.0.1:50001").Code)

	rr := limitedRequest(rl, "10.0.0.1:50002")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(0), 1, respond.NewWriter(false))

	assert.Equal(t, http.StatusOK, limitedRequest(rl, "10.0.0.1:50001").Code)
	assert.Equal(t, http.StatusTooManyRequests, limitedRequest(rl, "10.0.0.1:50002").Code)
	assert.Equal(t, http.StatusOK, limitedRequest(rl, "10.0.0.2:50001").Code)
}
