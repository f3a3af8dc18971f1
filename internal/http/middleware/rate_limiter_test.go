package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"athlete-service/internal/auth"
	"athlete-service/internal/domain/user"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(2, 2)

	assert.True(t, rl.Allow("test-key"))
	assert.True(t, rl.Allow("test-key"))

	// Burst exhausted
	assert.False(t, rl.Allow("test-key"))
}

func TestRateLimiter_DifferentKeys(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	assert.True(t, rl.Allow("key1"))
	assert.True(t, rl.Allow("key2"))

	assert.False(t, rl.Allow("key1"))
	assert.False(t, rl.Allow("key2"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(2, 2)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	mw := rl.Middleware()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, mw(handler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(headerRateLimitLimit))
		assert.NotEmpty(t, rec.Header().Get(headerRateLimitRemaining))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, mw(handler)(c))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(headerRateLimitRemaining))
	assert.Equal(t, "1", rec.Header().Get(headerRetryAfter))
}

func TestRateLimiter_PerPrincipal_BehindTokenGate(t *testing.T) {
	e := echo.New()
	jwtService := auth.NewJWTService("rate-limiter-test-secret-0123456789ab", time.Hour)
	gates := auth.NewMiddleware(jwtService, nil)
	rl := NewRateLimiter(1, 1)

	// Same registration order as the server: gate first, limiter behind it.
	e.GET("/records/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, gates.RequireToken(), rl.Middleware())

	request := func(userID int64) int {
		token, err := jwtService.Generate(&user.User{ID: userID, Username: "u", Email: "u@example.com", Role: user.RoleUser})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/records/1", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	// Two users behind one address get independent buckets.
	assert.Equal(t, http.StatusOK, request(1))
	assert.Equal(t, http.StatusOK, request(2))

	assert.Equal(t, http.StatusTooManyRequests, request(1))
	assert.Equal(t, http.StatusTooManyRequests, request(2))
}

func TestRateLimiter_Middleware_APIKeyPrincipal(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	mw := rl.Middleware()

	request := func(keyID int64) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(auth.ContextKeyKeyPrincipal, auth.APIKeyPrincipal{KeyID: keyID, UserID: keyID})
		assert.NoError(t, mw(handler)(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, request(1))
	assert.Equal(t, http.StatusOK, request(2))
	assert.Equal(t, http.StatusTooManyRequests, request(1))
}
