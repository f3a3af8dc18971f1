package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"athlete-service/internal/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	globalRequestsPerSecond    = 20
	globalBurst                = 40
	strictRequestsPerSecond    = 2
	strictBurst                = 5
	principalRequestsPerSecond = 10
	principalBurst             = 20

	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"

	msgRateLimited = "too many requests, please try again later"
)

// RateLimiter implements token bucket rate limiting per identity
type RateLimiter struct {
	limiters sync.Map // key -> *rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a new rate limiter
// requestsPerSecond: number of requests allowed per second
// burst: maximum burst size
func NewRateLimiter(requestsPerSecond int, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
	}
}

// NewGlobalRateLimiter returns the limiter applied to every route. It
// runs ahead of the auth gates, so its buckets are keyed by client IP.
func NewGlobalRateLimiter() *RateLimiter {
	return NewRateLimiter(globalRequestsPerSecond, globalBurst)
}

// NewStrictRateLimiter returns the tighter limiter for auth endpoints,
// where brute-forcing credentials is the concern.
func NewStrictRateLimiter() *RateLimiter {
	return NewRateLimiter(strictRequestsPerSecond, strictBurst)
}

// NewPrincipalRateLimiter returns the limiter mounted behind the token
// and API-key gates on protected routes, where the bound principal
// keys the bucket.
func NewPrincipalRateLimiter() *RateLimiter {
	return NewRateLimiter(principalRequestsPerSecond, principalBurst)
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	limiter, exists := rl.limiters.Load(key)
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Store(key, limiter)
	}
	return limiter.(*rate.Limiter)
}

// Allow checks if a request should be allowed for the given key
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Middleware returns an Echo middleware function for rate limiting.
// Buckets are keyed by the principal a gate upstream has bound, or by
// client IP when none has run yet. Mount the limiter after
// RequireToken/RequireAPIKey to get per-principal buckets.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ip:" + c.RealIP()

			if p, err := auth.GetTokenPrincipal(c); err == nil {
				key = "user:" + strconv.FormatInt(p.UserID, 10)
			} else if kp, err := auth.GetAPIKeyPrincipal(c); err == nil {
				key = "apikey:" + strconv.FormatInt(kp.KeyID, 10)
			}

			limiter := rl.getLimiter(key)

			c.Response().Header().Set(headerRateLimitLimit, fmt.Sprintf("%d", rl.burst))

			if !limiter.Allow() {
				c.Response().Header().Set(headerRateLimitRemaining, "0")
				c.Response().Header().Set(headerRetryAfter, "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"message": msgRateLimited,
				})
			}

			remaining := int(limiter.Tokens())
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set(headerRateLimitRemaining, strconv.Itoa(remaining))

			return next(c)
		}
	}
}
