package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"hireflow/internal/pkg/ratelimit"
)

// RateLimitConfig is the per-client request budget enforced by the
// middleware.
type RateLimitConfig struct {
	MaxRequests int64
	Window      time.Duration
}

// RateLimitMiddleware enforces a fixed-window rate limit per client IP.
// Denied requests get 429 with a Retry-After hint; every response carries
// X-RateLimit-Remaining. A counter-store failure is a 500: the middleware
// never admits or denies on a guess.
func RateLimitMiddleware(limiter *ratelimit.Limiter, config RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestCtx := ctx.Request().Context()
			identifier := ctx.RealIP()

			allowed, err := limiter.IsAllowed(requestCtx, identifier, config.MaxRequests, config.Window)
			if err != nil {
				return ctx.JSON(http.StatusInternalServerError, Error{
					Code:    http.StatusInternalServerError,
					Message: "Rate limiter unavailable",
				})
			}

			remaining, err := limiter.GetRemaining(requestCtx, identifier, config.MaxRequests)
			if err != nil {
				return ctx.JSON(http.StatusInternalServerError, Error{
					Code:    http.StatusInternalServerError,
					Message: "Rate limiter unavailable",
				})
			}
			ctx.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if !allowed {
				ctx.Response().Header().Set("Retry-After", strconv.Itoa(int(config.Window.Seconds())))
				return ctx.JSON(http.StatusTooManyRequests, Error{
					Code:    http.StatusTooManyRequests,
					Message: "Rate limit exceeded",
				})
			}

			return next(ctx)
		}
	}
}
