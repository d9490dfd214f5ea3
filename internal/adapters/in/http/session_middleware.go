package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"hireflow/internal/pkg/errs"
)

// SessionHeader carries the recruiter session ID on API requests.
const SessionHeader = "X-Session-ID"

// SessionExtender is the slice of the session store the middleware needs.
type SessionExtender interface {
	Extend(ctx context.Context, sessionID string) error
}

// SessionRefreshMiddleware gives sessions a sliding expiration: any request
// carrying a known session ID resets the session's lifetime. Requests
// without a session, or with an expired one, pass through untouched; the
// middleware refreshes sessions, it does not authenticate.
func SessionRefreshMiddleware(sessions SessionExtender) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sessionID := ctx.Request().Header.Get(SessionHeader); sessionID != "" {
				err := sessions.Extend(ctx.Request().Context(), sessionID)
				if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
					ctx.Logger().Warnf("session refresh failed: %v", err)
				}
			}

			return next(ctx)
		}
	}
}
