package middleware

import (
	"glowAdvisor/business/recommend"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceMiddleware attaches a trace ID to every request context so the
// engine's debug logging can be correlated with access logs.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get("X-Trace-Id")
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := recommend.WithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-Id", tid)

			return next(c)
		}
	}
}
