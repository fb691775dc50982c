package middleware

import (
	"triggerby_web/services"

	"github.com/labstack/echo/v4"
)

// AuditContext copies the request ID assigned by echo's RequestID middleware
// into the request context, where the audit intake uses it to correlate log lines.
// It must run after RequestID.
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if id != "" {
				ctx := services.WithRequestID(c.Request().Context(), id)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
