package rbac

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/rolegate/core"
)

// Action is the action checked for a request: the matched route, or the raw path when no route matched
func Action(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return c.Request().URL.Path
}

// RequirePermission lets a request through only when the identified account may perform its action.
// Any failure of the check denies.
func RequirePermission(checker core.PermissionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "RBAC.Middleware.RequirePermission")
			defer span.End()

			account, ok := c.Get(core.RequesterAccountCtxKey).(string)
			if !ok || account == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "message": "authentication required"})
			}

			action := Action(c)
			span.SetAttributes(
				attribute.String("account", account),
				attribute.String("action", action),
			)

			allowed, err := checker.CheckPermission(ctx, account, action)
			if err != nil {
				span.RecordError(err)
				return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "message": "permission check unavailable"})
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "message": "you are not authorized to perform this action"})
			}

			return next(c)
		}
	}
}
