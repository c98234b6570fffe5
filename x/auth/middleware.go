package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/rolegate/core"
)

// IdentifyIdentity resolves the bearer token of a request into the requester keys of the echo context.
// Requests without a valid token pass through anonymously.
func (s *service) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			payload, err := s.jwt.Verify(ctx, token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			identity, err := s.users.Identify(ctx, payload.ID)
			if err != nil {
				span.RecordError(err)
				goto skip
			}
			// the account was renamed after the token was issued
			if identity.Account != payload.Account {
				span.RecordError(fmt.Errorf("token account %s no longer matches user %s", payload.Account, payload.ID))
				goto skip
			}
			if !identity.IsActive {
				return c.JSON(http.StatusForbidden, echo.Map{
					"status":  "error",
					"message": "account is disabled",
				})
			}

			c.Set(core.RequesterIdCtxKey, identity.ID)
			c.Set(core.RequesterAccountCtxKey, identity.Account)
			c.Set(core.RequesterRoleCtxKey, payload.Role)
			c.Set(core.RequesterTokenCtxKey, token)
			span.SetAttributes(attribute.String("RequesterId", payload.ID))
			span.SetAttributes(attribute.String("RequesterAccount", payload.Account))
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Restrict rejects anonymous requests
func Restrict(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.Restrict")
		defer span.End()

		if id, _ := c.Get(core.RequesterIdCtxKey).(string); id == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status":  "error",
				"message": "authentication required",
			})
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
