// Package auth handles login, logout and request identification
package auth

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/rolegate/core"
)

var tracer = otel.Tracer("auth")

// Service is the interface for auth service
type Service interface {
	Login(ctx context.Context, account, password string) (string, core.User, error)
	Logout(ctx context.Context, token string) error
	IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc
}

type service struct {
	users core.UserService
	jwt   core.JwtService
}

// NewService creates a new auth service
func NewService(users core.UserService, jwt core.JwtService) Service {
	return &service{users, jwt}
}

// Login checks the credentials of an active user and issues a token for it
func (s *service) Login(ctx context.Context, account, password string) (string, core.User, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	user, err := s.users.GetByAccount(ctx, account)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, core.ErrorNotFound{}) {
			return "", core.User{}, core.NewErrorPermissionDenied()
		}
		return "", core.User{}, err
	}

	if !user.Secret.IsMatch(password) || !user.IsActive {
		return "", core.User{}, core.NewErrorPermissionDenied()
	}

	token, err := s.jwt.Create(core.TokenPayload{
		ID:      user.ID,
		Account: user.Account(),
		Role:    user.RoleName,
	})
	if err != nil {
		span.RecordError(err)
		return "", core.User{}, err
	}

	return token, user, nil
}

// Logout revokes token
func (s *service) Logout(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "Auth.Service.Logout")
	defer span.End()

	err := s.jwt.Invalidate(ctx, token)
	if err != nil {
		span.RecordError(err)
	}
	return err
}
