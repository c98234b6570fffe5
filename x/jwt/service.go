// Package jwt issues and verifies HS256 access tokens
package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/rolegate/core"
)

var tracer = otel.Tracer("jwt")

type service struct {
	repository Repository
	secret     []byte
	ttl        time.Duration
}

// NewService creates a new token service
func NewService(repository Repository, config core.Config) core.JwtService {
	return &service{
		repository: repository,
		secret:     []byte(config.JwtSecret),
		ttl:        config.TokenTTL,
	}
}

// Create signs a token for payload with a fresh jti
func (s *service) Create(payload core.TokenPayload) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        xid.New().String(),
			Subject:   payload.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Account: payload.Account,
		Role:    payload.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func (s *service) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, core.NewErrorPermissionDenied()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, core.NewErrorPermissionDenied()
	}
	return claims, nil
}

// Verify checks signature, expiry and revocation of a token
func (s *service) Verify(ctx context.Context, tokenString string) (core.TokenPayload, error) {
	ctx, span := tracer.Start(ctx, "Jwt.Service.Verify")
	defer span.End()

	claims, err := s.parse(tokenString)
	if err != nil {
		span.RecordError(err)
		return core.TokenPayload{}, err
	}

	revoked, err := s.repository.CheckJTI(ctx, claims.ID)
	if err != nil {
		span.RecordError(err)
		return core.TokenPayload{}, errors.Wrap(err, "failed to check jti")
	}
	if revoked {
		return core.TokenPayload{}, core.NewErrorPermissionDenied()
	}

	return core.TokenPayload{
		ID:      claims.Subject,
		Account: claims.Account,
		Role:    claims.Role,
		JTI:     claims.ID,
	}, nil
}

// Invalidate revokes a valid token until its expiry
func (s *service) Invalidate(ctx context.Context, tokenString string) error {
	ctx, span := tracer.Start(ctx, "Jwt.Service.Invalidate")
	defer span.End()

	claims, err := s.parse(tokenString)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return s.repository.InvalidateJTI(ctx, claims.ID, claims.ExpiresAt.Time)
}
