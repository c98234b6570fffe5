package jwt

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const jtiPrefix = "jti:"

// Repository keeps the ids of revoked tokens until they would have expired anyway
type Repository interface {
	CheckJTI(ctx context.Context, jti string) (bool, error)
	InvalidateJTI(ctx context.Context, jti string, exp time.Time) error
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{
		rdb: rdb,
	}
}

// CheckJTI reports whether jti has been revoked
func (r *repository) CheckJTI(ctx context.Context, jti string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Jwt.Repository.CheckJTI")
	defer span.End()

	exists, err := r.rdb.Exists(ctx, jtiPrefix+jti).Result()
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	return exists > 0, nil
}

func (r *repository) InvalidateJTI(ctx context.Context, jti string, exp time.Time) error {
	ctx, span := tracer.Start(ctx, "Jwt.Repository.InvalidateJTI")
	defer span.End()

	expiration := time.Until(exp)
	if expiration <= 0 {
		return nil
	}

	err := r.rdb.Set(ctx, jtiPrefix+jti, "1", expiration).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
