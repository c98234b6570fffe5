package user

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/store"
)

const (
	identityCachePrefix = "user_identity:"
	identityCacheTTL    = 600 // 10 minutes
)

// Repository is the interface for the user store
type Repository interface {
	Create(ctx context.Context, user core.User) (core.User, error)
	FindByID(ctx context.Context, id string) (core.User, error)
	FindByName(ctx context.Context, name string) (core.User, error)
	FindByAccount(ctx context.Context, account string) (core.User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]core.RBACUser, error)
	Update(ctx context.Context, user *core.User) error
	Search(ctx context.Context, paginator store.Paginator) (core.Collection[core.User], error)
	Identify(ctx context.Context, id string) (core.Identity, error)
}

type repository struct {
	db         *gorm.DB
	mc         *memcache.Client
	collection store.Collection[core.User]
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{
		db:         db,
		mc:         mc,
		collection: store.NewCollection[core.User](db, core.UserCollection),
	}
}

func (r *repository) Create(ctx context.Context, user core.User) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Create")
	defer span.End()

	err := r.collection.InsertOne(ctx, &user)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	return user, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.FindByID")
	defer span.End()

	return r.collection.FindOne(ctx, store.Filter{"id": id}.Alive())
}

func (r *repository) FindByName(ctx context.Context, name string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.FindByName")
	defer span.End()

	return r.collection.FindOne(ctx, store.Filter{"name": name}.Alive())
}

func (r *repository) FindByAccount(ctx context.Context, account string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.FindByAccount")
	defer span.End()

	return r.collection.FindOne(ctx, store.Filter{"secret_account": account}.Alive())
}

// FindAll returns every live user. db overrides the repository's connection when set.
func (r *repository) FindAll(ctx context.Context, db *gorm.DB) ([]core.RBACUser, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.FindAll")
	defer span.End()

	collection := r.collection
	if db != nil {
		collection = collection.WithSession(db)
	}

	cursor, err := collection.Find(ctx, store.Filter{}.Alive())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	users, err := store.All(ctx, cursor)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out := make([]core.RBACUser, len(users))
	for i, user := range users {
		out[i] = user
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, user *core.User) error {
	ctx, span := tracer.Start(ctx, "User.Repository.Update")
	defer span.End()

	err := store.Update(ctx, r.collection, user)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.mc.Delete(identityCachePrefix + user.ID)
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		span.RecordError(err)
	}

	return nil
}

func (r *repository) Search(ctx context.Context, paginator store.Paginator) (core.Collection[core.User], error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Search")
	defer span.End()

	return store.Search(ctx, r.collection, store.Filter{}, paginator)
}

// Identify returns the current account and active flag of the live user id
func (r *repository) Identify(ctx context.Context, id string) (core.Identity, error) {
	ctx, span := tracer.Start(ctx, "User.Repository.Identify")
	defer span.End()

	item, err := r.mc.Get(identityCachePrefix + id)
	if err == nil {
		var identity core.Identity
		if err := json.Unmarshal(item.Value, &identity); err == nil {
			return identity, nil
		}
	}

	user, err := r.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Identity{}, err
	}

	identity := user.Identity()
	value, err := json.Marshal(identity)
	if err != nil {
		span.RecordError(err)
		return identity, nil
	}

	err = r.mc.Set(&memcache.Item{Key: identityCachePrefix + id, Value: value, Expiration: identityCacheTTL})
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "failed to cache identity", slog.String("error", err.Error()), slog.String("module", "user"))
	}

	return identity, nil
}
