package role

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/store"
)

// Repository is the interface for the role store
type Repository interface {
	Create(ctx context.Context, role core.Role) (core.Role, error)
	FindByID(ctx context.Context, id string) (core.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]core.Role, error)
	FindByName(ctx context.Context, name string) (core.Role, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]core.RBACRole, error)
	Update(ctx context.Context, role *core.Role) error
	Rename(ctx context.Context, role *core.Role, previous string) error
	CountHolders(ctx context.Context, name string) (int64, error)
	Search(ctx context.Context, paginator store.Paginator) (core.Collection[core.Role], error)
}

type repository struct {
	db         *gorm.DB
	collection store.Collection[core.Role]
	users      store.Collection[core.User]
}

// NewRepository creates a new role repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db:         db,
		collection: store.NewCollection[core.Role](db, core.RoleCollection),
		users:      store.NewCollection[core.User](db, core.UserCollection),
	}
}

func (r *repository) Create(ctx context.Context, role core.Role) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.Create")
	defer span.End()

	err := r.collection.InsertOne(ctx, &role)
	if err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	return role, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.FindByID")
	defer span.End()

	return r.collection.FindOne(ctx, store.Filter{"id": id}.Alive())
}

func (r *repository) FindByIDs(ctx context.Context, ids []string) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.FindByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []core.Role{}, nil
	}

	cursor, err := r.collection.Find(ctx, store.Filter{}.Alive(), store.Where("id = ANY(?)", pq.Array(ids)))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return store.All(ctx, cursor)
}

func (r *repository) FindByName(ctx context.Context, name string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.FindByName")
	defer span.End()

	return r.collection.FindOne(ctx, store.Filter{"name": name}.Alive())
}

// FindAll returns every live role. db overrides the repository's connection when set.
func (r *repository) FindAll(ctx context.Context, db *gorm.DB) ([]core.RBACRole, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.FindAll")
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

	roles, err := store.All(ctx, cursor)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	out := make([]core.RBACRole, len(roles))
	for i, role := range roles {
		out[i] = role
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, role *core.Role) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.Update")
	defer span.End()

	return store.Update(ctx, r.collection, role)
}

// Rename writes role and moves every live holder of previous over to the new name.
// Either all of it commits or role is left as it was passed in.
func (r *repository) Rename(ctx context.Context, role *core.Role, previous string) error {
	ctx, span := tracer.Start(ctx, "Role.Repository.Rename")
	defer span.End()

	before := role.BaseModel
	err := store.Transaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := store.UpdateWithSession(ctx, tx, r.collection, role); err != nil {
			return err
		}

		cursor, err := r.users.WithSession(tx).Find(ctx, store.Filter{"role_name": previous}.Alive())
		if err != nil {
			return err
		}
		holders, err := store.All(ctx, cursor)
		if err != nil {
			return err
		}

		for i := range holders {
			holders[i].RoleName = role.Name
			if err := store.UpdateWithSession(ctx, tx, r.users, &holders[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		role.BaseModel = before
		span.RecordError(err)
		return err
	}

	return nil
}

// CountHolders counts the live users assigned to the role called name
func (r *repository) CountHolders(ctx context.Context, name string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.CountHolders")
	defer span.End()

	return r.users.CountDocuments(ctx, store.Filter{"role_name": name}.Alive())
}

func (r *repository) Search(ctx context.Context, paginator store.Paginator) (core.Collection[core.Role], error) {
	ctx, span := tracer.Start(ctx, "Role.Repository.Search")
	defer span.End()

	return store.Search(ctx, r.collection, store.Filter{}, paginator)
}
