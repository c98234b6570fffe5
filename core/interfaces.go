//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"gorm.io/gorm"
)

// RBACRole is a role as seen by the authorization actor
type RBACRole interface {
	Policies() []PolicyFact
}

// RBACUser is a user as seen by the authorization actor
type RBACUser interface {
	Account() string
	GetRoleName() string
}

type RoleFetcher interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]RBACRole, error)
}

type UserFetcher interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]RBACUser, error)
}

type IDGenerator interface {
	NextID(ctx context.Context) (string, error)
}

type PermissionChecker interface {
	CheckPermission(ctx context.Context, subject, action string) (bool, error)
	Reset(ctx context.Context) error
}

type RoleService interface {
	Create(ctx context.Context, name string, permissions []RouteItem) (Role, error)
	Get(ctx context.Context, id string) (Role, error)
	GetByName(ctx context.Context, name string) (Role, error)
	GetByIDs(ctx context.Context, ids []string) ([]Role, []string, error)
	List(ctx context.Context, page, pageSize int64) (Collection[Role], error)
	Update(ctx context.Context, id string, version uint64, name string, permissions []RouteItem) (Role, error)
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Create(ctx context.Context, input UserInput) (User, error)
	Get(ctx context.Context, id string) (User, error)
	GetByAccount(ctx context.Context, account string) (User, error)
	List(ctx context.Context, page, pageSize int64) (Collection[User], error)
	Update(ctx context.Context, id string, version uint64, input UserInput) (User, error)
	ChangePassword(ctx context.Context, id string, password string) error
	Delete(ctx context.Context, id string) error
	Identify(ctx context.Context, id string) (Identity, error)
}

type JwtService interface {
	Create(payload TokenPayload) (string, error)
	Verify(ctx context.Context, token string) (TokenPayload, error)
	Invalidate(ctx context.Context, token string) error
}
