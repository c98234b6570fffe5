//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/auth"
	"github.com/totegamma/rolegate/x/jwt"
	"github.com/totegamma/rolegate/x/rbac"
	"github.com/totegamma/rolegate/x/role"
	"github.com/totegamma/rolegate/x/sequencer"
	"github.com/totegamma/rolegate/x/user"
)

var roleFetcherProvider = wire.NewSet(role.NewRepository, wire.Bind(new(core.RoleFetcher), new(role.Repository)))
var userFetcherProvider = wire.NewSet(user.NewRepository, wire.Bind(new(core.UserFetcher), new(user.Repository)))
var jwtServiceProvider = wire.NewSet(jwt.NewService, jwt.NewRepository)

func SetupIDGenerator(config core.Config) (core.IDGenerator, error) {
	wire.Build(sequencer.NewService)
	return nil, nil
}

func SetupRBACActor(db *gorm.DB, mc *memcache.Client, config core.Config) (*rbac.Actor, error) {
	wire.Build(rbac.NewService, roleFetcherProvider, userFetcherProvider)
	return nil, nil
}

func SetupRoleService(db *gorm.DB, ids core.IDGenerator, checker core.PermissionChecker) core.RoleService {
	wire.Build(role.NewService, role.NewRepository)
	return nil
}

func SetupUserService(db *gorm.DB, mc *memcache.Client, ids core.IDGenerator, checker core.PermissionChecker, roles core.RoleService) core.UserService {
	wire.Build(user.NewService, user.NewRepository)
	return nil
}

func SetupJwtService(rdb *redis.Client, config core.Config) core.JwtService {
	wire.Build(jwtServiceProvider)
	return nil
}

func SetupAuthService(users core.UserService, jwt core.JwtService) auth.Service {
	wire.Build(auth.NewService)
	return nil
}
