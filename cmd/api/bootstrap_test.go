package main

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
)

func testRoutes() []*echo.Route {
	return []*echo.Route{
		{Method: "GET", Path: "/role/:id"},
		{Method: "PUT", Path: "/role/:id"},
		{Method: "GET", Path: "/roles"},
	}
}

func TestRoutePermissions(t *testing.T) {
	permissions := routePermissions(testRoutes())
	assert.Equal(t, []core.RouteItem{
		{Module: "role", Path: "/role/:id", Description: "GET,PUT"},
		{Module: "roles", Path: "/roles", Description: "GET"},
	}, permissions)
}

func TestBootstrapOnEmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleService(ctrl)
	roles.EXPECT().Create(gomock.Any(), "admin", routePermissions(testRoutes())).Return(core.Role{}, nil)

	users := mock_core.NewMockUserService(ctrl)
	users.EXPECT().List(gomock.Any(), int64(1), int64(1)).Return(core.Collection[core.User]{}, nil)
	users.EXPECT().Create(gomock.Any(), core.UserInput{
		Account:  "root@example.com",
		Password: "correct horse",
		Name:     "root",
		RoleName: "admin",
	}).Return(core.User{}, nil)

	conf := Bootstrap{Account: "root@example.com", Password: "correct horse", Name: "root", RoleName: "admin"}
	assert.NoError(t, bootstrap(context.Background(), conf, testRoutes(), roles, users))
}

func TestBootstrapSkipsPopulatedStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleService(ctrl)
	users := mock_core.NewMockUserService(ctrl)
	users.EXPECT().List(gomock.Any(), int64(1), int64(1)).Return(core.Collection[core.User]{Total: 1}, nil)

	conf := Bootstrap{Account: "root@example.com", Password: "correct horse", Name: "root", RoleName: "admin"}
	assert.NoError(t, bootstrap(context.Background(), conf, testRoutes(), roles, users))

	// disabled without credentials
	assert.NoError(t, bootstrap(context.Background(), Bootstrap{}, testRoutes(), roles, users))
}
