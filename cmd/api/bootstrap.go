package main

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/rolegate/core"
)

// routePermissions grants every registered route once, keyed by path
func routePermissions(routes []*echo.Route) []core.RouteItem {
	byPath := map[string][]string{}
	for _, r := range routes {
		byPath[r.Path] = append(byPath[r.Path], r.Method)
	}

	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	permissions := make([]core.RouteItem, 0, len(paths))
	for _, path := range paths {
		methods := byPath[path]
		sort.Strings(methods)
		module := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)[0]
		permissions = append(permissions, core.RouteItem{
			Module:      module,
			Path:        path,
			Description: strings.Join(methods, ","),
		})
	}
	return permissions
}

// bootstrap creates an administrator holding every route when no user exists yet
func bootstrap(ctx context.Context, conf Bootstrap, routes []*echo.Route, roles core.RoleService, users core.UserService) error {
	if conf.Account == "" || conf.Password == "" {
		return nil
	}

	existing, err := users.List(ctx, 1, 1)
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		return nil
	}

	_, err = roles.Create(ctx, conf.RoleName, routePermissions(routes))
	if err != nil && !errors.As(err, new(core.ErrorAlreadyExists)) {
		return err
	}

	_, err = users.Create(ctx, core.UserInput{
		Account:  conf.Account,
		Password: conf.Password,
		Name:     conf.Name,
		RoleName: conf.RoleName,
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "bootstrap administrator created", slog.String("account", conf.Account), slog.String("role", conf.RoleName))
	return nil
}
