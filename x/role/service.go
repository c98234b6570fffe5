// Package role manages roles and the permissions they grant
package role

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/store"
)

var tracer = otel.Tracer("role")

type service struct {
	repository Repository
	ids        core.IDGenerator
	checker    core.PermissionChecker
}

// NewService creates a new role service
func NewService(repository Repository, ids core.IDGenerator, checker core.PermissionChecker) core.RoleService {
	return &service{repository, ids, checker}
}

// reloadPolicies is called after every committed change. Its failure does not undo the change.
func (s *service) reloadPolicies(ctx context.Context) {
	if err := s.checker.Reset(ctx); err != nil {
		slog.ErrorContext(
			ctx, "failed to reload policies after role change",
			slog.String("error", err.Error()),
			slog.String("module", "role"),
		)
	}
}

func (s *service) ensureNameFree(ctx context.Context, name, self string) error {
	existing, err := s.repository.FindByName(ctx, name)
	if err == nil {
		if existing.ID != self {
			return core.NewErrorAlreadyExists()
		}
		return nil
	}
	if errors.Is(err, core.ErrorNotFound{}) {
		return nil
	}
	return err
}

func (s *service) Create(ctx context.Context, name string, permissions []core.RouteItem) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.Create")
	defer span.End()

	if name == "" {
		return core.Role{}, core.NewErrorInvalidArgument("name must not be empty")
	}

	if err := s.ensureNameFree(ctx, name, ""); err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	id, err := s.ids.NextID(ctx)
	if err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	created, err := s.repository.Create(ctx, core.NewRole(id, name, permissions))
	if err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	s.reloadPolicies(ctx)
	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.Get")
	defer span.End()

	return s.repository.FindByID(ctx, id)
}

func (s *service) GetByName(ctx context.Context, name string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.GetByName")
	defer span.End()

	return s.repository.FindByName(ctx, name)
}

// GetByIDs returns the live roles among ids and the ids that matched none
func (s *service) GetByIDs(ctx context.Context, ids []string) ([]core.Role, []string, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.GetByIDs")
	defer span.End()

	roles, err := s.repository.FindByIDs(ctx, ids)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	return roles, store.DifferenceIDs(ids, roles), nil
}

func (s *service) List(ctx context.Context, page, pageSize int64) (core.Collection[core.Role], error) {
	ctx, span := tracer.Start(ctx, "Role.Service.List")
	defer span.End()

	return s.repository.Search(ctx, store.NewPage(page, pageSize))
}

// Update replaces name and permissions of the role last read at version.
// A rename carries the users holding the role along.
func (s *service) Update(ctx context.Context, id string, version uint64, name string, permissions []core.RouteItem) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Role.Service.Update")
	defer span.End()

	if name == "" {
		return core.Role{}, core.NewErrorInvalidArgument("name must not be empty")
	}

	role, err := s.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	if err := s.ensureNameFree(ctx, name, id); err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	previous := role.Name
	role.Version = version
	role.Name = name
	role.Permissions = permissions

	if previous != name {
		err = s.repository.Rename(ctx, &role, previous)
	} else {
		err = s.repository.Update(ctx, &role)
	}
	if err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	s.reloadPolicies(ctx)
	return role, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Role.Service.Delete")
	defer span.End()

	role, err := s.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	holders, err := s.repository.CountHolders(ctx, role.Name)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if holders > 0 {
		err := core.NewErrorInvalidArgument(fmt.Sprintf("role %s is still assigned to %d users", role.Name, holders))
		span.RecordError(err)
		return err
	}

	role.Delete()
	if err := s.repository.Update(ctx, &role); err != nil {
		span.RecordError(err)
		return err
	}

	s.reloadPolicies(ctx)
	return nil
}
