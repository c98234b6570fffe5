// Package user manages accounts and the role each one holds
package user

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/store"
)

var tracer = otel.Tracer("user")

type service struct {
	repository Repository
	ids        core.IDGenerator
	checker    core.PermissionChecker
	roles      core.RoleService
}

// NewService creates a new user service
func NewService(repository Repository, ids core.IDGenerator, checker core.PermissionChecker, roles core.RoleService) core.UserService {
	return &service{repository, ids, checker, roles}
}

func (s *service) reloadPolicies(ctx context.Context) {
	if err := s.checker.Reset(ctx); err != nil {
		slog.ErrorContext(
			ctx, "failed to reload policies after user change",
			slog.String("error", err.Error()),
			slog.String("module", "user"),
		)
	}
}

func isFree[T interface{ GetID() string }](found T, err error, self string) error {
	if err == nil {
		if found.GetID() != self {
			return core.NewErrorAlreadyExists()
		}
		return nil
	}
	if errors.Is(err, core.ErrorNotFound{}) {
		return nil
	}
	return err
}

// checkInput checks that account and name are free and that the role exists
func (s *service) checkInput(ctx context.Context, input core.UserInput, self string) error {
	found, err := s.repository.FindByAccount(ctx, input.Account)
	if err := isFree(found, err, self); err != nil {
		return err
	}

	found, err = s.repository.FindByName(ctx, input.Name)
	if err := isFree(found, err, self); err != nil {
		return err
	}

	_, err = s.roles.GetByName(ctx, input.RoleName)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return core.NewErrorInvalidArgument("unknown role: " + input.RoleName)
		}
		return err
	}

	return nil
}

func (s *service) Create(ctx context.Context, input core.UserInput) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Create")
	defer span.End()

	if input.Account == "" || input.Name == "" || input.RoleName == "" {
		return core.User{}, core.NewErrorInvalidArgument("account, name and role_name are required")
	}

	if err := s.checkInput(ctx, input, ""); err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	secret, err := core.NewSecret(input.Account, input.Password)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	id, err := s.ids.NextID(ctx)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	created, err := s.repository.Create(ctx, core.User{
		BaseModel: core.NewBaseModel(id),
		Secret:    secret,
		Name:      input.Name,
		Age:       input.Age,
		Avatar:    input.Avatar,
		IsActive:  active,
		RoleName:  input.RoleName,
	})
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	s.reloadPolicies(ctx)
	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Get")
	defer span.End()

	return s.repository.FindByID(ctx, id)
}

func (s *service) GetByAccount(ctx context.Context, account string) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.GetByAccount")
	defer span.End()

	return s.repository.FindByAccount(ctx, account)
}

func (s *service) List(ctx context.Context, page, pageSize int64) (core.Collection[core.User], error) {
	ctx, span := tracer.Start(ctx, "User.Service.List")
	defer span.End()

	return s.repository.Search(ctx, store.NewPage(page, pageSize))
}

// Update replaces the profile of the user last read at version. The password is left as is.
func (s *service) Update(ctx context.Context, id string, version uint64, input core.UserInput) (core.User, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Update")
	defer span.End()

	if input.Account == "" || input.Name == "" || input.RoleName == "" {
		return core.User{}, core.NewErrorInvalidArgument("account, name and role_name are required")
	}

	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	if err := s.checkInput(ctx, input, id); err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	user.Version = version
	user.Secret.Account = input.Account
	user.Name = input.Name
	user.Age = input.Age
	user.Avatar = input.Avatar
	user.RoleName = input.RoleName
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repository.Update(ctx, &user); err != nil {
		span.RecordError(err)
		return core.User{}, err
	}

	s.reloadPolicies(ctx)
	return user, nil
}

func (s *service) ChangePassword(ctx context.Context, id string, password string) error {
	ctx, span := tracer.Start(ctx, "User.Service.ChangePassword")
	defer span.End()

	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := user.Secret.ChangePassword(password); err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.repository.Update(ctx, &user); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "User.Service.Delete")
	defer span.End()

	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	user.Delete()
	if err := s.repository.Update(ctx, &user); err != nil {
		span.RecordError(err)
		return err
	}

	s.reloadPolicies(ctx)
	return nil
}

// Identify resolves the user a token was issued to
func (s *service) Identify(ctx context.Context, id string) (core.Identity, error) {
	ctx, span := tracer.Start(ctx, "User.Service.Identify")
	defer span.End()

	return s.repository.Identify(ctx, id)
}
