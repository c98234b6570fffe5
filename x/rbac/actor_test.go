package rbac

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
)

func editorRole(paths ...string) core.Role {
	permissions := make([]core.RouteItem, 0, len(paths))
	for _, p := range paths {
		permissions = append(permissions, core.RouteItem{Module: "posts", Path: p})
	}
	return core.NewRole("r1", "editor", permissions)
}

func userWithRole(name, role string) core.User {
	return core.User{BaseModel: core.NewBaseModel(name), Name: name, RoleName: role, IsActive: true}
}

func TestActorCheckPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()

	ok, err := actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = actor.CheckPermission(ctx, "alice", "/posts/delete")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = actor.CheckPermission(ctx, "bob", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestActorInitialLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	upstream := errors.New("connection refused")

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, upstream)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{}, nil).AnyTimes()

	_, err := NewActor(context.Background(), nil, roles, users)

	var fetchErr core.ErrorFetch
	if assert.True(t, errors.As(err, &fetchErr)) {
		assert.Equal(t, "roles", fetchErr.Source)
	}
	assert.ErrorIs(t, err, upstream)
}

func TestActorResetDropsStaleFacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	gomock.InOrder(
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil),
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/read")}, nil),
	)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil).Times(2)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()
	assert.NoError(t, actor.Reset(ctx))

	ok, err := actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = actor.CheckPermission(ctx, "alice", "/posts/read")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestActorFailedResetKeepsPreviousState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil).Times(2)
	users := mock_core.NewMockUserFetcher(ctrl)
	gomock.InOrder(
		users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil),
		users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")),
	)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()

	err = actor.Reset(ctx)
	var fetchErr core.ErrorFetch
	if assert.True(t, errors.As(err, &fetchErr)) {
		assert.Equal(t, "users", fetchErr.Source)
	}

	ok, err := actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestActorMalformedFactAbortsReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	gomock.InOrder(
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil),
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/read", "")}, nil),
	)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil).Times(2)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()

	var policyErr core.ErrorPolicy
	assert.True(t, errors.As(actor.Reset(ctx), &policyErr))

	// the half built set never became visible
	ok, _ := actor.CheckPermission(ctx, "alice", "/posts/read")
	assert.False(t, ok)
	ok, _ = actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.True(t, ok)
}

func TestActorBypassSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{}, nil).Times(2)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{}, nil).Times(2)

	actor, err := NewActor(context.Background(), nil, roles, users, WithBypassSubject("root"))
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()
	ok, err := actor.CheckPermission(ctx, "root", "/anything")
	assert.NoError(t, err)
	assert.True(t, ok)

	// survives reloads
	assert.NoError(t, actor.Reset(ctx))
	ok, _ = actor.CheckPermission(ctx, "root", "/anything")
	assert.True(t, ok)
}

func TestActorCommandsRunInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	gomock.InOrder(
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{}, nil),
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil),
	)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil).Times(2)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()

	// a check sent after Reset returned always sees the reloaded state
	ok, _ := actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.False(t, ok)
	assert.NoError(t, actor.Reset(ctx))
	ok, _ = actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.True(t, ok)
}

func TestActorConcurrentChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil).AnyTimes()
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil).AnyTimes()

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%5 == 0 {
				assert.NoError(t, actor.Reset(ctx))
				return
			}
			ok, err := actor.CheckPermission(ctx, "alice", "/posts/write")
			assert.NoError(t, err)
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()
}

func TestActorSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write", "/posts/read")}, nil)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	snapshot, err := actor.Snapshot(context.Background())
	if assert.NoError(t, err) {
		assert.Len(t, snapshot.Policies, 2)
		assert.Equal(t, []core.RoleAssignment{{User: "alice", Role: "editor"}}, snapshot.Assignments)
	}
}

func TestActorClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{}, nil)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{}, nil)

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	actor.Close()
	actor.Close()

	var closed core.ErrorChannelClosed

	_, err = actor.CheckPermission(context.Background(), "alice", "/posts/write")
	assert.True(t, errors.As(err, &closed))

	err = actor.Reset(context.Background())
	assert.True(t, errors.As(err, &closed))

	_, err = actor.Snapshot(context.Background())
	assert.True(t, errors.As(err, &closed))
}

func TestActorAbandonedCheck(t *testing.T) {
	// no goroutine drains this queue
	actor := &Actor{
		commands: make(chan any),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ok, err := actor.CheckPermission(ctx, "alice", "/posts/write")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
