package rbac

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
	"github.com/totegamma/rolegate/internal/testutil"
)

func TestHandlerPolicies(t *testing.T) {
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

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodGet, "/admin/rbac/policies", nil)

	h := NewHandler(actor)
	assert.NoError(t, h.Policies(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp core.ResponseBase[Snapshot]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []core.PolicyFact{{Subject: "editor", Action: "/posts/write"}}, resp.Content.Policies)
	assert.Equal(t, []core.RoleAssignment{{User: "alice", Role: "editor"}}, resp.Content.Assignments)
}

func TestHandlerResetFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mock_core.NewMockRoleFetcher(ctrl)
	gomock.InOrder(
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACRole{editorRole("/posts/write")}, nil),
		roles.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")),
	)
	users := mock_core.NewMockUserFetcher(ctrl)
	users.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return([]core.RBACUser{userWithRole("alice", "editor")}, nil).AnyTimes()

	actor, err := NewActor(context.Background(), nil, roles, users)
	if !assert.NoError(t, err) {
		return
	}
	defer actor.Close()

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodPost, "/admin/rbac/reset", nil)

	h := NewHandler(actor)
	assert.NoError(t, h.Reset(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// previous facts still answer
	ok, err := actor.CheckPermission(context.Background(), "alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)
}
