package rbac

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
	"github.com/totegamma/rolegate/internal/testutil"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func TestRequirePermissionAllows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_core.NewMockPermissionChecker(ctrl)
	checker.EXPECT().CheckPermission(gomock.Any(), "alice", "/posts/write").Return(true, nil)

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodPost, "/posts/write", nil)
	c.Set(core.RequesterAccountCtxKey, "alice")

	err := RequirePermission(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionDenies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_core.NewMockPermissionChecker(ctrl)
	checker.EXPECT().CheckPermission(gomock.Any(), "alice", "/posts/delete").Return(false, nil)

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodPost, "/posts/delete", nil)
	c.Set(core.RequesterAccountCtxKey, "alice")

	err := RequirePermission(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_core.NewMockPermissionChecker(ctrl)
	checker.EXPECT().CheckPermission(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, core.NewErrorChannelClosed("rbac"))

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodGet, "/posts", nil)
	c.Set(core.RequesterAccountCtxKey, "alice")

	err := RequirePermission(checker)(okHandler)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	checker.EXPECT().CheckPermission(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, context.Canceled)
	c, _, rec, _ = testutil.CreateHttpRequestWith(http.MethodGet, "/posts", nil)
	c.Set(core.RequesterAccountCtxKey, "alice")
	assert.NoError(t, RequirePermission(checker)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermissionAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checker := mock_core.NewMockPermissionChecker(ctrl)

	c, _, rec, _ := testutil.CreateHttpRequest()

	err := RequirePermission(checker)(func(c echo.Context) error {
		return errors.New("must not be reached")
	})(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestActionUsesRoutePattern(t *testing.T) {
	c, _, _, _ := testutil.CreateHttpRequestWith(http.MethodGet, "/role/r1", nil)
	assert.Equal(t, "/role/r1", Action(c))

	c.SetPath("/role/:id")
	assert.Equal(t, "/role/:id", Action(c))
}
