package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
)

func testUser(t *testing.T, active bool) core.User {
	t.Helper()

	secret, err := core.NewSecret("alice@example.com", "correct horse")
	if err != nil {
		t.Fatal(err)
	}
	return core.User{
		BaseModel: core.NewBaseModel("u1"),
		Secret:    secret,
		Name:      "alice",
		RoleName:  "editor",
		IsActive:  active,
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUser := mock_core.NewMockUserService(ctrl)
	mockUser.EXPECT().GetByAccount(gomock.Any(), "alice@example.com").Return(testUser(t, true), nil)

	mockJwt := mock_core.NewMockJwtService(ctrl)
	mockJwt.EXPECT().Create(core.TokenPayload{ID: "u1", Account: "alice", Role: "editor"}).Return("signed", nil)

	service := NewService(mockUser, mockJwt)

	token, user, err := service.Login(context.Background(), "alice@example.com", "correct horse")
	if assert.NoError(t, err) {
		assert.Equal(t, "signed", token)
		assert.Equal(t, "u1", user.ID)
	}
}

func TestLoginRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUser := mock_core.NewMockUserService(ctrl)
	mockUser.EXPECT().GetByAccount(gomock.Any(), "alice@example.com").Return(testUser(t, true), nil)
	mockUser.EXPECT().GetByAccount(gomock.Any(), "disabled@example.com").Return(testUser(t, false), nil)
	mockUser.EXPECT().GetByAccount(gomock.Any(), "nobody@example.com").Return(core.User{}, core.NewErrorNotFound())

	service := NewService(mockUser, mock_core.NewMockJwtService(ctrl))
	ctx := context.Background()

	var denied core.ErrorPermissionDenied

	_, _, err := service.Login(ctx, "alice@example.com", "wrong")
	assert.True(t, errors.As(err, &denied))

	_, _, err = service.Login(ctx, "disabled@example.com", "correct horse")
	assert.True(t, errors.As(err, &denied))

	_, _, err = service.Login(ctx, "nobody@example.com", "correct horse")
	assert.True(t, errors.As(err, &denied))
}
