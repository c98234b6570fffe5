package user

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/core/mock"
	"github.com/totegamma/rolegate/internal/testutil"
	"github.com/totegamma/rolegate/x/sequencer"
)

func TestHandlerCreateHidesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secret, err := core.NewSecret("alice@example.com", "correct horse")
	if !assert.NoError(t, err) {
		return
	}

	service := mock_core.NewMockUserService(ctrl)
	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input core.UserInput) (core.User, error) {
			assert.Equal(t, "correct horse", input.Password)
			return core.User{BaseModel: core.NewBaseModel("u1"), Secret: secret, Name: input.Name, RoleName: input.RoleName}, nil
		})

	body := strings.NewReader(`{"account":"alice@example.com","password":"correct horse","name":"alice","role_name":"editor"}`)
	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodPost, "/user", body)

	h := NewHandler(service)
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "correct horse")
	assert.NotContains(t, rec.Body.String(), secret.Password)
}

func TestHandlerCreateShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock_core.NewMockUserService(ctrl)

	body := strings.NewReader(`{"account":"alice@example.com","password":"short","name":"alice","role_name":"editor"}`)
	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodPost, "/user", body)

	h := NewHandler(service)
	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := sequencer.ID(42).String()

	service := mock_core.NewMockUserService(ctrl)
	service.EXPECT().Get(gomock.Any(), id).Return(core.User{}, core.NewErrorNotFound())

	c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodGet, "/user/"+id, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)

	h := NewHandler(service)
	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerMalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the service must not be reached
	service := mock_core.NewMockUserService(ctrl)
	h := NewHandler(service)

	for _, id := range []string{"missing", "0123456789iou", ""} {
		c, _, rec, _ := testutil.CreateHttpRequestWith(http.MethodDelete, "/user/"+id, nil)
		c.SetParamNames("id")
		c.SetParamValues(id)

		assert.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}
