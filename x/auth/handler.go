package auth

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/rolegate/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Login(c echo.Context) error
	Logout(c echo.Context) error
	Me(c echo.Context) error
}

type handler struct {
	service   Service
	users     core.UserService
	validator *validator.Validate
}

// NewHandler creates a new handler
func NewHandler(service Service, users core.UserService) Handler {
	return &handler{
		service:   service,
		users:     users,
		validator: validator.New(),
	}
}

type loginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *handler) Login(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Login")
	defer span.End()

	var request loginRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	token, user, err := h.service.Login(ctx, request.Account, request.Password)
	if err != nil {
		span.RecordError(err)
		if core.ErrorStatus(err) == http.StatusForbidden {
			return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "message": "invalid account or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"token": token, "user": user}})
}

func (h *handler) Logout(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Logout")
	defer span.End()

	token, _ := c.Get(core.RequesterTokenCtxKey).(string)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "message": "authentication required"})
	}

	if err := h.service.Logout(ctx, token); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Me returns the requesting user
func (h *handler) Me(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Me")
	defer span.End()

	id, _ := c.Get(core.RequesterIdCtxKey).(string)
	user, err := h.users.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": user})
}
