package user

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/rolegate/core"
	"github.com/totegamma/rolegate/x/sequencer"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	ChangePassword(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service   core.UserService
	validator *validator.Validate
}

// NewHandler creates a new handler
func NewHandler(service core.UserService) Handler {
	return &handler{
		service:   service,
		validator: validator.New(),
	}
}

type createRequest struct {
	core.UserInput
	Password string `json:"password" validate:"required,min=8"`
}

type updateRequest struct {
	Version uint64 `json:"version"`
	core.UserInput
}

type passwordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

func queryInt(c echo.Context, name string) int64 {
	v, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": core.NewErrorNotFound().Error()})
}

func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.List")
	defer span.End()

	users, err := h.service.List(ctx, queryInt(c, "page"), queryInt(c, "page_size"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": users})
}

func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Get")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	user, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": user})
}

func (h *handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Create")
	defer span.End()

	var request createRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	input := request.UserInput
	input.Password = request.Password

	created, err := h.service.Create(ctx, input)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

func (h *handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Update")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	var request updateRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	updated, err := h.service.Update(ctx, c.Param("id"), request.Version, request.UserInput)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

func (h *handler) ChangePassword(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.ChangePassword")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	var request passwordRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if err := h.validator.Struct(request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}

	err := h.service.ChangePassword(ctx, c.Param("id"), request.Password)
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "User.Handler.Delete")
	defer span.End()

	if !sequencer.IsSeemsID(c.Param("id")) {
		return notFound(c)
	}

	err := h.service.Delete(ctx, c.Param("id"))
	if err != nil {
		span.RecordError(err)
		return c.JSON(core.ErrorStatus(err), echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
